//go:build ebiten

package app

import (
	"log"
	"strconv"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	factory core.Factory

	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	tools   *Toolbox

	paused   bool
	tickOnce bool
	seed     int64

	// Grid size requested by the last Layout call; applied in Update.
	wantW, wantH int
}

// New constructs a Game that builds its simulation from factory.
func New(factory core.Factory, cfg *Config) *Game {
	g := &Game{cfg: cfg, factory: factory, tools: NewToolbox(), seed: cfg.Seed}
	g.rebuild(cfg.Width, cfg.Height)
	return g
}

// rebuild replaces the simulation with a fresh one of the given size. State
// is not carried across a resize.
func (g *Game) rebuild(w, h int) {
	g.sim = g.factory(g.cfg.SimConfig(w, h))
	size := g.sim.Size()
	g.wantW, g.wantH = size.W, size.H
	g.painter = render.NewGridPainter(size.W, size.H)
	g.painter.Reset(g.sim)
	g.overlay = ui.NewOverlay(g.sim, g.cfg.Scale)
	g.hud = ui.NewHUD(g.sim, g.cfg.HUDWidth)
	log.Printf("world %dx%d", size.W, size.H)
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painter.Reset(g.sim)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	size := g.sim.Size()
	if g.wantW != size.W || g.wantH != size.H {
		g.rebuild(g.wantW, g.wantH)
	}

	g.handleKeys()
	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.SetStatus(g.statusLines())
		g.hud.Update(g.sim.Size().W * g.cfg.Scale)
	}

	if brush, ok := g.sim.(core.Brush); ok && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < g.sim.Size().W*g.cfg.Scale {
			x, y := GridCoord(mx, my, g.cfg.Scale, g.sim.Size())
			g.tools.Apply(brush, x, y)
			g.painter.UpdateArea(g.sim, x, y, g.tools.Radius())
		}
	}

	if !g.paused || g.tickOnce {
		g.painter.Update(g.sim, g.sim.Step())
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.Reset(time.Now().UnixNano())
	}
	digits := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}
	for i, k := range digits {
		if inpututil.IsKeyJustPressed(k) {
			g.tools.SelectColor(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.tools.ToggleCycling()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.tools.SetTool(core.ToolSand)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.tools.SetTool(core.ToolBlock)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.tools.SetTool(core.ToolErase)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.tools.Grow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.tools.Shrink()
	}
}

func (g *Game) statusLines() []string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	mode := "palette"
	if g.tools.Cycling() {
		mode = "cycling"
	}
	return []string{
		"Tool: " + g.tools.Tool().String(),
		"Color: " + mode,
		"Radius: " + strconv.Itoa(g.tools.Radius()),
		"State: " + state,
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.cfg.Scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.cfg.Scale, g.cfg.Scale)
	}
}

// Layout returns the logical screen size. A window resize requests a new
// world that fills the play area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := max(1, g.cfg.Scale)
	hud := max(0, g.cfg.HUDWidth)
	g.wantW = max(1, (outsideWidth-hud)/scale)
	g.wantH = max(1, outsideHeight/scale)
	return outsideWidth, outsideHeight
}
