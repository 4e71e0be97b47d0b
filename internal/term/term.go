// Package term drives a simulation inside a terminal, one grid cell per
// character cell, with the bottom row reserved for a status line.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"time"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	geom "mad-sand/pkg/core"

	"github.com/gdamore/tcell/v2"
)

// Driver owns the screen, the simulation and the paint tools.
type Driver struct {
	screen  tcell.Screen
	factory core.Factory
	cfg     *app.Config

	sim   core.Sim
	tools *app.Toolbox
	pace  *core.FixedStep

	paused   bool
	tickOnce bool

	// Button 1 state; a held button keeps painting every tick.
	held         bool
	heldX, heldY int
}

// New builds a Driver on an initialized screen. The world fills the screen
// minus the status row.
func New(screen tcell.Screen, factory core.Factory, cfg *app.Config) *Driver {
	d := &Driver{
		screen:  screen,
		factory: factory,
		cfg:     cfg,
		tools:   app.NewToolbox(),
		pace:    core.NewFixedStep(cfg.TPS),
	}
	d.resize()
	return d
}

// Sim returns the active simulation.
func (d *Driver) Sim() core.Sim { return d.sim }

// Toolbox returns the paint tools.
func (d *Driver) Toolbox() *app.Toolbox { return d.tools }

// Paused reports whether stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// resize recreates the simulation to fit the current screen.
func (d *Driver) resize() {
	sw, sh := d.screen.Size()
	w, h := max(1, sw), max(1, sh-1)
	if d.sim != nil {
		if size := d.sim.Size(); size.W == w && size.H == h {
			d.redraw()
			return
		}
	}
	d.sim = d.factory(d.cfg.SimConfig(w, h))
	d.held = false
	log.Printf("world %dx%d", w, h)
	d.redraw()
}

// Run polls input and advances the simulation until ctx is cancelled or the
// user quits.
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	defer d.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(d.pace.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if d.pace.ShouldStep() {
				d.Tick()
			}
		}
	}
}

// HandleEvent applies one input event. It returns false when the user asks
// to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		d.resize()
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			d.held = false
			return true
		}
		mx, my := ev.Position()
		size := d.sim.Size()
		if my >= size.H {
			d.held = false
			return true
		}
		d.heldX, d.heldY = app.GridCoord(mx, my, 1, size)
		d.held = true
		d.paint()
		d.show()
	case *tcell.EventKey:
		return d.handleKey(ev)
	}
	return true
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); r {
	case 'q':
		return false
	case ' ':
		d.paused = !d.paused
	case 'n':
		d.tickOnce = true
	case 'r':
		d.sim.Reset(d.cfg.Seed)
		d.redraw()
	case 'c':
		d.tools.ToggleCycling()
	case 's':
		d.tools.SetTool(core.ToolSand)
	case 'b':
		d.tools.SetTool(core.ToolBlock)
	case 'e':
		d.tools.SetTool(core.ToolErase)
	case 'm':
		d.toggleParam(shuffleColumnsKey)
	case ']':
		d.tools.Grow()
	case '[':
		d.tools.Shrink()
	default:
		if r >= '1' && r <= '9' {
			d.tools.SelectColor(int(r - '1'))
		}
	}
	d.drawStatus()
	d.show()
	return true
}

// Holding reports whether button 1 is down over the world.
func (d *Driver) Holding() bool { return d.held }

// paint applies the current tool at the held position.
func (d *Driver) paint() {
	brush, ok := d.sim.(core.Brush)
	if !ok {
		return
	}
	d.tools.Apply(brush, d.heldX, d.heldY)
	d.drawArea(d.heldX, d.heldY, d.tools.Radius())
}

const shuffleColumnsKey = "shuffle_columns"

// toggleParam flips a boolean tunable on sims that expose one.
func (d *Driver) toggleParam(key string) {
	provider, ok := d.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	setter, ok := d.sim.(core.BoolParameterSetter)
	if !ok {
		return
	}
	param, ok := provider.Parameters().Lookup(key)
	if !ok || param.Type != core.ParamTypeBool {
		return
	}
	cur, err := strconv.ParseBool(param.Value)
	if err != nil {
		return
	}
	if setter.SetBoolParameter(key, !cur) {
		log.Printf("%s=%t", key, !cur)
	}
}

// Tick paints at the held position, advances the simulation once unless
// paused, and repaints the cells that changed.
func (d *Driver) Tick() {
	if d.held {
		d.paint()
	}
	if d.paused && !d.tickOnce {
		if d.held {
			d.show()
		}
		return
	}
	d.tickOnce = false
	d.drawCells(d.sim.Step())
	d.drawStatus()
	d.show()
}

func (d *Driver) redraw() {
	d.screen.Clear()
	size := d.sim.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			d.drawCell(x, y)
		}
	}
	d.drawStatus()
	d.show()
}

func (d *Driver) drawCells(changed []geom.Point) {
	for _, p := range changed {
		d.drawCell(p.X, p.Y)
	}
}

func (d *Driver) drawArea(cx, cy, radius int) {
	size := d.sim.Size()
	r := radius + 1
	for y := max(0, cy-r); y <= min(size.H-1, cy+r); y++ {
		for x := max(0, cx-r); x <= min(size.W-1, cx+r); x++ {
			d.drawCell(x, y)
		}
	}
}

func (d *Driver) drawCell(x, y int) {
	d.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(rgb(d.sim.ColorAt(x, y))))
}

func (d *Driver) drawStatus() {
	size := d.sim.Size()
	state := "running"
	if d.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s r=%d %s ", d.tools.Tool(), d.tools.Radius(), state)
	swatch := tcell.StyleDefault.Background(rgb(d.tools.Color()))
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	y := size.H
	x := 0
	d.screen.SetContent(x, y, ' ', nil, swatch)
	x++
	for _, r := range line {
		d.screen.SetContent(x, y, r, nil, plain)
		x++
	}
	sw, _ := d.screen.Size()
	for ; x < sw; x++ {
		d.screen.SetContent(x, y, ' ', nil, plain)
	}
}

func (d *Driver) show() { d.screen.Show() }

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
