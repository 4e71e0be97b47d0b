//go:build ebiten

package ui

import (
	"image/color"

	"mad-sand/internal/core"
	geom "mad-sand/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// roomProvider is implemented by sims that skip settled regions and can
// report how active each region is.
type roomProvider interface {
	RoomGrid() (int, int)
	RoomSize() geom.Point
	RoomHotness(rx, ry int) int
}

// Overlay tints each room by its activity counter. H toggles it.
type Overlay struct {
	sim   core.Sim
	rooms roomProvider
	scale int
	show  bool
	heat  *ebiten.Image
	buf   []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(1, scale)}
	if rp, ok := sim.(roomProvider); ok {
		o.rooms = rp
	}
	return o
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints the room heat map over the simulation when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.rooms == nil {
		return
	}
	gw, gh := o.rooms.RoomGrid()
	if gw <= 0 || gh <= 0 {
		return
	}
	if o.heat == nil {
		o.heat = ebiten.NewImage(gw, gh)
		o.buf = make([]byte, gw*gh*4)
	}
	for ry := 0; ry < gh; ry++ {
		for rx := 0; rx < gw; rx++ {
			c := heatColor(o.rooms.RoomHotness(rx, ry))
			i := (ry*gw + rx) * 4
			o.buf[i+0] = c.R
			o.buf[i+1] = c.G
			o.buf[i+2] = c.B
			o.buf[i+3] = c.A
		}
	}
	o.heat.WritePixels(o.buf)

	rs := o.rooms.RoomSize()
	clip := heatClip(o.sim.Size(), gw, gh, rs, o.scale)
	if clip.Empty() {
		return
	}
	dst := screen.SubImage(clip).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rs.X*o.scale), float64(rs.Y*o.scale))
	dst.DrawImage(o.heat, op)
}

// heatColor maps an activity counter onto a translucent blue-to-red ramp.
// Cold rooms are fully transparent.
func heatColor(v int) color.RGBA {
	if v <= 0 {
		return color.RGBA{}
	}
	const maxHeat = 12
	t := min(v, maxHeat) * 255 / maxHeat
	// Premultiplied alpha: channels must not exceed A.
	a := uint8(96)
	return color.RGBA{
		R: uint8(t * int(a) / 255),
		B: uint8((255 - t) * int(a) / 255),
		A: a,
	}
}
