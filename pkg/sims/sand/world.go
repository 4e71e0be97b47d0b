package sand

import (
	"image/color"
	"math"

	"mad-sand/pkg/core"
)

const (
	// RoomGridSize is the number of rooms along each axis, independent of the
	// world size.
	RoomGridSize = 24
	// RoomHeat is the activity a room is raised to whenever a cell in it or
	// in a neighboring room is written.
	RoomHeat = 12
)

// World holds the cell grid and the per-room activity counters used to skip
// settled regions. It is not safe for concurrent use.
type World struct {
	cfg Config

	grid     *core.Grid[Cell]
	rooms    *core.Grid[int]
	roomSize core.Point

	rng   *core.RNG
	frame uint64
}

// New returns an empty World of the given size using the default config.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// configured scene is applied immediately.
func NewWithConfig(cfg Config) *World {
	grid := core.NewGrid(cfg.Width, cfg.Height, EmptyCell())
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	w := &World{
		cfg:   cfg,
		grid:  grid,
		rooms: core.NewGrid(RoomGridSize, RoomGridSize, 0),
		roomSize: core.Pt(
			ceilDiv(grid.Width(), RoomGridSize),
			ceilDiv(grid.Height(), RoomGridSize),
		),
		rng: core.NewRNG(cfg.Seed),
	}
	w.buildScene()
	return w
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Width returns the number of columns.
func (w *World) Width() int { return w.grid.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.grid.Height() }

// InBounds reports whether (x, y) is a valid cell coordinate.
func (w *World) InBounds(x, y int) bool { return w.grid.InBounds(x, y) }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Frame returns the number of frames processed since construction or Reset.
func (w *World) Frame() uint64 { return w.frame }

// Get returns the cell at (x, y). Out-of-range coordinates panic.
func (w *World) Get(x, y int) Cell { return w.grid.Get(x, y) }

// Set overwrites the cell at (x, y) and wakes the surrounding rooms.
// Out-of-range coordinates panic.
func (w *World) Set(x, y int, c Cell) {
	w.grid.Set(x, y, c)
	w.heat(x, y)
}

func (w *World) heat(x, y int) {
	w.rooms.SetNeighbor(x/w.roomSize.X, y/w.roomSize.Y, RoomHeat)
}

func (w *World) isEmpty(x, y int) bool { return w.grid.Get(x, y).IsEmpty() }

// RoomSize returns the number of cells each room spans along each axis.
func (w *World) RoomSize() core.Point { return w.roomSize }

// RoomGrid returns the number of rooms along each axis.
func (w *World) RoomGrid() (int, int) { return w.rooms.Width(), w.rooms.Height() }

// RoomHotness returns the activity counter of room (rx, ry).
func (w *World) RoomHotness(rx, ry int) int { return w.rooms.Get(rx, ry) }

// ActiveRooms counts rooms that will be processed next frame, before decay.
func (w *World) ActiveRooms() int {
	n := 0
	for _, v := range w.rooms.Cells() {
		if v > 1 {
			n++
		}
	}
	return n
}

// Count returns the number of cells of the given kind.
func (w *World) Count(k Kind) int {
	n := 0
	for _, c := range w.grid.Cells() {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// AddSand scatters up to radius*4 particles around (x, y). Candidates that
// land outside the grid or on an occupied cell are dropped. It returns the
// number of particles placed.
func (w *World) AddSand(x, y int, c color.RGBA, radius int) int {
	if radius < 0 {
		return 0
	}
	placed := 0
	for range radius * 4 {
		// Radius is uniform, not area-uniform, so density peaks at the center.
		r := math.Floor(w.rng.FloatRange(0, float64(radius)+0.99))
		angle := w.rng.FloatRange(0, 2*math.Pi)
		px := int(math.Floor(float64(x) + r*math.Cos(angle)))
		py := int(math.Floor(float64(y) + r*math.Sin(angle)))
		if !w.InBounds(px, py) || !w.isEmpty(px, py) {
			continue
		}
		w.Set(px, py, SandCell(ParticleData{
			Speed: core.Vector2[float32]{X: 0, Y: float32(w.cfg.Params.InitialSpeed)},
			Color: c,
		}))
		placed++
	}
	return placed
}

// AddBlock fills the disk of the given radius around (x, y) with blocks,
// overwriting whatever was there.
func (w *World) AddBlock(x, y int, c color.RGBA, radius int) {
	w.fillDisk(x, y, radius, BlockCell(c))
}

// Erase clears the disk of the given radius around (x, y).
func (w *World) Erase(x, y, radius int) {
	w.fillDisk(x, y, radius, EmptyCell())
}

func (w *World) fillDisk(cx, cy, radius int, c Cell) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for y := max(0, cy-radius); y <= min(w.Height()-1, cy+radius); y++ {
		for x := max(0, cx-radius); x <= min(w.Width()-1, cx+radius); x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			w.Set(x, y, c)
		}
	}
}

// ProcessFrame advances the automaton by one tick and returns every
// coordinate whose contents changed. The list is not deduplicated.
func (w *World) ProcessFrame() []core.Point {
	for v := range w.rooms.All() {
		if *v > 0 {
			*v--
		}
	}

	var changed []core.Point
	for ry := 0; ry < w.rooms.Height(); ry++ {
		for rx := 0; rx < w.rooms.Width(); rx++ {
			if w.rooms.Get(rx, ry) <= 0 {
				continue
			}
			changed = append(changed, w.processRoom(rx, ry)...)
		}
	}

	for _, p := range changed {
		w.heat(p.X, p.Y)
	}
	w.frame++
	return changed
}

// Reset clears the world, cools every room, reseeds the random stream and
// rebuilds the configured scene. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.grid.Fill(EmptyCell())
	w.rooms.Fill(0)
	w.rng.Reseed(seed)
	w.frame = 0
	w.buildScene()
}
