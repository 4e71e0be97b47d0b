package sand

import (
	"math"
	"slices"

	"mad-sand/pkg/core"
)

// processRoom moves every sand particle inside room (rx, ry) at most once and
// returns the source and destination of each move.
//
// The bottom row of the world is never part of any room, so it acts as a
// permanent floor.
func (w *World) processRoom(rx, ry int) []core.Point {
	x0 := rx * w.roomSize.X
	x1 := min(w.Width(), (rx+1)*w.roomSize.X)
	y0 := ry * w.roomSize.Y
	y1 := min(w.Height()-1, (ry+1)*w.roomSize.Y)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	xs := make([]int, 0, x1-x0)
	for x := x0; x < x1; x++ {
		xs = append(xs, x)
	}
	ys := make([]int, 0, y1-y0)
	for y := y0; y < y1; y++ {
		ys = append(ys, y)
	}
	w.rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	w.rng.Shuffle(len(ys), func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })
	if !w.cfg.Params.ShuffleColumns {
		slices.Sort(xs)
	}

	var changed []core.Point
	claimed := make(map[core.Point]struct{})
	for _, x := range xs {
		for i := len(ys) - 1; i >= 0; i-- {
			y := ys[i]
			if _, ok := claimed[core.Pt(x, y)]; ok {
				continue
			}
			cell := w.grid.Get(x, y)
			switch cell.Kind {
			case Empty, Block:
			case Sand:
				dst, data, ok := w.nextPosition(x, y, cell.Particle)
				if !ok {
					continue
				}
				if _, taken := claimed[dst]; taken {
					continue
				}
				w.grid.Set(x, y, EmptyCell())
				w.grid.Set(dst.X, dst.Y, SandCell(data))
				changed = append(changed, core.Pt(x, y), dst)
				claimed[dst] = struct{}{}
			}
		}
	}
	return changed
}

// nextPosition decides where the particle at (x, y) goes this pass and the
// velocity it carries there. ok is false when it stays put.
func (w *World) nextPosition(x, y int, p ParticleData) (dst core.Point, data ParticleData, ok bool) {
	params := w.cfg.Params
	width, height := w.Width(), w.Height()

	data = p
	data.Speed.Y += float32(params.Gravity)

	speed := float64(data.Speed.Y)
	maxDy := math.Ceil(speed)
	if w.rng.Bool() {
		maxDy = math.Floor(speed)
	}

	if w.rng.Chance(params.FallProbeChance) {
		for dy := 1; dy <= int(maxDy); dy++ {
			blocked := y+dy >= height || !w.isEmpty(x, y+dy)
			if !blocked && dy == int(maxDy) {
				return core.Pt(x, y+dy), data, true
			}
			if blocked {
				if dy > 1 {
					landed := data
					landed.Speed.Y *= float32(params.LandingDamping)
					return core.Pt(x, y+dy-1), landed, true
				}
				break
			}
		}
	}

	belowEmpty := y+1 < height && w.isEmpty(x, y+1)

	// A buried particle may jump sideways into a gap a few columns away.
	if y > 0 && y < height-1 {
		k := w.rng.IntRange(params.SlideReachMin, params.SlideReachMax)
		if x > k && x < width-k && !belowEmpty && !w.isEmpty(x, y-1) {
			right := w.isEmpty(x+k, y+1) && !w.isEmpty(x-k, y+1)
			left := w.isEmpty(x-k, y+1) && !w.isEmpty(x+k, y+1)
			slid := data
			slid.Speed.Y = float32(params.SlideSpeed)
			switch {
			case right:
				return core.Pt(x+k, y+1), slid, true
			case left:
				return core.Pt(x-k, y+1), slid, true
			}
		}
	}

	if y+1 < height && !belowEmpty {
		right := x < width-1 && w.isEmpty(x+1, y+1)
		left := x > 0 && w.isEmpty(x-1, y+1)
		if left && right {
			right = w.rng.Bool()
			left = !right
		}
		switch {
		case right:
			return core.Pt(x+1, y+1), data, true
		case left:
			return core.Pt(x-1, y+1), data, true
		}
	}
	return core.Point{}, data, false
}
