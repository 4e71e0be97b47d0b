package sand

// Scene names accepted by Config.Scene.
const (
	SceneEmpty     = "empty"
	SceneFunnel    = "funnel"
	SceneHourglass = "hourglass"
)

// Scenes lists the available scene names.
func Scenes() []string {
	return []string{SceneEmpty, SceneFunnel, SceneHourglass}
}

func validScene(name string) bool {
	for _, s := range Scenes() {
		if s == name {
			return true
		}
	}
	return false
}

func (w *World) buildScene() {
	width, height := w.Width(), w.Height()
	mid := width / 2
	gap := max(1, width/40)
	switch w.cfg.Scene {
	case SceneFunnel:
		top := height / 4
		neck := height / 2
		w.blockLine(0, top, mid-gap, neck)
		w.blockLine(width-1, top, mid+gap, neck)
	case SceneHourglass:
		neck := height / 2
		w.blockLine(0, 0, mid-gap, neck)
		w.blockLine(width-1, 0, mid+gap, neck)
		w.blockLine(mid-gap, neck, 0, height-1)
		w.blockLine(mid+gap, neck, width-1, height-1)
	}
}

// blockLine rasterizes a wall between two points, skipping cells outside
// the grid.
func (w *World) blockLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if w.InBounds(x0, y0) {
			w.Set(x0, y0, BlockCell(BlockColor))
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
