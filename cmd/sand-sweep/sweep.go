package main

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"mad-sand/internal/app"
	"mad-sand/pkg/sims/sand"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

func (l kvList) toMap() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// sweepAxes lists the values tried per swept key. A key pinned with -set is
// not swept.
var sweepAxes = []struct {
	key    string
	values []string
}{
	{key: "gravity", values: []string{"0.1", "0.15", "0.25"}},
	{key: "landing_damping", values: []string{"0.05", "0.1", "0.3"}},
	{key: "slide_reach_max", values: []string{"2", "4", "6"}},
}

// paramSet is one combination of swept values, merged over the base map.
type paramSet map[string]string

func (p paramSet) String() string {
	parts := make([]string, 0, len(sweepAxes))
	for _, axis := range sweepAxes {
		if v, ok := p[axis.key]; ok {
			parts = append(parts, axis.key+"="+v)
		}
	}
	return strings.Join(parts, " ")
}

// buildSets expands the cartesian product of the unpinned axes over base.
func buildSets(base map[string]string) []paramSet {
	sets := []paramSet{maps.Clone(base)}
	for _, axis := range sweepAxes {
		if _, pinned := base[axis.key]; pinned {
			continue
		}
		next := make([]paramSet, 0, len(sets)*len(axis.values))
		for _, s := range sets {
			for _, v := range axis.values {
				c := maps.Clone(s)
				c[axis.key] = v
				next = append(next, c)
			}
		}
		sets = next
	}
	return sets
}

type scenarioResult struct {
	params      paramSet
	sand        int
	settleFrame int
	settled     bool
	changed     int
	pileHeight  int
}

// runScenario pours sand from the top center for pourFrames, then steps
// until no room is active or maxFrames is reached.
func runScenario(params paramSet, pourFrames, maxFrames int) scenarioResult {
	world := sand.NewWithConfig(sand.FromMap(params))
	cx := world.Width() / 2
	red := app.DefaultPalette[2]

	res := scenarioResult{params: params}
	for frame := 1; frame <= maxFrames; frame++ {
		if frame <= pourFrames {
			world.AddSand(cx, app.DefaultRadius, red, app.DefaultRadius)
		}
		res.changed += len(world.ProcessFrame())
		if frame > pourFrames && world.ActiveRooms() == 0 {
			res.settleFrame = frame
			res.settled = true
			break
		}
	}
	if !res.settled {
		res.settleFrame = maxFrames
	}
	res.sand = world.Count(sand.Sand)
	res.pileHeight = pileHeight(world)
	return res
}

// pileHeight is the distance from the floor to the topmost sand particle.
func pileHeight(w *sand.World) int {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.Get(x, y).Kind == sand.Sand {
				return w.Height() - y
			}
		}
	}
	return 0
}

func baseMap(width, height int, seed int64, overrides kvList) map[string]string {
	base := map[string]string{
		"w":    strconv.Itoa(width),
		"h":    strconv.Itoa(height),
		"seed": strconv.FormatInt(seed, 10),
	}
	maps.Copy(base, overrides.toMap())
	return base
}
