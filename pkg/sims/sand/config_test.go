package sand

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	simcore "mad-sand/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "-3",
		"seed":              "12",
		"scene":             "hourglass",
		"gravity":           "0.3",
		"fall_probe_chance": "1.5",
		"slide_reach_min":   "5",
		"slide_reach_max":   "3",
		"shuffle_columns":   "true",
		"initial_speed":     "nope",
	})
	def := DefaultConfig()
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, def.Height, c.Height)
	assert.Equal(t, int64(12), c.Seed)
	assert.Equal(t, SceneHourglass, c.Scene)
	assert.InDelta(t, 0.3, c.Params.Gravity, 1e-9)
	assert.Equal(t, def.Params.FallProbeChance, c.Params.FallProbeChance)
	assert.Equal(t, 5, c.Params.SlideReachMin)
	assert.Equal(t, 5, c.Params.SlideReachMax)
	assert.True(t, c.Params.ShuffleColumns)
	assert.Equal(t, def.Params.InitialSpeed, c.Params.InitialSpeed)

	assert.Equal(t, def, FromMap(nil))
	assert.Equal(t, SceneEmpty, FromMap(map[string]string{"scene": "volcano"}).Scene)
}

func TestParameterSetters(t *testing.T) {
	w := New(10, 10)
	require.True(t, w.SetFloatParameter("gravity", 5))
	assert.Equal(t, 2.0, w.Config().Params.Gravity)
	require.True(t, w.SetFloatParameter("fall_probe_chance", -1))
	assert.Zero(t, w.Config().Params.FallProbeChance)
	assert.False(t, w.SetFloatParameter("unknown", 1))

	require.True(t, w.SetIntParameter("slide_reach_max", 1))
	assert.Equal(t, w.Config().Params.SlideReachMin, w.Config().Params.SlideReachMax)
	assert.False(t, w.SetIntParameter("gravity", 1))

	require.True(t, w.SetBoolParameter("shuffle_columns", true))
	assert.True(t, w.Config().Params.ShuffleColumns)

	snap := w.Parameters()
	p, ok := snap.Lookup("gravity")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
	p, ok = snap.Lookup("shuffle_columns")
	require.True(t, ok)
	assert.Equal(t, "true", p.Value)

	for _, ctrl := range w.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has no snapshot value", ctrl.Key)
	}
}

func TestEveryControlHasSetter(t *testing.T) {
	w := New(10, 10)
	snap := w.Parameters()
	var sawBool bool
	for _, ctrl := range w.ParameterControls() {
		p, ok := snap.Lookup(ctrl.Key)
		require.True(t, ok, ctrl.Key)
		assert.Equal(t, ctrl.Type, p.Type, ctrl.Key)
		switch ctrl.Type {
		case simcore.ParamTypeInt:
			assert.True(t, w.SetIntParameter(ctrl.Key, 3), ctrl.Key)
		case simcore.ParamTypeFloat:
			assert.True(t, w.SetFloatParameter(ctrl.Key, 0.5), ctrl.Key)
		case simcore.ParamTypeBool:
			sawBool = true
			assert.True(t, w.SetBoolParameter(ctrl.Key, true), ctrl.Key)
		}
	}
	assert.True(t, sawBool, "scan order toggle not exposed as a control")
	assert.True(t, w.Config().Params.ShuffleColumns)
}

func TestColorAt(t *testing.T) {
	w := New(3, 3)
	green := color.RGBA{G: 200}
	w.Set(0, 0, SandCell(ParticleData{Color: green}))
	w.Set(1, 0, BlockCell(color.RGBA{B: 9, A: 255}))
	assert.Equal(t, color.RGBA{G: 200, A: 255}, w.ColorAt(0, 0))
	assert.Equal(t, color.RGBA{B: 9, A: 255}, w.ColorAt(1, 0))
	assert.Equal(t, DefaultConfig().Background, w.ColorAt(2, 2))
}

func TestRegisteredSimPaints(t *testing.T) {
	factory, ok := simcore.Sims()["sand"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "30", "h": "20"})
	assert.Equal(t, "sand", sim.Name())
	assert.Equal(t, simcore.Size{W: 30, H: 20}, sim.Size())
	assert.Contains(t, simcore.Names(), "sand")

	brush, ok := sim.(simcore.Brush)
	require.True(t, ok)
	w := sim.(*World)

	brush.Paint(simcore.ToolBlock, 5, 5, BlockColor, 1)
	assert.Equal(t, 5, w.Count(Block))
	brush.Paint(simcore.ToolSand, 20, 5, red, 4)
	assert.Positive(t, w.Count(Sand))
	brush.Paint(simcore.ToolErase, 5, 5, color.RGBA{}, 2)
	assert.Zero(t, w.Count(Block))

	sand := w.Count(Sand)
	changed := sim.Step()
	assert.Equal(t, sand, w.Count(Sand))
	for _, p := range changed {
		assert.True(t, w.InBounds(p.X, p.Y))
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "sand", Sand.String())
	assert.Equal(t, "block", Block.String())
	assert.True(t, EmptyCell().IsEmpty())
	assert.Equal(t, Cell{}, EmptyCell())
}
