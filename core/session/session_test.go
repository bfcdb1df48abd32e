package session

import (
	"image/color"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/geom"
	game_log "github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/log"
)

var testColors = []color.Color{
	color.RGBA{255, 0, 0, 255},
	color.RGBA{0, 0, 255, 255},
}

func newTestSession(seed int64) *Session {
	logger := game_log.New(io.Discard, game_log.LevelNone)
	return New(logger, rand.New(rand.NewSource(seed)), testColors, DefaultConfig())
}

func collect(dst *[]Stroke) StrokeFunc {
	return func(st Stroke) { *dst = append(*dst, st) }
}

func TestConfigNormalizedClamps(t *testing.T) {
	c := Config{SymmetryOrder: 0, StrokeWeight: -1, ColorSpeed: -2, TimeStep: -3, Radius: 0}.Normalized()
	assert.Equal(t, MinSymmetry, c.SymmetryOrder)
	assert.Greater(t, c.StrokeWeight, 0.0)
	assert.Zero(t, c.ColorSpeed)
	assert.Zero(t, c.TimeStep)
	assert.Greater(t, c.Radius, 0.0)

	c = Config{SymmetryOrder: 99, StrokeWeight: 1, Radius: 1}.Normalized()
	assert.Equal(t, MaxSymmetry, c.SymmetryOrder)
}

func TestPointerModeIdleDrawsNothing(t *testing.T) {
	s := newTestSession(1)
	s.SetCenter(300, 300)

	var out []Stroke
	s.Frame(Pointer{Pressed: false}, collect(&out))
	assert.Empty(t, out)
}

func TestPointerModeEmitsSymmetricFan(t *testing.T) {
	s := newTestSession(1)
	s.SetCenter(300, 300)
	cfg := DefaultConfig()
	cfg.SymmetryOrder = 6
	cfg.StrokeWeight = 3
	s.SetConfig(cfg)

	var out []Stroke
	ptr := Pointer{
		Pressed: true,
		Prev:    geom.Vec2{X: 300, Y: 300},
		Pos:     geom.Vec2{X: 310, Y: 305},
	}
	s.Frame(ptr, collect(&out))

	require.Len(t, out, 2*6)
	// first copy is the raw center-relative segment
	assert.Equal(t, geom.Vec2{X: 0, Y: 0}, out[0].Seg.A)
	assert.Equal(t, geom.Vec2{X: 10, Y: 5}, out[0].Seg.B)
	for _, st := range out {
		assert.Equal(t, 3.0, st.Weight)
		assert.Equal(t, out[0].Color, st.Color)
	}
}

func TestPointerOutsideRadiusDrawsNothing(t *testing.T) {
	s := newTestSession(1)
	s.SetCenter(300, 300)
	cfg := DefaultConfig()
	cfg.Radius = 50
	s.SetConfig(cfg)

	var out []Stroke
	ptr := Pointer{
		Pressed: true,
		Prev:    geom.Vec2{X: 300, Y: 300},
		Pos:     geom.Vec2{X: 400, Y: 300}, // 100px out, radius 50
	}
	s.Frame(ptr, collect(&out))
	assert.Empty(t, out)
}

func TestProceduralFirstFrameSuppressed(t *testing.T) {
	s := newTestSession(2)
	s.SwitchToProcedural()

	var out []Stroke
	s.Frame(Pointer{}, collect(&out))
	assert.Empty(t, out, "first procedural frame must not draw")

	s.Frame(Pointer{}, collect(&out))
	require.Len(t, out, 2*s.Config().SymmetryOrder)
}

func TestPauseSuppressesProceduralSteps(t *testing.T) {
	s := newTestSession(3)
	s.SwitchToProcedural()

	var out []Stroke
	s.Frame(Pointer{}, collect(&out)) // suppressed first step
	s.TogglePause()
	timeBefore := s.procedural.traj.Time()
	for i := 0; i < 5; i++ {
		s.Frame(Pointer{}, collect(&out))
	}
	assert.Empty(t, out)
	assert.Equal(t, timeBefore, s.procedural.traj.Time())

	s.TogglePause()
	s.Frame(Pointer{}, collect(&out))
	s.Frame(Pointer{}, collect(&out))
	assert.NotEmpty(t, out)
}

func TestSwitchToProceduralRestartsTrajectory(t *testing.T) {
	s := newTestSession(4)

	s.SwitchToProcedural()
	var out []Stroke
	for i := 0; i < 10; i++ {
		s.Frame(Pointer{}, collect(&out))
	}
	assert.Greater(t, s.procedural.traj.Time(), 0.0)

	phases := map[float64]bool{}
	for i := 0; i < 4; i++ {
		s.SwitchToProcedural()
		assert.Zero(t, s.procedural.traj.Time(), "restart must reset time")
		phases[s.procedural.traj.XOsc[0].Phase] = true
	}
	assert.Greater(t, len(phases), 1, "restarts should draw fresh random phases")
}

func TestPointerStateSurvivesModeRoundTrip(t *testing.T) {
	s := newTestSession(5)
	before := s.pointer
	s.SwitchToProcedural()
	s.SwitchToPointer()
	assert.Same(t, before, s.pointer)
	assert.Equal(t, ModePointer, s.Mode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "pointer", ModePointer.String())
	assert.Equal(t, "procedural", ModeProcedural.String())
}
