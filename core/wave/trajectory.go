package wave

import (
	"math/rand"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/geom"
)

// DefaultFrequency is the base frequency used for randomized trajectories.
const DefaultFrequency = 1.0

// Trajectory composes oscillators into a 2D point moving over time. The
// position at time t is the sum of the x oscillators on one axis and the sum
// of the y oscillators on the other.
type Trajectory struct {
	XOsc     []*Oscillator
	YOsc     []*Oscillator
	TimeStep float64

	time   float64
	pos    geom.Vec2
	prev   geom.Vec2
	paused bool
}

// NewTrajectory builds the default randomized trajectory: a single x-axis
// oscillator and a flat y axis. The lopsided setup is deliberate — it is
// what gives the orbit its signature look. Callers wanting a custom shape
// use NewTrajectoryWith.
func NewTrajectory(rng *rand.Rand, radius, timeStep float64) *Trajectory {
	return NewTrajectoryWith(
		[]*Oscillator{RandomOscillator(rng, radius, DefaultFrequency)},
		nil,
		timeStep,
	)
}

// NewTrajectoryWith builds a trajectory from explicit oscillator lists.
func NewTrajectoryWith(xs, ys []*Oscillator, timeStep float64) *Trajectory {
	return &Trajectory{XOsc: xs, YOsc: ys, TimeStep: timeStep}
}

func (tr *Trajectory) SetPaused(p bool) { tr.paused = p }

func (tr *Trajectory) Paused() bool { return tr.paused }

func (tr *Trajectory) SetTimeStep(dt float64) {
	if dt < 0 {
		dt = 0
	}
	tr.TimeStep = dt
}

// Time returns the accumulated time.
func (tr *Trajectory) Time() float64 { return tr.time }

// Position returns the position computed by the last Step.
func (tr *Trajectory) Position() geom.Vec2 { return tr.pos }

// Step advances the trajectory by one frame and returns the segment from the
// previous position to the new one. While paused nothing moves and no
// segment is produced. The first meaningful step after construction
// (time <= TimeStep) is suppressed as well: both endpoints still sit at the
// origin and drawing them would paint a garbage line. Must be called at most
// once per rendered frame or the visual speed desynchronizes from the
// configured rate.
func (tr *Trajectory) Step() (geom.Segment, bool) {
	if tr.paused {
		return geom.Segment{}, false
	}
	tr.prev = tr.pos
	tr.pos = geom.Vec2{X: sum(tr.XOsc, tr.time), Y: sum(tr.YOsc, tr.time)}
	tr.time += tr.TimeStep
	for _, o := range tr.XOsc {
		o.Advance()
	}
	for _, o := range tr.YOsc {
		o.Advance()
	}
	if tr.time <= tr.TimeStep {
		return geom.Segment{}, false
	}
	return geom.Segment{A: tr.prev, B: tr.pos}, true
}

func sum(oscs []*Oscillator, t float64) float64 {
	var v float64
	for _, o := range oscs {
		v += o.Value(t)
	}
	return v
}
