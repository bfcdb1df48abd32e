package session

import (
	"math/rand"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/geom"
	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/palette"
	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/wave"
)

// Pointer is the pointer state sampled once per frame, in canvas-pixel
// coordinates. The session translates it to center-relative coordinates
// before any drawer sees it.
type Pointer struct {
	Pressed bool
	Pos     geom.Vec2
	Prev    geom.Vec2
}

// Drawer is a source of line segments, one per frame at most. The two
// variants replace the original's abstract base class: the interface makes
// an unimplemented drawer a compile error instead of a runtime guard.
type Drawer interface {
	// Step produces this frame's segment in center-relative coordinates.
	// ok is false when there is nothing to draw this frame.
	Step(ptr Pointer) (seg geom.Segment, ok bool)
	// Colors returns the drawer's own color cycler.
	Colors() *palette.Cycler
}

// PointerDrawer draws wherever the pressed pointer moves, as long as it
// stays inside the drawing disc.
type PointerDrawer struct {
	colors *palette.Cycler
	radius float64
}

func NewPointerDrawer(colors *palette.Cycler) *PointerDrawer {
	return &PointerDrawer{colors: colors}
}

func (d *PointerDrawer) Colors() *palette.Cycler { return d.colors }

func (d *PointerDrawer) Step(ptr Pointer) (geom.Segment, bool) {
	if !ptr.Pressed {
		return geom.Segment{}, false
	}
	if ptr.Pos.Len() > d.radius {
		return geom.Segment{}, false
	}
	return geom.Segment{A: ptr.Prev, B: ptr.Pos}, true
}

// ProceduralDrawer draws the trajectory traced by a sum of sinusoids.
type ProceduralDrawer struct {
	colors *palette.Cycler
	traj   *wave.Trajectory
}

func NewProceduralDrawer(colors *palette.Cycler, rng *rand.Rand, cfg Config) *ProceduralDrawer {
	return &ProceduralDrawer{
		colors: colors,
		traj:   wave.NewTrajectory(rng, cfg.Radius, cfg.TimeStep),
	}
}

func (d *ProceduralDrawer) Colors() *palette.Cycler { return d.colors }

func (d *ProceduralDrawer) Step(Pointer) (geom.Segment, bool) {
	return d.traj.Step()
}

// restart swaps in a brand-new trajectory: time back to zero, fresh random
// phases. The cycler is kept; only the motion restarts.
func (d *ProceduralDrawer) restart(rng *rand.Rand, cfg Config) {
	paused := d.traj.Paused()
	d.traj = wave.NewTrajectory(rng, cfg.Radius, cfg.TimeStep)
	d.traj.SetPaused(paused)
}
