// Package session orchestrates the kaleidoscope's per-frame drawing: it owns
// the active drawer (pointer or procedural), feeds its segment through the
// color cycler and the symmetry fan, and hands the resulting strokes to the
// rasterizer callback.
package session

import (
	"image/color"
	"math/rand"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/geom"
	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/palette"
	game_log "github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/log"
)

// Mode selects the active drawer.
type Mode int

const (
	ModePointer Mode = iota
	ModeProcedural
)

func (m Mode) String() string {
	switch m {
	case ModePointer:
		return "pointer"
	case ModeProcedural:
		return "procedural"
	default:
		return "unknown"
	}
}

// Stroke is one drawable line segment with its color and weight, in
// center-relative coordinates. The rasterizer translates and clips.
type Stroke struct {
	Seg    geom.Segment
	Color  color.Color
	Weight float64
}

// StrokeFunc receives each stroke produced during a frame.
type StrokeFunc func(Stroke)

// Session is the orchestrator. Single-threaded by contract: all methods are
// called from the shell's frame tick, never concurrently.
type Session struct {
	cfg    Config
	mode   Mode
	paused bool
	center geom.Vec2

	rng    *rand.Rand
	logger *game_log.Logger

	pointer    *PointerDrawer
	procedural *ProceduralDrawer

	scratch []geom.Segment
}

// New builds a session starting in pointer mode. Both drawers own a cycler
// over the same palette so their color cursors advance independently.
func New(logger *game_log.Logger, rng *rand.Rand, colors []color.Color, cfg Config) *Session {
	cfg = cfg.Normalized()
	return &Session{
		cfg:        cfg,
		mode:       ModePointer,
		rng:        rng,
		logger:     logger,
		pointer:    NewPointerDrawer(palette.NewCycler(colors)),
		procedural: NewProceduralDrawer(palette.NewCycler(colors), rng, cfg),
		scratch:    make([]geom.Segment, 0, 2*MaxSymmetry),
	}
}

// SetCenter sets the canvas center in pixel coordinates, used to translate
// pointer positions to center-relative ones.
func (s *Session) SetCenter(x, y float64) { s.center = geom.Vec2{X: x, Y: y} }

// SetConfig installs this frame's configuration snapshot.
func (s *Session) SetConfig(cfg Config) { s.cfg = cfg.Normalized() }

func (s *Session) Config() Config { return s.cfg }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Paused() bool { return s.paused }

// SwitchToPointer activates the pointer drawer. Its state (color cursor)
// survives mode round-trips.
func (s *Session) SwitchToPointer() {
	s.mode = ModePointer
	s.logger.Debugf("[SESSION] mode -> %s", s.mode)
}

// SwitchToProcedural activates the procedural drawer and always restarts it
// with a fresh trajectory, discarding prior time and phase state.
func (s *Session) SwitchToProcedural() {
	s.mode = ModeProcedural
	s.procedural.restart(s.rng, s.cfg)
	s.logger.Debugf("[SESSION] mode -> %s (trajectory restarted)", s.mode)
}

// TogglePause flips the pause flag. Pausing suppresses the trajectory's
// steps without destroying it; pointer drawing is unaffected.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.procedural.traj.SetPaused(s.paused)
	s.logger.Debugf("[SESSION] paused=%v", s.paused)
}

// Frame runs one tick: step the active drawer, pick the frame's color, emit
// the symmetric stroke fan. Must be called exactly once per rendered frame.
func (s *Session) Frame(ptr Pointer, draw StrokeFunc) {
	cfg := s.cfg

	var (
		active Drawer
		seg    geom.Segment
		ok     bool
	)
	switch s.mode {
	case ModePointer:
		s.pointer.radius = cfg.Radius
		rel := Pointer{
			Pressed: ptr.Pressed,
			Pos:     ptr.Pos.Sub(s.center),
			Prev:    ptr.Prev.Sub(s.center),
		}
		active = s.pointer
		seg, ok = active.Step(rel)
	case ModeProcedural:
		s.procedural.traj.SetTimeStep(cfg.TimeStep)
		active = s.procedural
		seg, ok = active.Step(Pointer{})
	}
	if !ok {
		return
	}

	cyc := active.Colors()
	cyc.SetSpeed(cfg.ColorSpeed)
	col := cyc.Next()

	s.scratch = geom.Emit(s.scratch[:0], seg, cfg.SymmetryOrder)
	for _, m := range s.scratch {
		draw(Stroke{Seg: m, Color: col, Weight: cfg.StrokeWeight})
	}
}
