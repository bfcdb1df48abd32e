package session

// Symmetry order bounds. Below 2 the rotation step degenerates; above 32 the
// copies overlap into a blur and the stroke fan gets expensive.
const (
	MinSymmetry = 2
	MaxSymmetry = 32
)

// Config is the per-frame configuration snapshot the shell pushes into the
// session. There is no ambient global state; whatever the sliders say this
// frame is what the session sees.
type Config struct {
	SymmetryOrder int
	StrokeWeight  float64
	ColorSpeed    float64
	TimeStep      float64
	Radius        float64 // drawing-area radius in canvas pixels
}

// DefaultConfig returns the values the toy starts with.
func DefaultConfig() Config {
	return Config{
		SymmetryOrder: 8,
		StrokeWeight:  2,
		ColorSpeed:    0.02,
		TimeStep:      0.05,
		Radius:        260,
	}
}

// Normalized clamps every field into its valid range so degenerate values
// never reach the rendering math.
func (c Config) Normalized() Config {
	if c.SymmetryOrder < MinSymmetry {
		c.SymmetryOrder = MinSymmetry
	}
	if c.SymmetryOrder > MaxSymmetry {
		c.SymmetryOrder = MaxSymmetry
	}
	if c.StrokeWeight <= 0 {
		c.StrokeWeight = 1
	}
	if c.ColorSpeed < 0 {
		c.ColorSpeed = 0
	}
	if c.TimeStep < 0 {
		c.TimeStep = 0
	}
	if c.Radius <= 0 {
		c.Radius = 1
	}
	return c
}
