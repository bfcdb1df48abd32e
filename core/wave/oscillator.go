package wave

import (
	"math"
	"math/rand"
)

// Waveform selects the trig function an Oscillator evaluates.
type Waveform int

const (
	Sine Waveform = iota
	Cosine
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Cosine:
		return "cosine"
	default:
		return "unknown"
	}
}

// Oscillator is a single sinusoidal signal with a slowly drifting phase.
// Phase is unbounded; trigonometric periodicity wraps it implicitly.
type Oscillator struct {
	Amplitude float64
	Frequency float64 // cycles per time unit
	Phase     float64 // radians
	Drift     float64 // radians added per Advance
	Form      Waveform
}

func NewOscillator(amplitude, frequency, phase, drift float64, form Waveform) *Oscillator {
	return &Oscillator{
		Amplitude: amplitude,
		Frequency: frequency,
		Phase:     phase,
		Drift:     drift,
		Form:      form,
	}
}

const (
	// minAmplitudeScale keeps randomized oscillators from collapsing to a
	// near-zero swing that would draw an invisible pattern.
	minAmplitudeScale = 0.25
	// maxDrift bounds the per-step phase drift of randomized oscillators.
	maxDrift = 0.015
)

// RandomOscillator builds a sine oscillator with randomized parameters:
// amplitude scaled from the drawing radius, phase uniform in [0, 2π) and a
// small positive drift. The random source is supplied by the caller so
// construction is deterministic under test.
func RandomOscillator(rng *rand.Rand, radius, frequency float64) *Oscillator {
	return &Oscillator{
		Amplitude: radius * (minAmplitudeScale + (1-minAmplitudeScale)*rng.Float64()),
		Frequency: frequency,
		Phase:     rng.Float64() * 2 * math.Pi,
		Drift:     rng.Float64() * maxDrift,
		Form:      Sine,
	}
}

// Value evaluates the oscillator at time t. Pure; no state is touched.
func (o *Oscillator) Value(t float64) float64 {
	arg := t*o.Frequency + o.Phase
	if o.Form == Cosine {
		return o.Amplitude * math.Cos(arg)
	}
	return o.Amplitude * math.Sin(arg)
}

// Advance drifts the phase by one step.
func (o *Oscillator) Advance() { o.Phase += o.Drift }
