// Package palette maps a monotonically increasing cursor onto a smoothly
// interpolated color drawn from a fixed palette.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cycler walks a fixed palette, blending linearly between adjacent entries.
// The cursor only ever moves forward; the palette wraps around.
type Cycler struct {
	colors []colorful.Color
	cursor float64
	speed  float64
}

// NewCycler builds a cycler over the given palette. An empty palette falls
// back to a single white entry so Next never has to fail.
func NewCycler(colors []color.Color) *Cycler {
	cs := make([]colorful.Color, 0, len(colors))
	for _, c := range colors {
		if cc, ok := colorful.MakeColor(c); ok {
			cs = append(cs, cc)
		}
	}
	if len(cs) == 0 {
		cs = append(cs, colorful.Color{R: 1, G: 1, B: 1})
	}
	return &Cycler{colors: cs}
}

// SetSpeed sets the cursor increment applied by each Next call. Negative
// speeds are treated as zero (cursor frozen).
func (c *Cycler) SetSpeed(s float64) {
	if s < 0 {
		s = 0
	}
	c.speed = s
}

func (c *Cycler) Speed() float64 { return c.speed }

// Len returns the palette length.
func (c *Cycler) Len() int { return len(c.colors) }

// Next advances the cursor by the current speed and returns the blended
// color at the new position. With speed 0 the same color is returned on
// every call.
func (c *Cycler) Next() color.Color {
	c.cursor += c.speed
	n := len(c.colors)
	if n == 1 {
		return c.colors[0]
	}
	pos := math.Mod(c.cursor, float64(n))
	i := int(pos)
	if i >= n {
		i = n - 1
	}
	f := pos - float64(i)
	return c.colors[i].BlendRgb(c.colors[(i+1)%n], f).Clamped()
}
