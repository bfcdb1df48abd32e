package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func rgba(c color.Color) (uint32, uint32, uint32) {
	r, g, b, _ := c.RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestNextWithZeroSpeedIsConstant(t *testing.T) {
	c := NewCycler([]color.Color{red, blue})
	first := c.Next()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Next())
	}
}

func TestSingleColorPaletteNeverBlends(t *testing.T) {
	c := NewCycler([]color.Color{red})
	c.SetSpeed(0.37)
	for i := 0; i < 20; i++ {
		r, g, b := rgba(c.Next())
		assert.EqualValues(t, 255, r)
		assert.EqualValues(t, 0, g)
		assert.EqualValues(t, 0, b)
	}
}

func TestEmptyPaletteFallsBackToWhite(t *testing.T) {
	c := NewCycler(nil)
	require.Equal(t, 1, c.Len())
	r, g, b := rgba(c.Next())
	assert.EqualValues(t, 255, r)
	assert.EqualValues(t, 255, g)
	assert.EqualValues(t, 255, b)
}

func TestNextBlendsAdjacentEntries(t *testing.T) {
	c := NewCycler([]color.Color{red, blue})
	c.SetSpeed(0.5)
	// cursor 0.5: halfway between red and blue
	r, g, b := rgba(c.Next())
	assert.InDelta(t, 128, float64(r), 2)
	assert.EqualValues(t, 0, g)
	assert.InDelta(t, 128, float64(b), 2)
}

func TestCursorWrapsAroundPalette(t *testing.T) {
	c := NewCycler([]color.Color{red, blue})
	c.SetSpeed(2) // full palette length per call, lands back on red
	for i := 0; i < 5; i++ {
		r, _, b := rgba(c.Next())
		assert.EqualValues(t, 255, r)
		assert.EqualValues(t, 0, b)
	}
}

func TestNegativeSpeedTreatedAsZero(t *testing.T) {
	c := NewCycler([]color.Color{red, blue})
	c.SetSpeed(-1)
	assert.Zero(t, c.Speed())
	first := c.Next()
	assert.Equal(t, first, c.Next())
}
