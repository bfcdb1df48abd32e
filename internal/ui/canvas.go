package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/session"
)

const (
	vinylRim    = 6 // rim width around the drawable disc, px
	grooveCount = 4
	spindleSize = 4
)

// Canvas is the rasterizer: it owns the persistent stroke layer and clips it
// to the vinyl disc with an alpha mask before compositing onto the screen.
type Canvas struct {
	strokes *ebiten.Image // accumulated strokes, window sized
	masked  *ebiten.Image // per-frame clipped copy
	mask    *ebiten.Image // filled disc, alpha mask

	w, h   int
	radius float64
}

func NewCanvas(w, h int, radius float64) *Canvas {
	c := &Canvas{
		strokes: ebiten.NewImage(w, h),
		masked:  ebiten.NewImage(w, h),
		w:       w,
		h:       h,
	}
	c.SetRadius(radius)
	return c
}

// Center returns the disc center in window pixels, vertically centered in
// the area below the control bar.
func (c *Canvas) Center() (float64, float64) {
	return float64(c.w) / 2, barHeight + float64(c.h-barHeight)/2
}

// Resize rebuilds the layers for a new window size, keeping whatever part of
// the existing drawing still fits.
func (c *Canvas) Resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	old := c.strokes
	c.w, c.h = w, h
	c.strokes = ebiten.NewImage(w, h)
	c.strokes.DrawImage(old, nil)
	old.Deallocate()

	c.masked.Deallocate()
	c.masked = ebiten.NewImage(w, h)
	c.rebuildMask()
}

// SetRadius sets the drawable-disc radius, rebuilding the clip mask when it
// changes.
func (c *Canvas) SetRadius(r float64) {
	if r == c.radius && c.mask != nil {
		return
	}
	c.radius = r
	c.rebuildMask()
}

func (c *Canvas) Radius() float64 { return c.radius }

func (c *Canvas) rebuildMask() {
	if c.mask != nil {
		c.mask.Deallocate()
	}
	c.mask = ebiten.NewImage(c.w, c.h)
	cx, cy := c.Center()
	vector.DrawFilledCircle(c.mask, float32(cx), float32(cy), float32(c.radius), color.White, true)
}

// Clear wipes the stroke layer. The disc and core state are untouched.
func (c *Canvas) Clear() { c.strokes.Clear() }

// Stroke rasterizes one center-relative stroke onto the persistent layer.
func (c *Canvas) Stroke(st session.Stroke) {
	cx, cy := c.Center()
	vector.StrokeLine(c.strokes,
		float32(st.Seg.A.X+cx), float32(st.Seg.A.Y+cy),
		float32(st.Seg.B.X+cx), float32(st.Seg.B.Y+cy),
		float32(st.Weight), st.Color, true)
}

// Draw paints the vinyl disc and the clipped strokes onto dst.
func (c *Canvas) Draw(dst *ebiten.Image) {
	cx, cy := c.Center()
	fcx, fcy, fr := float32(cx), float32(cy), float32(c.radius)

	vector.DrawFilledCircle(dst, fcx, fcy, fr+vinylRim, colVinylRim, true)
	vector.DrawFilledCircle(dst, fcx, fcy, fr, colVinyl, true)
	for i := 1; i <= grooveCount; i++ {
		gr := fr * float32(i) / float32(grooveCount+1)
		vector.StrokeCircle(dst, fcx, fcy, gr, 1, colGroove, true)
	}

	c.masked.Clear()
	c.masked.DrawImage(c.strokes, nil)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	c.masked.DrawImage(c.mask, op)
	dst.DrawImage(c.masked, nil)

	vector.DrawFilledCircle(dst, fcx, fcy, spindleSize, colSpindle, true)
}
