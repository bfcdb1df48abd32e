package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/core/session"
	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/utils"
)

// Controls is the top control bar: mode buttons, pause and clear, the
// symmetry-order box and the parameter sliders. It owns no drawing state;
// the game reads a Config snapshot from it every frame.
type Controls struct {
	PointerBtn    *Button
	ProceduralBtn *Button
	PauseBtn      *Button
	ClearBtn      *Button

	sym      *NumberInput
	symmetry int
	symErr   float64

	Weight    *Slider
	ColorRate *Slider
	Speed     *Slider
	Radius    *Slider

	OnPointerMode    func()
	OnProceduralMode func()
	OnTogglePause    func()
	OnClear          func()
}

func NewControls() *Controls {
	def := session.DefaultConfig()
	c := &Controls{symmetry: def.SymmetryOrder}

	c.PointerBtn = NewButton("draw", func() { c.fire(c.OnPointerMode) })
	c.ProceduralBtn = NewButton("orbit", func() { c.fire(c.OnProceduralMode) })
	c.PauseBtn = NewButton("pause", func() { c.fire(c.OnTogglePause) })
	c.ClearBtn = NewButton("clear", func() { c.fire(c.OnClear) })

	c.sym = NewNumberInput(image.Rectangle{}, def.SymmetryOrder)

	c.Weight = NewSlider("weight", 1, 12, def.StrokeWeight)
	c.ColorRate = NewSlider("color", 0, 0.2, def.ColorSpeed)
	c.Speed = NewSlider("speed", 0, 0.2, def.TimeStep)
	c.Radius = NewSlider("radius", 60, 320, def.Radius)

	c.Layout(800)
	return c
}

func (c *Controls) fire(f func()) {
	if f != nil {
		f()
	}
}

// Layout positions the widgets across the bar for the given window width.
// Buttons and the symmetry box sit on the top row, sliders on the bottom.
func (c *Controls) Layout(w int) {
	const (
		rowTopY, rowTopH = 8, 22
		btnW, gap        = 52, 8
	)
	x := 10
	for _, b := range c.buttons() {
		b.SetRect(image.Rect(x, rowTopY, x+btnW, rowTopY+rowTopH))
		x += btnW + gap
	}
	// "sym:" label precedes the box; leave room for it
	x += 4 * debugCharW
	c.sym.Rect = image.Rect(x, rowTopY, x+40, rowTopY+rowTopH)

	sliderY := barHeight - 22
	sliders := c.sliders()
	avail := w - 20 - gap*(len(sliders)-1)
	sw := avail / len(sliders)
	if sw < 60 {
		sw = 60
	}
	x = 10
	for _, s := range sliders {
		s.SetRect(image.Rect(x, sliderY, x+sw, sliderY+14))
		x += sw + gap
	}
}

func (c *Controls) buttons() []*Button {
	return []*Button{c.PointerBtn, c.ProceduralBtn, c.PauseBtn, c.ClearBtn}
}

func (c *Controls) sliders() []*Slider {
	return []*Slider{c.Weight, c.ColorRate, c.Speed, c.Radius}
}

// Symmetry returns the committed symmetry order.
func (c *Controls) Symmetry() int { return c.symmetry }

// Config snapshots the current control values.
func (c *Controls) Config() session.Config {
	return session.Config{
		SymmetryOrder: c.symmetry,
		StrokeWeight:  c.Weight.Mapped(),
		ColorSpeed:    c.ColorRate.Mapped(),
		TimeStep:      c.Speed.Mapped(),
		Radius:        c.Radius.Mapped(),
	}
}

// Update processes one frame of mouse input and reports whether the pointer
// interaction belongs to the bar (so the canvas must ignore it).
func (c *Controls) Update() bool {
	mx, my := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)

	consumed := false
	for _, b := range c.buttons() {
		if b.Handle(mx, my, pressed) {
			consumed = true
		}
	}
	if v, ok := c.sym.Update(); ok {
		clamped := utils.ClampInt(v, session.MinSymmetry, session.MaxSymmetry)
		if clamped != v {
			c.symErr = 1
		}
		c.symmetry = clamped
		c.sym.SetValue(clamped)
	}
	for _, s := range c.sliders() {
		if s.Handle(mx, my, pressed) {
			consumed = true
		}
	}
	if pressed && my < barHeight {
		consumed = true
	}

	c.symErr *= 0.85
	if c.symErr < 0.01 {
		c.symErr = 0
	}
	return consumed
}

// Draw renders the bar. mode and paused select which buttons highlight.
func (c *Controls) Draw(dst *ebiten.Image, mode session.Mode, paused bool) {
	drawRect(dst, image.Rect(0, 0, dst.Bounds().Dx(), barHeight), colBar, true)

	c.PointerBtn.Active = mode == session.ModePointer
	c.ProceduralBtn.Active = mode == session.ModeProcedural
	c.PauseBtn.Active = paused
	for _, b := range c.buttons() {
		b.Draw(dst)
	}

	ebitenutil.DebugPrintAt(dst, "sym:", c.sym.Rect.Min.X-4*debugCharW, c.sym.Rect.Min.Y+4)
	c.sym.Draw(dst)
	if c.symErr > 0 {
		drawRect(dst, c.sym.Rect, fadeColor(colError, c.symErr), false)
	}

	for _, s := range c.sliders() {
		s.Draw(dst)
	}
}
