package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/haruo-gabriel/kaleidoscope-vinyl-generator/internal/utils"
)

// Slider is a horizontal slider whose 0..1 knob position maps linearly onto
// the [Min, Max] range.
type Slider struct {
	r        image.Rectangle
	Label    string
	Min, Max float64
	Value    float64 // knob position, 0..1
	dragging bool
}

func NewSlider(label string, min, max, initial float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max}
	s.SetMapped(initial)
	return s
}

func (s *Slider) SetRect(r image.Rectangle) { s.r = r }

func (s *Slider) Rect() image.Rectangle { return s.r }

// Mapped returns the slider's value in [Min, Max] units.
func (s *Slider) Mapped() float64 { return utils.Lerp(s.Min, s.Max, s.Value) }

// SetMapped positions the knob from a [Min, Max] value.
func (s *Slider) SetMapped(v float64) {
	if s.Max == s.Min {
		s.Value = 0
		return
	}
	s.Value = utils.Clamp((v-s.Min)/(s.Max-s.Min), 0, 1)
}

// Handle processes mouse interaction.
func (s *Slider) Handle(mx, my int, pressed bool) bool {
	if pressed {
		if s.dragging || image.Pt(mx, my).In(s.r) {
			s.dragging = true
			s.setFromX(mx)
			return true
		}
	} else if s.dragging {
		s.dragging = false
		return true
	}
	return false
}

func (s *Slider) setFromX(mx int) {
	w := s.r.Dx() - 1
	if w <= 0 {
		s.Value = 0
		return
	}
	pos := utils.Clamp(float64(mx-s.r.Min.X), 0, float64(w))
	s.Value = pos / float64(w)
}

// Draw renders the slider with its label and mapped value.
func (s *Slider) Draw(dst *ebiten.Image) {
	trackY := s.r.Min.Y + s.r.Dy()/2 - 2
	trackRect := image.Rect(s.r.Min.X, trackY, s.r.Max.X, trackY+4)
	drawRect(dst, trackRect, colSliderTrack, true)

	knobX := s.r.Min.X + int(s.Value*float64(s.r.Dx()-1))
	knobRect := image.Rect(knobX-2, s.r.Min.Y, knobX+2, s.r.Max.Y)
	drawRect(dst, knobRect, colSliderKnob, true)

	txt := fmt.Sprintf("%s %.2f", s.Label, s.Mapped())
	ebitenutil.DebugPrintAt(dst, txt, s.r.Min.X, s.r.Min.Y-15)
}
