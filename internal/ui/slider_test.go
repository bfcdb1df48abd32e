package ui

import (
	"image"
	"testing"
)

func TestSliderClamp(t *testing.T) {
	s := NewSlider("weight", 0, 10, 0)
	s.SetRect(image.Rect(0, 0, 100, 10))
	// start drag inside
	if !s.Handle(1, 5, true) {
		t.Fatalf("expected handle to start drag")
	}
	// drag beyond max width
	s.Handle(150, 5, true)
	if s.Value < 0.99 || s.Value > 1 {
		t.Fatalf("expected value clamped to 1 got %f", s.Value)
	}
	// release
	s.Handle(150, 5, false)
}

func TestSliderMappedRange(t *testing.T) {
	s := NewSlider("radius", 60, 320, 190)
	if got := s.Mapped(); got < 189.9 || got > 190.1 {
		t.Fatalf("expected initial mapped value 190 got %f", got)
	}
	s.Value = 0
	if s.Mapped() != 60 {
		t.Fatalf("expected min mapped value 60 got %f", s.Mapped())
	}
	s.Value = 1
	if s.Mapped() != 320 {
		t.Fatalf("expected max mapped value 320 got %f", s.Mapped())
	}
}

func TestSliderSetMappedClamps(t *testing.T) {
	s := NewSlider("speed", 0, 0.2, 5)
	if s.Value != 1 {
		t.Fatalf("expected over-range initial to clamp knob to 1, got %f", s.Value)
	}
	s.SetMapped(-3)
	if s.Value != 0 {
		t.Fatalf("expected under-range value to clamp knob to 0, got %f", s.Value)
	}
}

func TestSliderIgnoresPressOutside(t *testing.T) {
	s := NewSlider("color", 0, 1, 0.5)
	s.SetRect(image.Rect(0, 0, 100, 10))
	if s.Handle(50, 50, true) {
		t.Fatalf("expected press outside bounds to be ignored")
	}
	if s.Value != 0.5 {
		t.Fatalf("value changed without drag: %f", s.Value)
	}
}
