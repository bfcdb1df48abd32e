package ui

import (
	"image"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Button is a clickable rectangle with a centered text label. OnClick fires
// when the mouse is released inside the bounds.
type Button struct {
	r       image.Rectangle
	Text    string
	Active  bool // highlighted (current mode, pause engaged)
	OnClick func()
	pressed bool
}

func NewButton(text string, onClick func()) *Button {
	return &Button{Text: text, OnClick: onClick}
}

func (b *Button) Rect() image.Rectangle { return b.r }

func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Handle processes one frame of mouse state and reports whether the button
// consumed the interaction.
func (b *Button) Handle(mx, my int, pressed bool) bool {
	inside := pt(mx, my, b.r)
	if pressed {
		if inside {
			b.pressed = true
		}
		return b.pressed
	}
	if b.pressed {
		b.pressed = false
		if inside {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

// Draw renders the button and its label.
func (b *Button) Draw(dst *ebiten.Image) {
	fill := colButtonIdle
	if b.Active {
		fill = colButtonActive
	}
	drawButton(dst, b.r, fill, colButtonBorder, b.pressed)

	w := debugCharW * utf8.RuneCountInString(b.Text)
	x := b.r.Min.X + (b.r.Dx()-w)/2
	y := b.r.Min.Y + (b.r.Dy()-debugCharH)/2
	ebitenutil.DebugPrintAt(dst, b.Text, x, y)
}
