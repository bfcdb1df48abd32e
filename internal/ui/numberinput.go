package ui

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NumberInput is a click-to-focus box that accepts digits and commits the
// typed value when focus leaves. Clicking in clears the box; clicking out
// with nothing typed restores the previous value.
type NumberInput struct {
	Rect image.Rectangle

	text      string
	prev      string
	focused   bool
	blink     int
	backspace int
}

func NewNumberInput(r image.Rectangle, initial int) *NumberInput {
	return &NumberInput{Rect: r, text: strconv.Itoa(initial)}
}

func (n *NumberInput) Focused() bool { return n.focused }

// SetValue replaces the displayed value.
func (n *NumberInput) SetValue(v int) { n.text = strconv.Itoa(v) }

// Update processes one frame of input. It returns (value, true) exactly on
// the frame focus leaves the box with a typed number to commit.
func (n *NumberInput) Update() (int, bool) {
	mx, my := cursorPosition()
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		if pt(mx, my, n.Rect) {
			if !n.focused {
				n.focused = true
				n.prev = n.text
				n.text = ""
				n.blink = 0
			}
		} else if n.focused {
			n.focused = false
			return n.commit()
		}
	}
	if !n.focused {
		return 0, false
	}

	n.blink++
	if n.blink > 60 {
		n.blink = 0
	}

	for _, r := range inputChars() {
		if r >= '0' && r <= '9' && len(n.text) < 3 {
			n.text += string(r)
		}
	}
	if n.keyRepeat(ebiten.KeyBackspace) && len(n.text) > 0 {
		n.text = n.text[:len(n.text)-1]
	}
	return 0, false
}

func (n *NumberInput) commit() (int, bool) {
	if n.text == "" {
		n.text = n.prev
		return 0, false
	}
	v, err := strconv.Atoi(n.text)
	if err != nil {
		n.text = n.prev
		return 0, false
	}
	return v, true
}

func (n *NumberInput) keyRepeat(k ebiten.Key) bool {
	if isKeyPressed(k) {
		n.backspace++
		d := n.backspace
		if d == 1 || d > 15 && (d-15)%3 == 0 {
			return true
		}
	} else {
		n.backspace = 0
	}
	return false
}

// Draw renders the box, its text and a blinking cursor while focused.
func (n *NumberInput) Draw(dst *ebiten.Image) {
	drawButton(dst, n.Rect, colBoxFill, colButtonBorder, n.focused)
	ebitenutil.DebugPrintAt(dst, n.text, n.Rect.Min.X+4, n.Rect.Min.Y+4)
	if n.focused && n.blink < 30 {
		cx := n.Rect.Min.X + 4 + debugCharW*len(n.text)
		cursor := image.Rect(cx, n.Rect.Min.Y+4, cx+1, n.Rect.Min.Y+4+debugCharH-2)
		drawRect(dst, cursor, colSpindle, true)
	}
}
