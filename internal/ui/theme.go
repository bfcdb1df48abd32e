package ui

import "image/color"

// barHeight is the control-bar height in px; the drawable area starts below.
const barHeight = 76

var (
	colBG       = color.RGBA{18, 16, 22, 255}
	colBar      = color.RGBA{15, 15, 15, 255}
	colVinyl    = color.RGBA{24, 22, 28, 255}
	colVinylRim = color.RGBA{8, 8, 10, 255}
	colGroove   = color.RGBA{38, 36, 44, 255}
	colSpindle  = color.RGBA{210, 205, 215, 255}

	colButtonBorder = color.RGBA{240, 240, 240, 255}
	colButtonIdle   = color.RGBA{40, 40, 40, 255}
	colButtonActive = color.RGBA{40, 160, 200, 255}
	colBoxFill      = color.RGBA{40, 40, 40, 255}
	colError        = color.RGBA{200, 40, 40, 255}

	colSliderTrack = color.RGBA{80, 80, 80, 255}
	colSliderKnob  = color.RGBA{200, 200, 200, 255}
)

// strokePalette feeds the session's color cyclers.
var strokePalette = []color.Color{
	color.RGBA{239, 71, 111, 255},
	color.RGBA{255, 209, 102, 255},
	color.RGBA{6, 214, 160, 255},
	color.RGBA{17, 138, 178, 255},
	color.RGBA{147, 129, 255, 255},
	color.RGBA{255, 255, 255, 255},
}

// fadeColor scales a color's alpha by t in [0,1], used for error flashes.
func fadeColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c.A = uint8(float64(c.A) * t)
	return c
}
