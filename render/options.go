package render

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Options defines what is drawn & how it's coloured.
type Options struct {
	// Background fills the whole image first.
	Background color.Color

	// DrawDots draws each accepted point as a dot of diameter DotWeight.
	DrawDots  bool
	DotWeight float64

	// RainbowDots colours dots by acceptance order, sweeping the hue from
	// StartHue to EndHue (both 0-100, where 100 is a full turn) at full
	// saturation & brightness. If false every dot is DotColour.
	RainbowDots bool
	StartHue    float64
	EndHue      float64
	DotColour   color.Color

	// DrawActive draws active points over the top in ActiveColour.
	DrawActive   bool
	ActiveColour color.Color

	// DrawLines joins each point to the one accepted before it.
	DrawLines  bool
	LineColour color.Color
	LineWeight float64

	// DrawCells outlines the voronoi cell of every point.
	DrawCells  bool
	CellColour color.Color
	CellWeight float64
}

// DefaultOptions returns reasonable defaults: rainbow dots joined by faint
// green lines on black.
func DefaultOptions() *Options {
	return &Options{
		Background:   colornames.Black,
		DrawDots:     true,
		DotWeight:    6,
		RainbowDots:  true,
		StartHue:     0,
		EndHue:       100,
		DotColour:    colornames.Green,
		DrawActive:   false,
		ActiveColour: colornames.Red,
		DrawLines:    true,
		LineColour:   color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0x22},
		LineWeight:   1,
		DrawCells:    false,
		CellColour:   colornames.Dimgray,
		CellWeight:   1,
	}
}

// DotColour returns the colour of the i'th of n dots.
func DotColour(i, n int, opts *Options) color.Color {
	if !opts.RainbowDots {
		return opts.DotColour
	}
	t := 0.0
	if n > 0 {
		t = float64(i) / float64(n)
	}
	hue := opts.StartHue + (opts.EndHue-opts.StartHue)*t
	return hsv(hue/100, 1, 1)
}

// hsv converts hue, saturation & value (all 0-1, hue wraps) to RGB
func hsv(h, s, v float64) color.NRGBA {
	h = h - math.Floor(h)
	h6 := h * 6
	sector := int(h6) % 6
	f := h6 - math.Floor(h6)

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: 0xff}
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
