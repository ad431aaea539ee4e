package piechart

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Default palette: the red channel starts at 255 and decays by a
// harmonically slowing step per slice, holding green and blue fixed.
const (
	baseColorValue  = 255.0
	colorValueDecay = 75.0
	fillGreen       = 40.0
	fillBlue        = 40.0
)

// ColorForIndex returns the red-channel value for the slice at the
// given zero-based index. It is a pure function of the index: slice
// colors are reproducible and independent of any walk state.
//
// The sequence starts at 255 and each following slice subtracts
// 75/(k+1): 255, 180, 142.5, 117.5, ...
func ColorForIndex(index int) float64 {
	v := baseColorValue
	for k := 0; k < index; k++ {
		v -= colorValueDecay / float64(k+1)
	}
	return v
}

// FillForIndex returns the default fill color rgb(ColorForIndex(i), 40, 40)
// for the slice at the given zero-based index.
func FillForIndex(index int) RGBA {
	return RGB(ColorForIndex(index)/255, fillGreen/255, fillBlue/255)
}
