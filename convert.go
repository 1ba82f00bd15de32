package hues

import (
	"math"

	"fortio.org/safecast"
)

// The standard RGB values of the 16 legacy palette codes.
var ansi16 = [16]RGB{
	{0, 0, 0},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// FromCode builds the Color for any of the 256 terminal color codes.
func FromCode(code Channel) Color {
	rgb := codeRGB(code)
	return Color{Code: code, RGB: rgb, HSV: rgbHSV(rgb)}
}

// codeRGB maps a terminal code to its RGB triple: the legacy 16, the 6x6x6
// cube (codes 16-231) or the 24 step grey ramp (232-255).
func codeRGB(code Channel) RGB {
	switch {
	case code < 16:
		return ansi16[code]
	case code > 231:
		s := Channel(code-232)*10 + 8
		return RGB{s, s, s}
	default:
		n := int(code) - 16
		return RGB{cubeChannel(n / 36 % 6), cubeChannel(n / 6 % 6), cubeChannel(n % 6)}
	}
}

// cubeChannel maps a base 6 cube digit to its channel value: 0 stays 0,
// 1-5 map to 95, 135, 175, 215, 255.
func cubeChannel(d int) Channel {
	if d == 0 {
		return 0
	}
	return Channel(d*40 + 55)
}

// rgbHSV computes the quantized HSV triple for an RGB value: hue is rounded
// half-to-even to the nearest 30° step, saturation is (max-min)/max and
// brightness is the max channel. Achromatic colors get hue 0° (the Grey
// family); a chromatic hue that rounds to 0° becomes 360° (Red), keeping 0°
// reserved for Grey.
//
// The float operation order is load bearing: several palette codes sit
// exactly on a 15° rounding boundary (e.g. (215,95,255) at 285°) and the
// classification must not drift under reorderings that are algebraically
// equivalent but round differently.
func rgbHSV(rgb RGB) HSV {
	r, g, b := float64(rgb.R), float64(rgb.G), float64(rgb.B)
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	shade := minc == maxc
	var h, s float64
	if !shade {
		s = (maxc - minc) / maxc
		rc := (maxc - r) / (maxc - minc)
		gc := (maxc - g) / (maxc - minc)
		bc := (maxc - b) / (maxc - minc)
		switch maxc {
		case r:
			h = bc - gc
		case g:
			h = 2.0 + rc - bc
		default:
			h = 4.0 + gc - rc
		}
		h = math.Mod(h/6.0, 1.0)
		if h < 0 {
			h += 1.0
		}
	}
	deg := 30 * int(math.RoundToEven((360*h)/30))
	if !shade && deg == 0 {
		deg = 360
	}
	return HSV{H: Degree(safecast.MustConvert[uint16](deg)), S: Ratio(s), V: Channel(safecast.MustConvert[uint8](int(maxc)))}
}
