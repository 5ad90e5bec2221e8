package color

import (
	"fmt"
	"math"
)

// HSL is a color in the hue/saturation/lightness model.
// H is in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts 8-bit RGB channels to HSL. The result is not rounded;
// use Round or String for the whole-number form.
func RGBToHSL(red, green, blue uint8) HSL {
	// Normalize RGB to 0-1 range
	r, g, b := float64(red)/255.0, float64(green)/255.0, float64(blue)/255.0

	var h, s float64

	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)
	l := (max + min) / 2.0

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}

		// Ties resolve red, then green, then blue.
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6.0
			}
		case g:
			h = (b-r)/d + 2.0
		case b:
			h = (r-g)/d + 4.0
		}
		h *= 60.0
	}

	return HSL{H: h, S: s * 100.0, L: l * 100.0}
}

// HSLToRGB converts HSL to an 8-bit Color. Hue wraps around the circle;
// saturation and lightness are clamped to [0, 100].
func HSLToRGB(h, s, l float64) Color {
	h = wrapHue(h) / 360.0
	s = clamp(s, 0, 100) / 100.0
	l = clamp(l, 0, 100) / 100.0

	var r, g, b float64

	if s == 0 { // Achromatic
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1.0 + s)
		} else {
			q = l + s - l*s
		}
		p := 2.0*l - q

		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return Color{
		R: channel(r * 255.0),
		G: channel(g * 255.0),
		B: channel(b * 255.0),
	}
}

// RGB converts h back to an 8-bit Color.
func (h HSL) RGB() Color {
	return HSLToRGB(h.H, h.S, h.L)
}

// Round returns h with the hue rounded to whole degrees and saturation and
// lightness rounded to whole percent. A hue that rounds up to 360 becomes 0.
func (h HSL) Round() HSL {
	return HSL{
		H: math.Mod(math.Round(h.H), 360),
		S: math.Round(h.S),
		L: math.Round(h.L),
	}
}

// String returns the rounded color as an hsl() string, e.g. "hsl(343, 76%, 68%)".
func (h HSL) String() string {
	r := h.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.L))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// wrapHue maps any hue in degrees onto [0, 360).
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clamp limits v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
