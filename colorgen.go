// Package colorgen converts colors between the hex, RGB and HSL
// representations shown by the colorgen display.
//
// Hex codes are always produced in upper case ("#FF0000"); parsing accepts
// either case, with or without the leading #, in 3- or 6-digit form.
//
// RGBToHSL keeps full precision so that HSLToRGB(RGBToHSL(c)) is within 1
// of c on every channel. Rounding to whole degrees and percent happens only
// in HSL.Round and HSL.String; converting the rounded values back can be off
// by several units.
package colorgen

import "github.com/jsvensson/colorgen/internal/color"

// RGB is an 8-bit-per-channel color.
type RGB = color.Color

// HSL is a hue/saturation/lightness color: hue in degrees, saturation and
// lightness in percent.
type HSL = color.HSL

// InvalidFormatError is returned when a color string cannot be parsed.
type InvalidFormatError = color.InvalidFormatError

// ErrInvalidFormat matches any InvalidFormatError via errors.Is.
var ErrInvalidFormat = color.ErrInvalidFormat

// RGBToHex encodes r, g, b as "#RRGGBB". Inputs are rounded and clamped to
// [0, 255].
func RGBToHex(r, g, b float64) string {
	return color.RGBToHex(r, g, b)
}

// HexToRGB decodes a 3- or 6-digit hex code, with or without #.
func HexToRGB(hex string) (RGB, error) {
	return color.HexToRGB(hex)
}

// RGBToHSL converts 8-bit channels to HSL at full precision.
func RGBToHSL(r, g, b uint8) HSL {
	return color.RGBToHSL(r, g, b)
}

// HSLToRGB converts HSL to 8-bit channels.
func HSLToRGB(h, s, l float64) RGB {
	return color.HSLToRGB(h, s, l)
}

// Parse reads a color in hex, rgb() or hsl() display form.
func Parse(s string) (RGB, error) {
	return color.Parse(s)
}
