package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// RGBToHex encodes an RGB triple as an upper-case hex string, e.g. "#EB6F92".
// Channels are rounded to the nearest integer and clamped to [0, 255], so any
// numeric input produces a valid code.
func RGBToHex(r, g, b float64) string {
	return Color{R: channel(r), G: channel(g), B: channel(b)}.Hex()
}

// HexToRGB parses a hex color code like "#eb6f92", "EB6F92" or "#fff" into a Color.
func HexToRGB(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return Color{}, invalidFormat(s, "must be 3 or 6 hex digits")
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, invalidFormat(s, fmt.Sprintf("%q is not a hex digit", digits[i]))
		}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, invalidFormat(s, err.Error())
	}
	return Color{
		R: uint8(v >> 16 & 0xff),
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
	}, nil
}

// Hex returns the color as an upper-case hex string with leading #, e.g. "#EB6F92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "EB6F92".
func (c Color) HexBare() string {
	return strings.TrimPrefix(c.Hex(), "#")
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns the color in the HSL model at full precision.
func (c Color) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// channel rounds v and clamps it into the 8-bit range.
func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}
