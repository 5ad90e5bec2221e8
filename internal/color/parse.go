package color

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbFunc = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslFunc = regexp.MustCompile(`^hsl\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%?\s*,\s*(\d+(?:\.\d+)?)%?\s*\)$`)
)

// Parse reads a color in any of the display formats: a hex code (with or
// without #, 3 or 6 digits), "rgb(r, g, b)" or "hsl(h, s%, l%)".
func Parse(s string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(text, "rgb("):
		m := rgbFunc.FindStringSubmatch(text)
		if m == nil {
			return Color{}, invalidFormat(s, "expected rgb(r, g, b)")
		}
		var ch [3]uint8
		for i, part := range m[1:] {
			v, _ := strconv.Atoi(part)
			if v > 255 {
				return Color{}, invalidFormat(s, "rgb channel "+part+" out of range 0-255")
			}
			ch[i] = uint8(v)
		}
		return Color{R: ch[0], G: ch[1], B: ch[2]}, nil

	case strings.HasPrefix(text, "hsl("):
		m := hslFunc.FindStringSubmatch(text)
		if m == nil {
			return Color{}, invalidFormat(s, "expected hsl(h, s%, l%)")
		}
		var v [3]float64
		for i, part := range m[1:] {
			v[i], _ = strconv.ParseFloat(part, 64)
		}
		if v[1] > 100 || v[2] > 100 {
			return Color{}, invalidFormat(s, "saturation and lightness must be 0-100%")
		}
		return HSLToRGB(v[0], v[1], v[2]), nil
	}

	c, err := HexToRGB(text)
	var fe *InvalidFormatError
	if errors.As(err, &fe) {
		// Report the caller's input, not the normalized text.
		return Color{}, invalidFormat(s, fe.Reason)
	}
	return c, err
}
