package colorgen

import (
	"errors"
	"testing"
)

func TestRGBToHex(t *testing.T) {
	if got := RGBToHex(255, 0, 0); got != "#FF0000" {
		t.Errorf("RGBToHex(255, 0, 0) = %q, want %q", got, "#FF0000")
	}
	if got := RGBToHex(0, 0, 0); got != "#000000" {
		t.Errorf("RGBToHex(0, 0, 0) = %q, want %q", got, "#000000")
	}
}

func TestHexToRGB(t *testing.T) {
	got, err := HexToRGB("#fff")
	if err != nil {
		t.Fatalf("HexToRGB(#fff) error: %v", err)
	}
	if want := (RGB{R: 255, G: 255, B: 255}); got != want {
		t.Errorf("HexToRGB(#fff) = %+v, want %+v", got, want)
	}

	_, err = HexToRGB("zzz")
	var fe *InvalidFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("HexToRGB(zzz) error = %v, want *InvalidFormatError", err)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("HexToRGB(zzz) error does not match ErrInvalidFormat")
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    HSL
	}{
		{"white", 255, 255, 255, HSL{H: 0, S: 0, L: 100}},
		{"black", 0, 0, 0, HSL{H: 0, S: 0, L: 0}},
		{"red", 255, 0, 0, HSL{H: 0, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSL(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToHSL(%d, %d, %d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	want := RGB{R: 255, G: 0, B: 0}
	if got := HSLToRGB(0, 100, 50); got != want {
		t.Errorf("HSLToRGB(0, 100, 50) = %+v, want %+v", got, want)
	}
}

func TestParse(t *testing.T) {
	c := RGB{R: 235, G: 111, B: 146}
	for _, s := range []string{c.Hex(), c.RGB(), "eb6f92"} {
		got, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", s, err)
			continue
		}
		if got != c {
			t.Errorf("Parse(%q) = %+v, want %+v", s, got, c)
		}
	}
}
