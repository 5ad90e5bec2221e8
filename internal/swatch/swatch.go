package swatch

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jsvensson/colorgen/internal/color"
)

// Format selects one of the textual color representations.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

// Formats lists every format in display order.
var Formats = []Format{FormatHex, FormatRGB, FormatHSL}

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps "hex", "rgb" or "hsl" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	}
	return 0, fmt.Errorf("unknown format %q (valid: hex, rgb, hsl)", s)
}

// Swatch is a single generated color.
type Swatch struct {
	Color color.Color
}

// Text renders the swatch in the given format.
func (s Swatch) Text(f Format) string {
	switch f {
	case FormatRGB:
		return s.Color.RGB()
	case FormatHSL:
		return s.Color.HSL().String()
	}
	return s.Color.Hex()
}

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. A zero seed is replaced by the
// current time, so only non-zero seeds are reproducible.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// Generator produces random swatches.
type Generator struct {
	Source Source
}

// Next returns a swatch with each channel drawn independently from [0, 255].
func (g *Generator) Next() Swatch {
	return Swatch{Color: color.Color{
		R: uint8(g.Source.IntN(256)),
		G: uint8(g.Source.IntN(256)),
		B: uint8(g.Source.IntN(256)),
	}}
}

// Generate returns n swatches.
func (g *Generator) Generate(n int) []Swatch {
	out := make([]Swatch, 0, max(n, 0))
	for range n {
		out = append(out, g.Next())
	}
	return out
}
