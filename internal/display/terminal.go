package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jsvensson/colorgen/internal/swatch"
)

const blockWidth = 6

// Terminal prints one line per swatch: an optional colored block followed by
// the selected formats.
type Terminal struct {
	out     *termenv.Output
	formats []swatch.Format
	block   bool
}

// NewTerminal returns a Terminal writing to w. The color profile is detected
// from the environment unless opts override it.
func NewTerminal(w io.Writer, formats []swatch.Format, block bool, opts ...termenv.OutputOption) *Terminal {
	if len(formats) == 0 {
		formats = swatch.Formats
	}
	return &Terminal{
		out:     termenv.NewOutput(w, opts...),
		formats: formats,
		block:   block,
	}
}

func (t *Terminal) Show(s swatch.Swatch) error {
	parts := make([]string, 0, len(t.formats)+1)
	if t.block {
		block := t.out.String(strings.Repeat(" ", blockWidth)).Background(t.out.Color(s.Color.Hex()))
		parts = append(parts, block.String())
	}
	for _, f := range t.formats {
		parts = append(parts, s.Text(f))
	}
	_, err := fmt.Fprintln(t.out, strings.Join(parts, "  "))
	return err
}
