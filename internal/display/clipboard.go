package display

import (
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 copies text by writing an OSC 52 escape sequence, which terminals
// (and tmux or screen, in their modes) forward to the system clipboard.
type OSC52 struct {
	w    io.Writer
	mode string
}

// NewOSC52 returns a clipboard writing to w. Mode is "default", "tmux" or
// "screen"; empty means "default".
func NewOSC52(w io.Writer, mode string) (*OSC52, error) {
	switch mode {
	case "":
		mode = "default"
	case "default", "tmux", "screen":
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (valid: default, tmux, screen)", mode)
	}
	return &OSC52{w: w, mode: mode}, nil
}

func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	switch c.mode {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.w)
	return err
}
