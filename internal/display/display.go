// Package display writes generated swatches to a terminal and copies their
// text to the system clipboard.
package display

import (
	"fmt"

	"github.com/jsvensson/colorgen/internal/swatch"
)

// Display shows a swatch to the user.
type Display interface {
	Show(s swatch.Swatch) error
}

// Clipboard receives copied text.
type Clipboard interface {
	Copy(text string) error
}

// Copier copies swatch text to a Clipboard and reports the result through
// Feedback, if set.
type Copier struct {
	Clipboard Clipboard
	Feedback  func(msg string)
}

// Copy copies text and, on success, sends "Copied: <text>" to Feedback.
func (c *Copier) Copy(text string) error {
	if err := c.Clipboard.Copy(text); err != nil {
		return fmt.Errorf("copying %q: %w", text, err)
	}
	if c.Feedback != nil {
		c.Feedback("Copied: " + text)
	}
	return nil
}
