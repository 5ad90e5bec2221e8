package display

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jsvensson/colorgen/internal/color"
	"github.com/jsvensson/colorgen/internal/swatch"
)

// Template renders each swatch through a user-supplied text/template.
// A trailing newline is added when the template output lacks one.
type Template struct {
	w    io.Writer
	tmpl *template.Template
}

// templateData is the data passed to templates.
type templateData struct {
	Color color.Color
	Hex   string
	RGB   string
	HSL   string
}

var funcMap = template.FuncMap{
	"hex": func(c color.Color) string {
		return c.Hex()
	},
	"hexBare": func(c color.Color) string {
		return c.HexBare()
	},
	"rgb": func(c color.Color) string {
		return c.RGB()
	},
	"hsl": func(c color.Color) string {
		return c.HSL().String()
	},
	"lower": strings.ToLower,
}

// NewTemplate parses text and returns a Template writing to w.
func NewTemplate(w io.Writer, text string) (*Template, error) {
	tmpl, err := template.New("swatch").Funcs(funcMap).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &Template{w: w, tmpl: tmpl}, nil
}

func (t *Template) Show(s swatch.Swatch) error {
	var b strings.Builder
	data := templateData{
		Color: s.Color,
		Hex:   s.Text(swatch.FormatHex),
		RGB:   s.Text(swatch.FormatRGB),
		HSL:   s.Text(swatch.FormatHSL),
	}
	if err := t.tmpl.Execute(&b, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(t.w, out)
	return err
}
