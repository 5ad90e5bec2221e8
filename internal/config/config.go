package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/colorgen/internal/format"
	"github.com/jsvensson/colorgen/internal/swatch"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "colorgen.hcl"

var clipboardModes = []string{"default", "tmux", "screen"}

// Config is the decoded colorgen.hcl file. Blocks and attributes that are
// absent from the file keep their Default values.
type Config struct {
	Generate  *Generate  `hcl:"generate,block"`
	Display   *Display   `hcl:"display,block"`
	Clipboard *Clipboard `hcl:"clipboard,block"`
}

// Generate controls how many swatches are produced and from which seed.
type Generate struct {
	Count int    `hcl:"count,optional"`
	Seed  uint64 `hcl:"seed,optional"`
}

// Display controls how swatches are printed.
type Display struct {
	Formats  []string `hcl:"formats,optional"`
	Swatch   bool     `hcl:"swatch,optional"`
	Template string   `hcl:"template,optional"`
}

// Clipboard controls copying of the last swatch.
type Clipboard struct {
	Enabled bool   `hcl:"enabled,optional"`
	Format  string `hcl:"format,optional"`
	Mode    string `hcl:"mode,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Generate: &Generate{Count: 1},
		Display: &Display{
			Formats: []string{"hex", "rgb", "hsl"},
			Swatch:  true,
		},
		Clipboard: &Clipboard{
			Format: "hex",
			Mode:   "default",
		},
	}
}

// Load parses an HCL config file on top of Default and validates it.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes HCL source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	cfg := Default()
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Generate.Count < 1 {
		return fmt.Errorf("generate.count: must be at least 1, got %d", c.Generate.Count)
	}
	if len(c.Display.Formats) == 0 {
		return fmt.Errorf("display.formats: at least one format is required")
	}
	for i, f := range c.Display.Formats {
		if _, err := swatch.ParseFormat(f); err != nil {
			return fmt.Errorf("display.formats[%d]: %w", i, err)
		}
	}
	if _, err := swatch.ParseFormat(c.Clipboard.Format); err != nil {
		return fmt.Errorf("clipboard.format: %w", err)
	}
	if !slices.Contains(clipboardModes, c.Clipboard.Mode) {
		return fmt.Errorf("clipboard.mode: unknown mode %q (valid: default, tmux, screen)", c.Clipboard.Mode)
	}
	return nil
}

// Formats returns the display formats in configured order.
func (c *Config) Formats() []swatch.Format {
	out := make([]swatch.Format, 0, len(c.Display.Formats))
	for _, name := range c.Display.Formats {
		// Validated on load.
		f, _ := swatch.ParseFormat(name)
		out = append(out, f)
	}
	return out
}

// ClipboardFormat returns the format copied to the clipboard.
func (c *Config) ClipboardFormat() swatch.Format {
	f, _ := swatch.ParseFormat(c.Clipboard.Format)
	return f
}

// Encode renders c as canonical HCL.
func Encode(c *Config) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	gen := root.AppendNewBlock("generate", nil).Body()
	gen.SetAttributeValue("count", cty.NumberIntVal(int64(c.Generate.Count)))
	gen.SetAttributeValue("seed", cty.NumberUIntVal(c.Generate.Seed))
	root.AppendNewline()

	formats := make([]cty.Value, 0, len(c.Display.Formats))
	for _, name := range c.Display.Formats {
		formats = append(formats, cty.StringVal(name))
	}
	formatList := cty.ListValEmpty(cty.String)
	if len(formats) > 0 {
		formatList = cty.ListVal(formats)
	}

	disp := root.AppendNewBlock("display", nil).Body()
	disp.SetAttributeValue("formats", formatList)
	disp.SetAttributeValue("swatch", cty.BoolVal(c.Display.Swatch))
	disp.SetAttributeValue("template", cty.StringVal(c.Display.Template))
	root.AppendNewline()

	clip := root.AppendNewBlock("clipboard", nil).Body()
	clip.SetAttributeValue("enabled", cty.BoolVal(c.Clipboard.Enabled))
	clip.SetAttributeValue("format", cty.StringVal(c.Clipboard.Format))
	clip.SetAttributeValue("mode", cty.StringVal(c.Clipboard.Mode))

	out, _ := format.Format(string(f.Bytes()))
	return []byte(out)
}
