package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsvensson/colorgen/internal/swatch"
)

const sampleHCL = `
generate {
  count = 3
  seed  = 42
}

display {
  formats  = ["hsl", "hex"]
  swatch   = false
  template = "{{ .Hex }}"
}

clipboard {
  enabled = true
  format  = "rgb"
  mode    = "tmux"
}
`

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "colorgen.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempHCL(t, sampleHCL)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := &Config{
		Generate: &Generate{Count: 3, Seed: 42},
		Display: &Display{
			Formats:  []string{"hsl", "hex"},
			Swatch:   false,
			Template: "{{ .Hex }}",
		},
		Clipboard: &Clipboard{Enabled: true, Format: "rgb", Mode: "tmux"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]swatch.Format{swatch.FormatHSL, swatch.FormatHex}, cfg.Formats()); diff != "" {
		t.Errorf("Formats() mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.ClipboardFormat(); got != swatch.FormatRGB {
		t.Errorf("ClipboardFormat() = %v, want rgb", got)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeTempHCL(t, `
generate {
  count = 5
}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Default()
	want.Generate.Count = 5
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeTempHCL(t, ""))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("empty file should equal Default() (-want +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.hcl")

	_, err := Load(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, want fs.ErrNotExist", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("LoadOrDefault() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "generate {", "parsing HCL"},
		{"unknown block", "palette {}", "decoding config"},
		{"unknown attribute", "generate {\n  size = 1\n}", "decoding config"},
		{"wrong type", "generate {\n  count = \"many\"\n}", "decoding config"},
		{"zero count", "generate {\n  count = 0\n}", "generate.count"},
		{"bad format", "display {\n  formats = [\"hex\", \"cmyk\"]\n}", "display.formats[1]"},
		{"no formats", "display {\n  formats = []\n}", "display.formats"},
		{"bad clipboard format", "clipboard {\n  format = \"css\"\n}", "clipboard.format"},
		{"bad mode", "clipboard {\n  mode = \"kitty\"\n}", "clipboard.mode"},
		{"duplicate block", "generate {}\ngenerate {}", "Duplicate generate block"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempHCL(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfgs := map[string]*Config{
		"default": Default(),
		"custom": {
			Generate:  &Generate{Count: 7, Seed: 1234},
			Display:   &Display{Formats: []string{"rgb"}, Swatch: false, Template: `{{ hex .Color }} "quoted"`},
			Clipboard: &Clipboard{Enabled: true, Format: "hsl", Mode: "screen"},
		},
	}

	for name, cfg := range cfgs {
		t.Run(name, func(t *testing.T) {
			src := Encode(cfg)
			got, err := Parse(src, "encoded.hcl")
			if err != nil {
				t.Fatalf("Parse(Encode()) error: %v\n%s", err, src)
			}
			if diff := cmp.Diff(cfg, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\n%s", diff, src)
			}
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	src := string(Encode(Default()))
	for _, want := range []string{
		"generate {\n",
		"  count = 1\n",
		`  formats  = ["hex", "rgb", "hsl"]`,
		"clipboard {\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Encode() output missing %q:\n%s", want, src)
		}
	}
}
