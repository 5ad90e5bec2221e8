package expr

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsvensson/colorgen/internal/color"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want color.Color
	}{
		{"bare hex", "#0af", color.Color{R: 0, G: 170, B: 255}},
		{"bare rgb", "rgb(1,2,3)", color.Color{R: 1, G: 2, B: 3}},
		{"bare hsl", "hsl(0, 100%, 50%)", color.Color{R: 255, G: 0, B: 0}},
		{"quoted hex", `"#EB6F92"`, color.Color{R: 235, G: 111, B: 146}},
		{"rgb func clamps", "rgb(300, -5, 127.6)", color.Color{R: 255, G: 0, B: 128}},
		{"hsl func", "hsl(200, 80, 50)", color.Color{R: 25, G: 161, B: 230}},
		{"hsl arithmetic", "hsl(100 + 100, 80, 25 * 2)", color.Color{R: 25, G: 161, B: 230}},
		{"hex func", `hex("fff")`, color.Color{R: 255, G: 255, B: 255}},
		{"lighten", `lighten("#EB6F92", 10)`, color.Color{R: 241, G: 156, B: 180}},
		{"darken", `darken("#EB6F92", 10)`, color.Color{R: 229, G: 66, B: 112}},
		{"darken to black", `darken("#EB6F92", 100)`, color.Color{R: 0, G: 0, B: 0}},
		{"nested", `darken(hsl(0, 100, 50), 0)`, color.Color{R: 255, G: 0, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.src)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", "hsl(1, 2", "parsing"},
		{"unknown function", "cmyk(0, 0, 0, 0)", "evaluating"},
		{"wrong arity", "rgb(1, 2)", "evaluating"},
		{"not a color", "42", "expected a color"},
		{"bad hex", `hex("zzz")`, "evaluating"},
		{"bad string", `"banana"`, "evaluating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.src)
			if err == nil {
				t.Fatalf("Eval(%q) expected error", tt.src)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Eval(%q) error = %q, want it to contain %q", tt.src, err, tt.wantErr)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{"darken", "hex", "hsl", "lighten", "rgb"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
