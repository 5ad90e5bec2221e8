package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `generate{count=3 seed=42}`,
			expected: `generate { count = 3 seed = 42 }`,
		},
		{
			name: "already formatted stays same",
			input: `generate {
  count = 3
}
`,
			expected: `generate {
  count = 3
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `generate   {   count   =   3   }`,
			expected: `generate { count = 3 }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "generate { count = 1 }\n\n\n\ndisplay { swatch = true }",
			expected: "generate { count = 1 }\n\ndisplay { swatch = true }",
		},
		{
			name:     "single blank line preserved",
			input:    "generate { count = 1 }\n\ndisplay { swatch = true }",
			expected: "generate { count = 1 }\n\ndisplay { swatch = true }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "generate {\n\n  count = 1\n}",
			expected: "generate {\n  count = 1\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "generate {\n  count = 1\n\n}",
			expected: "generate {\n  count = 1\n}",
		},
		{
			name:     "blank lines after and before braces both removed",
			input:    "generate {\n\n  count = 1\n\n}",
			expected: "generate {\n  count = 1\n}",
		},
		{
			name: "hex literals upper-cased",
			input: `colors {
  accent = "#eb6f92"
  short  = "#0af"
}
`,
			expected: `colors {
  accent = "#EB6F92"
  short  = "#0AF"
}
`,
		},
		{
			name: "non-color strings untouched",
			input: `display {
  template = "{{ .Hex }} #abc"
  name     = "#beefy"
  formats  = ["hex", "rgb"]
}
`,
			expected: `display {
  template = "{{ .Hex }} #abc"
  name     = "#beefy"
  formats  = ["hex", "rgb"]
}
`,
		},
		{
			name:     "comments keep their case",
			input:    "# base #eb6f92\ncolors { accent = \"#eb6f92\" }\n",
			expected: "# base #eb6f92\ncolors { accent = \"#EB6F92\" }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	input := `colors { accent = "#eb6f92"`
	got, err := Format(input)
	if err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
	if !strings.Contains(got, "#eb6f92") {
		t.Errorf("Format() = %q, hex literal should be left alone in unparsable input", got)
	}
}
