package lsp

import (
	"math"
	"regexp"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/colorgen/internal/color"
	"github.com/jsvensson/colorgen/internal/swatch"
)

// colorLiteral matches the display forms understood by color.Parse.
var colorLiteral = regexp.MustCompile(`#[0-9a-fA-F]{6}\b|#[0-9a-fA-F]{3}\b|(?i:rgb|hsl)\([^()\n]*\)`)

// ColorLocation is a color literal found in a document.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	Text  string
}

// AnalysisResult holds every color literal in a document, in source order.
type AnalysisResult struct {
	Colors []ColorLocation
}

// Analyze scans content line by line for hex, rgb() and hsl() literals.
// Characters are byte offsets within the line. Literals that match the
// pattern but do not parse (e.g. rgb(300, 0, 0)) are skipped.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{}
	for i, line := range strings.Split(content, "\n") {
		for _, m := range colorLiteral.FindAllStringIndex(line, -1) {
			text := line[m[0]:m[1]]
			c, err := color.Parse(text)
			if err != nil {
				continue
			}
			result.Colors = append(result.Colors, ColorLocation{
				Range: protocol.Range{
					Start: protocol.Position{Line: protocol.UInteger(i), Character: protocol.UInteger(m[0])},
					End:   protocol.Position{Line: protocol.UInteger(i), Character: protocol.UInteger(m[1])},
				},
				Color: c,
				Text:  text,
			})
		}
	}
	return result
}

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP converts a protocol.Color back to 8-bit channels, rounding.
func colorFromLSP(c protocol.Color) color.Color {
	return color.Color{
		R: uint8(math.Round(float64(clampUnit(c.Red)) * 255)),
		G: uint8(math.Round(float64(clampUnit(c.Green)) * 255)),
		B: uint8(math.Round(float64(clampUnit(c.Blue)) * 255)),
	}
}

// clampUnit limits v to [0, 1]. NaN maps to 0.
func clampUnit(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return min(max(v, 0), 1)
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers the picked color in every display format, each
// replacing the original range. The format of the existing text is listed first.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	s := swatch.Swatch{Color: colorFromLSP(params.Color)}

	formats := swatch.Formats
	if current, ok := formatOf(extractText(content, params.Range)); ok {
		formats = append([]swatch.Format{current}, without(swatch.Formats, current)...)
	}

	out := make([]protocol.ColorPresentation, 0, len(formats))
	for _, f := range formats {
		text := s.Text(f)
		out = append(out, protocol.ColorPresentation{
			Label: text,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: text,
			},
		})
	}
	return out
}

// formatOf reports which display format a literal is written in.
func formatOf(text string) (swatch.Format, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "#"):
		return swatch.FormatHex, true
	case strings.HasPrefix(lower, "rgb("):
		return swatch.FormatRGB, true
	case strings.HasPrefix(lower, "hsl("):
		return swatch.FormatHSL, true
	}
	return 0, false
}

func without(formats []swatch.Format, drop swatch.Format) []swatch.Format {
	out := make([]swatch.Format, 0, len(formats))
	for _, f := range formats {
		if f != drop {
			out = append(out, f)
		}
	}
	return out
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
