package format

import (
	"bytes"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

var hexLiteral = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Format returns content in canonical HCL style. On top of hclwrite.Format
// it collapses runs of blank lines, drops blank lines just inside braces
// and upper-cases hex color literals in quoted strings.
//
// Partial or invalid HCL is still formatted, but hex literals are only
// rewritten once the file parses.
func Format(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	formatted = upperHexLiterals(formatted)

	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

func upperHexLiterals(src []byte) []byte {
	f, diags := hclwrite.ParseConfig(src, "", hcl.InitialPos)
	if diags.HasErrors() {
		return src
	}

	tokens := f.BuildTokens(nil)
	changed := false
	for _, tok := range tokens {
		if tok.Type != hclsyntax.TokenQuotedLit || !hexLiteral.Match(tok.Bytes) {
			continue
		}
		if upper := bytes.ToUpper(tok.Bytes); !bytes.Equal(upper, tok.Bytes) {
			tok.Bytes = upper
			changed = true
		}
	}
	if !changed {
		return src
	}
	return tokens.Bytes()
}
