// Package expr evaluates color expressions such as hsl(200, 80, 50) or
// darken("#EB6F92", 10) into colors.
package expr

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jsvensson/colorgen/internal/color"
)

// Eval evaluates src and returns the resulting color. Plain display forms
// ("#0af", "rgb(1, 2, 3)", "hsl(0, 100%, 50%)") are accepted directly; anything
// else is parsed as an HCL expression using the functions in Context.
func Eval(src string) (color.Color, error) {
	if c, err := color.Parse(src); err == nil {
		return c, nil
	}

	e, diags := hclsyntax.ParseExpression([]byte(src), "expr", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return color.Color{}, fmt.Errorf("parsing %q: %s", src, diags.Error())
	}

	val, diags := e.Value(Context())
	if diags.HasErrors() {
		return color.Color{}, fmt.Errorf("evaluating %q: %s", src, diags.Error())
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return color.Color{}, fmt.Errorf("evaluating %q: expected a color, got %s", src, val.Type().FriendlyName())
	}

	c, err := color.Parse(val.AsString())
	if err != nil {
		return color.Color{}, fmt.Errorf("evaluating %q: %w", src, err)
	}
	return c, nil
}

// Context returns an HCL evaluation context with the color functions.
func Context() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"rgb":     makeRGBFunc(),
			"hsl":     makeHSLFunc(),
			"hex":     makeHexFunc(),
			"lighten": makeLightnessFunc(1),
			"darken":  makeLightnessFunc(-1),
		},
	}
}

func numberParams(names ...string) []function.Parameter {
	params := make([]function.Parameter, 0, len(names))
	for _, name := range names {
		params = append(params, function.Parameter{Name: name, Type: cty.Number})
	}
	return params
}

func floats(args []cty.Value) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		out[i], _ = a.AsBigFloat().Float64()
	}
	return out
}

// makeRGBFunc creates rgb(r, g, b), returning a hex string.
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green and blue channels (0-255)",
		Params:      numberParams("r", "g", "b"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v := floats(args)
			return cty.StringVal(color.RGBToHex(v[0], v[1], v[2])), nil
		},
	})
}

// makeHSLFunc creates hsl(h, s, l), returning a hex string.
func makeHSLFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from hue (degrees), saturation and lightness (percent)",
		Params:      numberParams("h", "s", "l"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v := floats(args)
			return cty.StringVal(color.HSLToRGB(v[0], v[1], v[2]).Hex()), nil
		},
	})
}

// makeHexFunc creates hex(color), normalizing any color string to #RRGGBB.
func makeHexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Normalizes a color to an upper-case 6-digit hex code",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

// makeLightnessFunc creates lighten/darken(color, pct). sign selects the
// direction; pct is in percentage points of HSL lightness.
func makeLightnessFunc(sign float64) function.Function {
	verb := "Lightens"
	if sign < 0 {
		verb = "Darkens"
	}
	return function.New(&function.Spec{
		Description: verb + " a color by the given percentage points of lightness",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			pct, _ := args[1].AsBigFloat().Float64()

			hsl := c.HSL()
			return cty.StringVal(color.HSLToRGB(hsl.H, hsl.S, hsl.L+sign*pct).Hex()), nil
		},
	})
}

// Names lists the available function names, sorted.
func Names() []string {
	names := slices.Collect(maps.Keys(Context().Functions))
	slices.Sort(names)
	return names
}
