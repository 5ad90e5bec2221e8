package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsvensson/colorgen/internal/display"
	"github.com/jsvensson/colorgen/internal/expr"
	"github.com/jsvensson/colorgen/internal/swatch"
)

func newConvertCmd() *cobra.Command {
	var noSwatch bool

	cmd := &cobra.Command{
		Use:   "convert EXPR...",
		Short: "Show colors in hex, RGB and HSL",
		Long: fmt.Sprintf(`Convert each color to hex, RGB and HSL.

An argument may be a hex code (#EB6F92, #fff), rgb(r, g, b), hsl(h, s%%, l%%)
or an expression using the functions: %s.`, strings.Join(expr.Names(), ", ")),
		Example: `  colorgen convert '#0af'
  colorgen convert 'darken(hsl(200, 80, 50), 10)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := display.NewTerminal(cmd.OutOrStdout(), swatch.Formats, !noSwatch)
			for _, arg := range args {
				c, err := expr.Eval(arg)
				if err != nil {
					return err
				}
				if err := out.Show(swatch.Swatch{Color: c}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "do not print the colored block")
	return cmd
}
