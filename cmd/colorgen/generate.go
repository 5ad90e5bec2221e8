package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsvensson/colorgen/internal/config"
	"github.com/jsvensson/colorgen/internal/display"
	"github.com/jsvensson/colorgen/internal/swatch"
)

type generateOptions struct {
	configPath string
	count      int
	seed       uint64
	formats    []string
	template   string
	noSwatch   bool
	copy       bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random colors",
		Long: `Generate random colors and print each one as hex, RGB and HSL.

Settings are read from colorgen.hcl in the current directory when present;
flags override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to config HCL file")
	f.IntVarP(&opts.count, "count", "n", 1, "number of colors to generate")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.StringSliceVarP(&opts.formats, "format", "f", nil, "formats to show: hex, rgb, hsl (repeatable)")
	f.StringVar(&opts.template, "template", "", "Go template rendered per color instead of the default line")
	f.BoolVar(&opts.noSwatch, "no-swatch", false, "do not print the colored block")
	f.BoolVar(&opts.copy, "copy", false, "copy the last color to the clipboard")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := loadConfig(cmd, opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Generate.Count = opts.count
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = opts.seed
	}
	if flags.Changed("format") {
		cfg.Display.Formats = opts.formats
	}
	if flags.Changed("template") {
		cfg.Display.Template = opts.template
	}
	if opts.noSwatch {
		cfg.Display.Swatch = false
	}
	if opts.copy {
		cfg.Clipboard.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var out display.Display
	if cfg.Display.Template != "" {
		out, err = display.NewTemplate(cmd.OutOrStdout(), cfg.Display.Template)
		if err != nil {
			return err
		}
	} else {
		out = display.NewTerminal(cmd.OutOrStdout(), cfg.Formats(), cfg.Display.Swatch)
	}

	gen := &swatch.Generator{Source: swatch.NewSource(cfg.Generate.Seed)}
	swatches := gen.Generate(cfg.Generate.Count)
	log.Info("generating", "count", cfg.Generate.Count, "seed", cfg.Generate.Seed)

	for _, s := range swatches {
		log.Debug("swatch", "hex", s.Color.Hex())
		if err := out.Show(s); err != nil {
			return fmt.Errorf("showing %s: %w", s.Color.Hex(), err)
		}
	}

	if !cfg.Clipboard.Enabled {
		return nil
	}

	// The escape sequence goes to stderr so stdout stays clean when piped.
	clip, err := display.NewOSC52(cmd.ErrOrStderr(), cfg.Clipboard.Mode)
	if err != nil {
		return err
	}
	copier := &display.Copier{
		Clipboard: clip,
		Feedback: func(msg string) {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		},
	}
	// An explicit --format picks what is copied; otherwise clipboard.format.
	copyFormat := cfg.ClipboardFormat()
	if flags.Changed("format") {
		copyFormat = cfg.Formats()[0]
	}
	last := swatches[len(swatches)-1]
	return copier.Copy(last.Text(copyFormat))
}

// loadConfig reads the config file. A missing file is only an error when
// the path was given explicitly.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log.Debug("config", "path", path)
	return cfg, nil
}
