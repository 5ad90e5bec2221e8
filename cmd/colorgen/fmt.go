package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsvensson/colorgen/internal/config"
	"github.com/jsvensson/colorgen/internal/format"
)

var errNeedsFormatting = errors.New("some files are not formatted")

func newFmtCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format colorgen config files",
		Long:  "Format config files in-place. Prints the name of each file that was modified.\nWith no arguments " + config.DefaultPath + " is formatted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{config.DefaultPath}
			}
			return runFmt(cmd, args, check)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check if files are formatted (do not write changes)")
	return cmd
}

func runFmt(cmd *cobra.Command, paths []string, check bool) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !check {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
				continue
			}
			log.Info("formatted", "path", path)
		}
	}

	switch {
	case hasErrors:
		return errors.New("formatting failed")
	case check && needsFormatting:
		return errNeedsFormatting
	}
	return nil
}
