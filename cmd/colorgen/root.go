package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("colorgen")

func newRootCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:          "colorgen",
		Short:        "Generate random colors and show them as hex, RGB and HSL",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Notices and above by default; -v adds info, -vv debug.
			commonlog.Configure(verbose, nil)
		},
	}
	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
