package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/colorgen/internal/lsp"
)

var (
	flagVerbose int
	flagLog     string
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:          "colorgen-lsp",
	Short:        "Language server that shows and converts hex, rgb() and hsl() colors",
	Version:      version,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so logs go to stderr or a file.
		if flagLog != "" {
			commonlog.Configure(flagVerbose, &flagLog)
		} else {
			commonlog.Configure(flagVerbose, nil)
		}
		return lsp.NewServer(version).Run()
	},
}

func init() {
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "write logs to this file instead of stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
