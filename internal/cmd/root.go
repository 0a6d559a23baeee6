// Package cmd provides the CLI commands for braceglob.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "braceglob",
	Short: "Glob with brace expansion",
	Long: `Braceglob finds path names matching shell-style patterns, including
brace alternatives such as {alpha,beta}.txt.

When the matcher has no native brace support, or --fallback is given,
alternatives are expanded one group at a time and each resulting pattern
is matched on its own.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{printf "braceglob %s\ncommit: %s\nbuilt: %s\n" .Version "` + Commit + `" "` + BuildDate + `"}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest .braceglob.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
