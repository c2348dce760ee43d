// Package cmd wires the devdust command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet      bool
	configPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "devdust [paths...]",
	Short: "Clean build artifacts from development projects",
	Long: `devdust recursively scans directories for development projects
(Rust, Node.js, Python, .NET, Unity, and more) and deletes their
build-artifact directories to reclaim disk space.

Running devdust without a subcommand is the same as 'devdust clean'.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/devdust/config.yaml)")

	registerScanFlags(rootCmd)
	registerCleanFlags(rootCmd)

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
