// Package cli implements the seiconf command line.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	envFile   string
	logLevel  string
	logFormat string
)

// Execute runs the CLI
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	opts := &renderOptions{}

	rootCmd := &cobra.Command{
		Use:   "seiconf",
		Short: "Hardhat configuration generator for Sei EVM networks",
		Long: `seiconf assembles the Hardhat configuration for Sei EVM projects.

The compiler profile is fixed. Network profiles are added when PRIVATE_KEY is
set, and Seitrace verification settings when SEITRACE_KEY is set. Without a
subcommand, seiconf renders the configuration (same as 'seiconf render').`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "project file (default: seiconf.toml if present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")

	addRenderFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(createRenderCmd())
	rootCmd.AddCommand(createShowCmd())
	rootCmd.AddCommand(createNetworksCmd())
	rootCmd.AddCommand(createConfigCmd())

	return rootCmd
}
