package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pendergraft/seiconf/internal/config"
	"github.com/pendergraft/seiconf/internal/observability/metrics"
	"github.com/pendergraft/seiconf/internal/render"
)

type renderOptions struct {
	format      string
	output      string
	strict      bool
	promptKey   bool
	metricsFile string
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, yaml, toml, js, ts (default: from --output extension, else json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout (mode 0600)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when SEITRACE_KEY is set without PRIVATE_KEY")
	cmd.Flags().BoolVar(&opts.promptKey, "prompt-key", false, "read PRIVATE_KEY from the terminal instead of the environment")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
}

func createRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Assemble and print the Hardhat configuration",
		Long: `Assemble the Hardhat configuration and print it, or write it to a file.

Network profiles for sei_arctic_1, sei_atlantic_2 and sei_pacific_1 are
included when PRIVATE_KEY is set. Seitrace verification settings are included
when SEITRACE_KEY is set. An empty variable counts as unset.

EXAMPLES:
  # Print JSON to stdout
  seiconf render

  # Write a TypeScript config module
  seiconf render -o hardhat.config.ts

  # Enter the deployer key without echo
  seiconf render --prompt-key -o hardhat.config.json

  # Refuse verification settings without networks
  seiconf render --strict
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	addRenderFlags(cmd, opts)
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	applyRenderFlags(cmd, cfg, opts)

	logger := setupLogger(cfg, cmd.ErrOrStderr())

	format, err := resolveFormat(cmd, cfg, opts)
	if err != nil {
		return err
	}

	if opts.promptKey {
		key, err := promptSecret(cmd, "Enter PRIVATE_KEY: ")
		if err != nil {
			return err
		}
		cfg.Credentials.PrivateKey = key
	}

	metrics.Init(cfg.MetricsFile != "", "seiconf")

	res, err := assemble(cmd, cfg, logger)
	if err != nil {
		if werr := writeMetrics(cfg); werr != nil {
			logger.Error("failed to write metrics", "error", werr)
		}
		return err
	}

	userConfig := res.Config.UserConfig()
	if cfg.Output.Path == "" {
		if err := render.Render(cmd.OutOrStdout(), userConfig, format); err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
	} else {
		if err := render.WriteFile(cfg.Output.Path, userConfig, format); err != nil {
			return err
		}
		logger.Info("config written", "path", cfg.Output.Path, "format", string(format))
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s (%s, status: %s)\n", cfg.Output.Path, format, res.Status)
		for _, s := range res.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "   %s skipped: %s not set\n", s.Section, s.EnvVar)
		}
	}

	return writeMetrics(cfg)
}

// applyRenderFlags lets explicitly set flags override the loaded config
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config, opts *renderOptions) {
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = opts.output
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = opts.strict
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
}

// resolveFormat picks the format: --format, then the output file extension,
// then the configured format
func resolveFormat(cmd *cobra.Command, cfg *config.Config, opts *renderOptions) (render.Format, error) {
	if cmd.Flags().Changed("format") {
		return render.ParseFormat(opts.format)
	}
	if cfg.Output.Path != "" {
		if f, ok := render.FormatFromPath(cfg.Output.Path); ok {
			return f, nil
		}
	}
	return render.ParseFormat(cfg.Output.Format)
}

func writeMetrics(cfg *config.Config) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	return metrics.WriteTextfile(cfg.MetricsFile)
}
