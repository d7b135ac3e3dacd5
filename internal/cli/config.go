package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/pendergraft/seiconf/internal/assembler"
	"github.com/pendergraft/seiconf/internal/config"
	"github.com/pendergraft/seiconf/internal/render"
)

func createConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	cmd.AddCommand(createConfigInitCmd())
	cmd.AddCommand(createConfigShowCmd())

	return cmd
}

func createConfigInitCmd() *cobra.Command {
	var format string
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create project file",
		Long: `Create a seiconf.toml project file in the current directory.

The project file stores rendering and logging settings. Secrets are never
read from it: PRIVATE_KEY and SEITRACE_KEY come from the environment or .env.

EXAMPLES:
  # Create project file with defaults
  seiconf config init

  # Render a TypeScript module by default
  seiconf config init --format ts --output hardhat.config.ts

  # Overwrite existing project file
  seiconf config init --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, format, output, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "default output format")
	cmd.Flags().StringVar(&output, "output", "", "default output path (empty = stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing project file")

	return cmd
}

func createConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current settings and where they come from",
		Long: `Display the settings seiconf would use.

Shows the environment, the project file (seiconf.toml) and the effective
configuration. Secrets are masked.

EXAMPLES:
  seiconf config show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	}
}

const projectFileHeader = `# seiconf project configuration
# Secrets (PRIVATE_KEY, SEITRACE_KEY) are read from the environment or .env only.
# strict: fail when SEITRACE_KEY is set without PRIVATE_KEY
# metrics_file: Prometheus textfile to write after each run

`

func runConfigInit(cmd *cobra.Command, format, output string, force bool) error {
	configPath := config.DefaultProjectFile
	if cfgFile != "" {
		configPath = cfgFile
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	project := config.Defaults()
	project.Output.Format = string(f)
	project.Output.Path = output

	var buf bytes.Buffer
	buf.WriteString(projectFileHeader)
	if err := toml.NewEncoder(&buf).Encode(project); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", configPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  Format: %s\n", f)
	if output != "" {
		fmt.Fprintf(out, "  Output: %s\n", output)
	} else {
		fmt.Fprintln(out, "  Output: (stdout)")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Put %s and %s in .env or export them\n", assembler.EnvPrivateKey, assembler.EnvSeitraceKey)
	fmt.Fprintln(out, "  2. Run 'seiconf show' to check which sections are enabled")
	fmt.Fprintln(out, "  3. Run 'seiconf render' to generate the config")

	return nil
}

func runConfigShow(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuration sources (in order of precedence):")
	fmt.Fprintln(out)

	// 1. Command line flags
	fmt.Fprintln(out, "1. Command line flags")
	fmt.Fprintln(out, "   --format, --output, --strict, --metrics-file, --log-level, --log-format")
	fmt.Fprintln(out)

	// 2. Environment variables (after .env)
	cfg, projectPath, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "2. Environment variables (including .env)")
	fmt.Fprintf(out, "   %s=%s\n", assembler.EnvPrivateKey, assembler.MaskSecret(cfg.Credentials.PrivateKey))
	fmt.Fprintf(out, "   %s=%s\n", assembler.EnvSeitraceKey, assembler.MaskSecret(cfg.Credentials.SeitraceKey))
	for _, key := range []string{"SEICONF_FORMAT", "SEICONF_OUTPUT", "SEICONF_STRICT", "SEICONF_METRICS_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		if v := os.Getenv(key); v != "" {
			fmt.Fprintf(out, "   %s=%s\n", key, v)
		} else {
			fmt.Fprintf(out, "   %s=(not set)\n", key)
		}
	}
	fmt.Fprintln(out)

	// 3. Project file
	fmt.Fprintf(out, "3. Project file (%s)\n", config.DefaultProjectFile)
	project, _, err := config.LoadProjectFile(cfgFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(out, "   (not found)")
	case err != nil:
		fmt.Fprintf(out, "   Error: %v\n", err)
	default:
		fmt.Fprintf(out, "   Loaded from: %s\n", projectPath)
		if project.Output.Format != "" {
			fmt.Fprintf(out, "   output.format: %s\n", project.Output.Format)
		}
		if project.Output.Path != "" {
			fmt.Fprintf(out, "   output.path: %s\n", project.Output.Path)
		}
		if project.Strict {
			fmt.Fprintln(out, "   strict: true")
		}
		if project.MetricsFile != "" {
			fmt.Fprintf(out, "   metrics_file: %s\n", project.MetricsFile)
		}
		if project.Logging.Level != "" {
			fmt.Fprintf(out, "   logging.level: %s\n", project.Logging.Level)
		}
	}
	fmt.Fprintln(out)

	// Effective config
	fmt.Fprintln(out, "Effective configuration:")
	fmt.Fprintf(out, "   Format:  %s\n", cfg.Output.Format)
	if cfg.Output.Path != "" {
		fmt.Fprintf(out, "   Output:  %s\n", cfg.Output.Path)
	} else {
		fmt.Fprintln(out, "   Output:  (stdout)")
	}
	fmt.Fprintf(out, "   Strict:  %t\n", cfg.Strict)
	fmt.Fprintf(out, "   Logging: %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)

	return nil
}
