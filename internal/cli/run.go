package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pendergraft/seiconf/internal/assembler"
	"github.com/pendergraft/seiconf/internal/config"
	"github.com/pendergraft/seiconf/internal/observability/metrics"
)

// loadConfig loads configuration and applies the global flags
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.Load(config.LoadOptions{
		ProjectFile: cfgFile,
		EnvFile:     envFile,
	})
	if err != nil {
		return nil, path, fmt.Errorf("loading config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, path, nil
}

func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}

	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func credentialsFrom(cfg *config.Config) assembler.Credentials {
	return assembler.Credentials{
		PrivateKey:  assembler.Secret(cfg.Credentials.PrivateKey),
		SeitraceKey: assembler.Secret(cfg.Credentials.SeitraceKey),
	}
}

// assemble runs the assembler and records the outcome in metrics
func assemble(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*assembler.Result, error) {
	a := assembler.New(assembler.Options{
		Strict: cfg.Strict,
		Logger: logger,
	})

	res, err := a.Assemble(credentialsFrom(cfg))
	if err != nil {
		metrics.AssemblyCompleted("rejected", 0, 0)
		return nil, err
	}

	for _, s := range res.Skipped {
		metrics.SectionSkipped(string(s.Section))
	}
	for _, w := range res.Warnings {
		metrics.AssemblyWarning(w.Code)
	}
	metrics.AssemblyCompleted(res.Status.String(), len(res.Config.Networks), len(res.Config.Verification))

	logger.Debug("assembly finished", "command", cmd.Name(), "status", res.Status.String(), "missing", res.MissingEnv())
	return res, nil
}
