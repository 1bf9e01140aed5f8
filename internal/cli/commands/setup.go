package commands

import (
	"log/slog"
	"os"

	"github.com/scalarlab/typecast/internal/cli/config"
	"github.com/scalarlab/typecast/internal/cli/output"
	"github.com/scalarlab/typecast/internal/pipeline"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Pipeline *pipeline.Pipeline
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with pipeline and renderer.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Pipeline: pipeline.New(pipeline.Config{Logger: logger}),
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		Input:        os.Getenv("TYPECAST_INPUT"),
		OutputFormat: getEnvOrDefault("TYPECAST_OUTPUT", config.DefaultOutput),
		Format:       getEnvOrDefault("TYPECAST_FORMAT", config.DefaultFormat),
		Verbose:      os.Getenv("TYPECAST_VERBOSE") == "true",
		REPL: config.REPLConfig{
			Prompt:      getEnvOrDefault("TYPECAST_REPL_PROMPT", config.DefaultPrompt),
			HistoryFile: getEnvOrDefault("TYPECAST_REPL_HISTORY_FILE", config.DefaultHistoryFile),
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
