// Package config provides configuration management for the typecast CLI.
//
// Configuration is resolved from four sources, lowest to highest
// precedence: built-in defaults, a typecast.yaml file, TYPECAST_*
// environment variables, and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Input is the file the run command reads its record from. Empty
	// means stdin.
	Input string `koanf:"input"`

	// OutputFormat selects the rendering mode: auto, text, markdown, or
	// json.
	OutputFormat string `koanf:"output"`

	// Format selects the table format for matrix output: table, json,
	// csv, or md.
	Format string `koanf:"format"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// REPL holds interactive session options.
	REPL REPLConfig `koanf:"repl"`
}

// REPLConfig holds interactive session options.
type REPLConfig struct {
	// Prompt is shown before each expression.
	Prompt string `koanf:"prompt"`

	// HistoryFile is where readline history is persisted.
	HistoryFile string `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultFormat      = "table"
	DefaultPrompt      = "typecast> "
	DefaultHistoryFile = ".typecast_history"
)
