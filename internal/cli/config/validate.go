package config

import (
	"fmt"
	"os"
)

// validOutputs are the rendering modes accepted by --output.
var validOutputs = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"md":       true,
	"json":     true,
}

// validFormats are the table formats accepted by the matrix command.
var validFormats = map[string]bool{
	"":         true,
	"table":    true,
	"json":     true,
	"csv":      true,
	"md":       true,
	"markdown": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output mode %q (valid modes: auto, text, markdown, json)", c.OutputFormat)
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid table format %q (valid formats: table, json, csv, md)", c.Format)
	}
	return nil
}

// ValidateInput checks that the configured input file exists.
// Only the run command needs this, so it is separate from Validate.
func (c *Config) ValidateInput() error {
	if c.Input == "" {
		return nil
	}
	if _, err := os.Stat(c.Input); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s\nHint: Check the path or use --input to specify a different file", c.Input)
	}
	return nil
}
