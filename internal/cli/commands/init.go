package commands

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scalarlab/typecast/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed typecast.yaml
var configTemplate []byte

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter configuration file",
		Long: `Write a commented typecast.yaml with the default settings.

The file documents every option: the input source for run, the output
mode, the matrix table format, and the REPL prompt and history
location.`,
		Example: `  # Initialize in current directory
  typecast init

  # Initialize in a new directory
  typecast init my-project

  # Force overwrite existing config
  typecast init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			// Create renderer
			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := filepath.Join(dir, "typecast.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("typecast.yaml already exists. Use --force to overwrite")
	}

	// Refuse to ship a template that is not valid YAML.
	var doc map[string]any
	if err := yaml.Unmarshal(configTemplate, &doc); err != nil {
		return fmt.Errorf("config template is invalid: %w", err)
	}

	if err := os.WriteFile(configPath, configTemplate, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.StatusLine("typecast.yaml", "success", "")

	r.Println("")
	r.Success("typecast configuration initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust typecast.yaml to taste")
	r.Println("  2. Pipe a five-line record into 'typecast run'")
	r.Println("  3. Try 'typecast repl' for interactive conversions")

	return nil
}
