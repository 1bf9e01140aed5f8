package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Convert a five-line input record",
		Long: `Read a five-line record and print the nine-line conversion report.

The record lines, in order:
  1. an integer written as a string
  2. a float written as a string
  3. a boolean written as a string
  4. an integer literal
  5. a float literal

Each report line has the fixed form "Label: value". The report keeps
that form in every output mode so it stays stable for scripts and
diffing. A record that fails to parse or convert produces an error and
no output at all.`,
		Example: `  # Read the record from stdin
  printf '42\n3.14\nTrue\n7\n2.5\n' | typecast run

  # Read the record from a file
  typecast run --input record.txt`,
		Aliases: []string{"report"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd)
		},
	}

	return cmd
}

func runRun(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	if err := cmdCtx.Cfg.ValidateInput(); err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if cmdCtx.Cfg.Input != "" {
		f, err := os.Open(cmdCtx.Cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
		cmdCtx.Logger.Debug("reading record from file", "path", cmdCtx.Cfg.Input)
	}

	return cmdCtx.Pipeline.Process(in, cmd.OutOrStdout())
}
