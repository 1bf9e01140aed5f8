package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/scalarlab/typecast/pkg/coerce"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive conversion session",
		Long: `Start an interactive session for exploring conversions.

Expressions have the form kind(value):

  int(3.14)     truncate a float literal toward zero
  int('3')      parse quoted text
  float(7)      widen an integer
  bool(0.0)     truthiness of a float

Quoted values are strings; unquoted values are detected as int, float,
bool, or string. Type .help inside the session for commands.`,
		Example: `  # Start the REPL
  typecast repl

  # With a custom prompt
  TYPECAST_REPL_PROMPT='cast> ' typecast repl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	// Configure readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.REPL.Prompt,
		HistoryFile:     cfg.REPL.HistoryFile,
		AutoComplete:    newKindCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	// Print welcome message
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "typecast REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	// REPL loop
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if strings.HasPrefix(line, ".") {
			if handled := handleDotCommand(cmd, line); handled {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		if err := evalExpression(cmd.OutOrStdout(), line); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	return nil
}

// evalExpression evaluates one kind(value) expression and prints the
// result.
func evalExpression(w io.Writer, line string) error {
	kindName, literal, err := splitCall(line)
	if err != nil {
		return err
	}

	target, err := coerce.ParseKind(kindName)
	if err != nil {
		return err
	}

	out, err := coerce.Detect(literal).To(target)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, out.Text())
	return nil
}

// splitCall splits "kind(value)" into its two parts.
func splitCall(line string) (kind, literal string, err error) {
	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return "", "", fmt.Errorf("expected kind(value), got %q", line)
	}

	kind = strings.TrimSpace(line[:open])
	literal = strings.TrimSpace(line[open+1 : len(line)-1])
	if kind == "" {
		return "", "", fmt.Errorf("expected kind(value), got %q", line)
	}
	return kind, literal, nil
}

func handleDotCommand(cmd *cobra.Command, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())
		return true

	case ".rules":
		writeRulesTable(cmd.OutOrStdout())
		return true

	case ".matrix":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .matrix <value>")
			return true
		}
		literal := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
		out := buildMatrix(literal, coerce.Detect(literal))
		if err := renderMatrixTable(cmd.OutOrStdout(), out); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Expressions:
  kind(value)      Convert value to kind: string, int, float, or bool
  int(3.14)        Truncate a float literal toward zero
  float('2.5')     Parse quoted text
  bool(0)          Truthiness of an integer

Commands:
  .help            Show this help message
  .rules           Show the coercion rule table
  .matrix <value>  Convert a value to every kind
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - Quote a value ('42' or "42") to force string handling
  - Use arrow keys to navigate history
  - Tab completion works for kinds and commands
`
	_, _ = fmt.Fprintln(w, help)
}

// newKindCompleter creates a readline completer for kind expressions and
// dot-commands.
func newKindCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("string("),
		readline.PcItem("int("),
		readline.PcItem("float("),
		readline.PcItem("bool("),
		readline.PcItem(".help"),
		readline.PcItem(".rules"),
		readline.PcItem(".matrix"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
