package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/scalarlab/typecast/pkg/coerce"
	"github.com/spf13/cobra"
)

// MatrixOptions holds options for the matrix command.
type MatrixOptions struct {
	As     string
	Format string
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand() *cobra.Command {
	opts := &MatrixOptions{}

	cmd := &cobra.Command{
		Use:   "matrix <value>",
		Short: "Convert a value to every kind",
		Long: `Convert one scalar value to all four kinds and show the results in a
single table.

Conversions that cannot succeed, like parsing non-numeric text as an
integer, show their error instead of a value.`,
		Example: `  # Matrix for a float literal
  typecast matrix 2.5

  # Matrix for quoted text, as CSV
  typecast matrix "'42'" --format csv

  # Force the source kind and emit JSON
  typecast matrix yes --as string --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "Source kind: string, int, float, or bool")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, md")

	_ = cmd.RegisterFlagCompletionFunc("as", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "csv", "md"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// MatrixRow is one target kind's conversion result.
type MatrixRow struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// MatrixOutput is the JSON output structure for the matrix command.
type MatrixOutput struct {
	Input string      `json:"input"`
	Kind  string      `json:"kind"`
	Rows  []MatrixRow `json:"rows"`
}

func runMatrix(cmd *cobra.Command, literal string, opts *MatrixOptions) error {
	cmdCtx := NewCommandContext(cmd)

	format := opts.Format
	if format == "" {
		format = cmdCtx.Cfg.Format
	}

	src, err := sourceValue(literal, opts.As)
	if err != nil {
		return err
	}

	out := buildMatrix(literal, src)
	return renderMatrix(cmd.OutOrStdout(), out, format)
}

// buildMatrix converts src to every kind, collecting per-kind errors
// instead of aborting.
func buildMatrix(literal string, src coerce.Value) MatrixOutput {
	out := MatrixOutput{
		Input: literal,
		Kind:  src.Kind().String(),
	}
	for _, kind := range coerce.Kinds() {
		row := MatrixRow{Kind: kind.String()}
		converted, err := src.To(kind)
		if err != nil {
			row.Error = err.Error()
		} else {
			row.Value = converted.Text()
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// renderMatrix renders results in the requested format.
func renderMatrix(w io.Writer, out MatrixOutput, format string) error {
	switch format {
	case "json":
		return renderMatrixJSON(w, out)
	case "csv":
		return renderMatrixCSV(w, out)
	case "md", "markdown":
		return renderMatrixMarkdown(w, out)
	default:
		return renderMatrixTable(w, out)
	}
}

func renderMatrixTable(w io.Writer, out MatrixOutput) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Value"})

	for _, row := range out.Rows {
		value := row.Value
		if row.Error != "" {
			value = "error: " + row.Error
		}
		t.AppendRow(table.Row{row.Kind, value})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(source: %s %s)\n", out.Kind, out.Input)
	return nil
}

func renderMatrixJSON(w io.Writer, out MatrixOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderMatrixCSV(w io.Writer, out MatrixOutput) error {
	_, _ = fmt.Fprintln(w, "kind,value,error")
	for _, row := range out.Rows {
		fields := []string{row.Kind, escapeCSV(row.Value), escapeCSV(row.Error)}
		_, _ = fmt.Fprintln(w, strings.Join(fields, ","))
	}
	return nil
}

func renderMatrixMarkdown(w io.Writer, out MatrixOutput) error {
	_, _ = fmt.Fprintln(w, "| Kind | Value |")
	_, _ = fmt.Fprintln(w, "| --- | --- |")
	for _, row := range out.Rows {
		value := row.Value
		if row.Error != "" {
			value = "error: " + row.Error
		}
		_, _ = fmt.Fprintf(w, "| %s | %s |\n", row.Kind, value)
	}
	return nil
}

// escapeCSV quotes a field if it contains special characters.
func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
