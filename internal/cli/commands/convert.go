package commands

import (
	"fmt"

	"github.com/scalarlab/typecast/pkg/coerce"
	"github.com/spf13/cobra"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	As string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <kind> <value>",
		Short: "Convert a single value to a target kind",
		Long: `Convert one scalar value to the target kind and print the result.

The source kind is detected from the literal: quoted text is a string,
then integer and float parses are tried, then the words true and false,
and anything else is a string. Use --as to force the source kind
instead of detecting it.`,
		Example: `  # Parse a string as an integer
  typecast convert int "'42'"

  # Truncation toward zero
  typecast convert int -- -2.9

  # Force the source kind: the text "3.14" is not an integer literal
  typecast convert int --as string 3.14

  # Truthiness of a word
  typecast convert bool yes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "Source kind: string, int, float, or bool")

	_ = cmd.RegisterFlagCompletionFunc("as", completeKinds)

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	target, err := coerce.ParseKind(args[0])
	if err != nil {
		return err
	}

	src, err := sourceValue(args[1], opts.As)
	if err != nil {
		return err
	}

	out, err := src.To(target)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text())
	return nil
}

// sourceValue builds the source value from a literal, honoring a forced
// source kind. Forcing string keeps the literal untouched; forcing a
// numeric or bool kind coerces the detected value first.
func sourceValue(literal, as string) (coerce.Value, error) {
	if as == "" {
		return coerce.Detect(literal), nil
	}

	kind, err := coerce.ParseKind(as)
	if err != nil {
		return coerce.Value{}, err
	}
	if kind == coerce.String {
		return coerce.StringValue(literal), nil
	}
	return coerce.Detect(literal).To(kind)
}

// completeKinds offers kind names for flag completion.
func completeKinds(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"string", "int", "float", "bool"}, cobra.ShellCompDirectiveNoFileComp
}
