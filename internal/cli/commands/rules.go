package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/scalarlab/typecast/internal/cli/output"
	"github.com/scalarlab/typecast/pkg/coerce"
	"github.com/spf13/cobra"
)

// RuleInfo documents one kind-to-kind coercion.
type RuleInfo struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Summary string `json:"summary"`
	Detail  string `json:"detail,omitempty"`
	Example string `json:"example,omitempty"`
}

// coercionRules is the full conversion table, in kind order.
var coercionRules = []RuleInfo{
	{
		From: "string", To: "string",
		Summary: "identity",
		Example: "string('hi') -> hi",
	},
	{
		From: "string", To: "int",
		Summary: "trim whitespace, then base-10 parse",
		Detail:  "Non-numeric text is an error, including float text like 3.14.",
		Example: "int('42') -> 42",
	},
	{
		From: "string", To: "float",
		Summary: "trim whitespace, then float parse",
		Detail:  "The spellings inf, infinity, and nan are accepted in any case.",
		Example: "float('3.14') -> 3.14",
	},
	{
		From: "string", To: "bool",
		Summary: "true only when the text spells the word true",
		Detail:  "The comparison ignores case, so True and TRUE count. Every other string is false, including 1, yes, and non-empty text.",
		Example: "bool('True') -> true",
	},
	{
		From: "int", To: "string",
		Summary: "base-10 digits",
		Example: "string(7) -> 7",
	},
	{
		From: "int", To: "int",
		Summary: "identity",
		Example: "int(7) -> 7",
	},
	{
		From: "int", To: "float",
		Summary: "exact widening",
		Detail:  "Lossless for magnitudes up to 2^53; beyond that the nearest representable float is used.",
		Example: "float(7) -> 7.0",
	},
	{
		From: "int", To: "bool",
		Summary: "false for 0, true otherwise",
		Example: "bool(-3) -> true",
	},
	{
		From: "float", To: "string",
		Summary: "shortest digits that round-trip",
		Detail:  "Whole numbers keep a trailing .0, and very large or very small magnitudes switch to exponent notation like 1e+16 or 1e-05.",
		Example: "string(2.5) -> 2.5",
	},
	{
		From: "float", To: "int",
		Summary: "truncation toward zero",
		Detail:  "nan, infinities, and values whose integral part does not fit in an int64 are errors.",
		Example: "int(-2.9) -> -2",
	},
	{
		From: "float", To: "float",
		Summary: "identity",
		Example: "float(2.5) -> 2.5",
	},
	{
		From: "float", To: "bool",
		Summary: "false for 0.0 and -0.0, true otherwise",
		Detail:  "nan is truthy.",
		Example: "bool(0.0) -> false",
	},
	{
		From: "bool", To: "string",
		Summary: "the lowercase word true or false",
		Example: "string(true) -> true",
	},
	{
		From: "bool", To: "int",
		Summary: "1 for true, 0 for false",
		Example: "int(true) -> 1",
	},
	{
		From: "bool", To: "float",
		Summary: "1.0 for true, 0.0 for false",
		Example: "float(false) -> 0.0",
	},
	{
		From: "bool", To: "bool",
		Summary: "identity",
		Example: "bool(true) -> true",
	},
}

// CoercionRules returns a copy of the full conversion table.
func CoercionRules() []RuleInfo {
	rules := make([]RuleInfo, len(coercionRules))
	copy(rules, coercionRules)
	return rules
}

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [from] [to]",
		Short: "Show the coercion rule table",
		Long: `Show the kind-to-kind coercion rules.

With no arguments all sixteen rules are listed, grouped by source kind.
Name a source kind to narrow the list, or a source and target kind to
see one rule in detail.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  typecast rules

  # Rules for converting out of float
  typecast rules float

  # One rule in detail
  typecast rules string bool

  # Output as JSON
  typecast rules --format json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return showRule(cmd, args[0], args[1], opts)
			}
			return listRules(cmd, args, opts)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) >= 2 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return []string{"string", "int", "float", "bool"}, cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, args []string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := coercionRules
	if len(args) == 1 {
		from, err := coerce.ParseKind(args[0])
		if err != nil {
			return err
		}
		rules = filterRulesByFrom(rules, from.String())
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules)
	default:
		return listRulesText(r, rules)
	}
}

func filterRulesByFrom(rules []RuleInfo, from string) []RuleInfo {
	var filtered []RuleInfo
	for _, rule := range rules {
		if rule.From == from {
			filtered = append(filtered, rule)
		}
	}
	return filtered
}

func showRule(cmd *cobra.Command, fromArg, toArg string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	from, err := coerce.ParseKind(fromArg)
	if err != nil {
		return err
	}
	to, err := coerce.ParseKind(toArg)
	if err != nil {
		return err
	}

	var rule *RuleInfo
	for i := range coercionRules {
		if coercionRules[i].From == from.String() && coercionRules[i].To == to.String() {
			rule = &coercionRules[i]
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("no rule for %s to %s", from, to)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Coercion Rules (%d)", len(rules))))
	r.Println("")

	currentFrom := ""
	for _, rule := range rules {
		if rule.From != currentFrom {
			currentFrom = rule.From
			r.Println(styles.Bold.Render("  " + currentFrom))
		}

		r.Printf("    %s  %s\n",
			styles.Kind.Render(fmt.Sprintf("%-8s", rule.To)),
			rule.Summary,
		)
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'typecast rules <from> <to>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []RuleInfo) error {
	r.Println("# Coercion Rules")
	r.Println("")

	currentFrom := ""
	for _, rule := range rules {
		if rule.From != currentFrom {
			if currentFrom != "" {
				r.Println("")
			}
			currentFrom = rule.From
			r.Println("## " + currentFrom)
			r.Println("")
		}

		r.Printf("- **%s**: %s\n", rule.To, rule.Summary)
	}

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Kinds []string   `json:"kinds"`
	Rules []RuleInfo `json:"rules"`
	Count int        `json:"count"`
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []RuleInfo) error {
	kinds := make([]string, 0, 4)
	for _, k := range coerce.Kinds() {
		kinds = append(kinds, k.String())
	}

	return r.JSON(RulesJSONOutput{
		Kinds: kinds,
		Rules: rules,
		Count: len(rules),
	})
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s to %s", rule.From, rule.To)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Rule"), rule.Summary)
	r.Println("")

	if rule.Detail != "" {
		r.Println(styles.Bold.Render("Notes"))
		r.Println("  " + rule.Detail)
		r.Println("")
	}

	if rule.Example != "" {
		r.Println(styles.Bold.Render("Example"))
		r.Println(styles.Success.Render("  " + rule.Example))
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule *RuleInfo) error {
	r.Printf("# %s to %s\n\n", rule.From, rule.To)
	r.Println(rule.Summary)
	r.Println("")

	if rule.Detail != "" {
		r.Println("## Notes")
		r.Println("")
		r.Println(rule.Detail)
		r.Println("")
	}

	if rule.Example != "" {
		r.Println("## Example")
		r.Println("")
		r.Println("```")
		r.Println(rule.Example)
		r.Println("```")
		r.Println("")
	}

	return nil
}

// writeRulesTable renders the full rule table with go-pretty, for the REPL.
func writeRulesTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"From", "To", "Rule"})

	for _, rule := range coercionRules {
		t.AppendRow(table.Row{rule.From, rule.To, rule.Summary})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rules)\n", len(coercionRules))
}
