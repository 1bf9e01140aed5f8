// Package main provides a generator that renders the coercion rule table
// as a markdown reference document.
//
// Usage:
//
//	go run ./scripts/genrules -out=docs/coercion_rules.md
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scalarlab/typecast/internal/cli/commands"
)

var outFlag = flag.String("out", "", "output file path (required)")

func main() {
	flag.Parse()

	if *outFlag == "" {
		log.Fatal("-out flag is required")
	}

	rules := commands.CoercionRules()

	var buf bytes.Buffer
	buf.WriteString("<!-- Code generated by scripts/genrules; DO NOT EDIT. -->\n\n")
	buf.WriteString("# Coercion Rules\n\n")
	buf.WriteString("How typecast converts between string, int, float, and bool values,\n")
	buf.WriteString("following Python's built-in conversion semantics.\n")

	for _, from := range []string{"string", "int", "float", "bool"} {
		fmt.Fprintf(&buf, "\n## %s\n\n", from)
		buf.WriteString("| To | Rule | Example |\n")
		buf.WriteString("| --- | --- | --- |\n")

		var notes []commands.RuleInfo
		for _, rule := range rules {
			if rule.From != from {
				continue
			}
			fmt.Fprintf(&buf, "| %s | %s | `%s` |\n", rule.To, rule.Summary, rule.Example)
			if rule.Detail != "" {
				notes = append(notes, rule)
			}
		}

		if len(notes) > 0 {
			buf.WriteString("\n")
			for _, rule := range notes {
				fmt.Fprintf(&buf, "- **%s**: %s\n", rule.To, rule.Detail)
			}
		}
	}

	if err := os.WriteFile(*outFlag, buf.Bytes(), 0644); err != nil {
		log.Fatalf("failed to write %s: %v", *outFlag, err)
	}

	fmt.Printf("Generated %s (%d rules)\n", *outFlag, len(rules))
}
