// Package render produces Markdown and text output from analysis results.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/rules"
)

// Markdown renders a result as a Markdown report.
func Markdown(r *report.Result) string {
	var b strings.Builder

	// Summary
	b.WriteString("# Plain English Check\n\n")
	if r.Input.File != "" {
		fmt.Fprintf(&b, "**File:** %s\n", r.Input.File)
	}
	fmt.Fprintf(&b, "**Score:** %d / 100\n", r.Summary.Score)
	fmt.Fprintf(&b, "**Grade:** %s %s\n", r.Summary.Marker, r.Summary.Grade)
	fmt.Fprintf(&b, "**Findings:** %d jargon, %d passive voice\n\n",
		r.Summary.JargonCount, r.Summary.PassiveCount)

	if len(r.Jargon) > 0 {
		b.WriteString("## Jargon\n\n")
		b.WriteString("| Phrase | Try instead |\n")
		b.WriteString("|--------|-------------|\n")
		for _, f := range r.Jargon {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(f.MatchedPhrase), escapeCell(f.Suggestion))
		}
		b.WriteString("\n")
	}

	if len(r.Passive) > 0 {
		b.WriteString("## Passive Voice\n\n")
		for _, f := range r.Passive {
			fmt.Fprintf(&b, "> %s\n\n", f.Sentence)
			fmt.Fprintf(&b, "%s\n\n", f.Message)
		}
	}

	if len(r.Jargon) == 0 && len(r.Passive) == 0 {
		b.WriteString("No issues found.\n\n")
	}

	return b.String()
}

// Rules renders the jargon dictionary and passive patterns as plain text.
func Rules(jargon []rules.JargonEntry, passive []rules.PassivePattern) string {
	var b strings.Builder

	width := 0
	for _, e := range jargon {
		width = max(width, len(e.Phrase))
	}

	fmt.Fprintf(&b, "Jargon (%d entries, -%d each):\n", len(jargon), report.JargonPenalty)
	for _, e := range jargon {
		fmt.Fprintf(&b, "  %-*s  -> %s\n", width, e.Phrase, e.Replacement)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Passive voice (%d patterns, -%d per match):\n", len(passive), report.PassivePenalty)
	for i, p := range passive {
		fmt.Fprintf(&b, "  %d. %s (e.g. %q)\n     %s\n", i+1, p.ID, p.Example, p.Regex)
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
