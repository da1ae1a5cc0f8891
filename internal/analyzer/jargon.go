package analyzer

import (
	"strings"

	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/rules"
)

// matchJargon returns one finding per dictionary entry present anywhere in
// text, in table order. Repeated occurrences do not add findings.
func matchJargon(text string, entries []rules.JargonEntry) []report.JargonFinding {
	findings := []report.JargonFinding{}
	lower := strings.ToLower(text)
	for _, e := range entries {
		if e.Matches(lower) {
			findings = append(findings, report.JargonFinding{
				MatchedPhrase: e.Phrase,
				Suggestion:    e.Replacement,
			})
		}
	}
	return findings
}
