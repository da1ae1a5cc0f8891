package analyzer

import (
	"fmt"

	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/rules"
)

// matchPassive scans each sentence with each pattern and emits one finding
// per match, ordered by sentence, then pattern, then match position.
func matchPassive(sentences []string, patterns []rules.PassivePattern) []report.PassiveFinding {
	findings := []report.PassiveFinding{}
	for _, s := range sentences {
		for _, p := range patterns {
			for _, m := range p.FindAll(s) {
				findings = append(findings, report.PassiveFinding{
					Sentence: s,
					Message:  passiveMessage(m),
				})
			}
		}
	}
	return findings
}

func passiveMessage(match string) string {
	return fmt.Sprintf("Passive voice detected: '%s'. Try active voice instead.", match)
}
