// Package schema validates serialized analysis results against the
// plain-English rule tables.
package schema

import (
	"fmt"

	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/rules"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Result for structural validity and consistency with
// the built-in rule tables.
func Validate(r *report.Result) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}

	// Verify score consistency
	if r.Summary.Score < 0 || r.Summary.Score > report.MaxScore {
		errs = append(errs, ValidationError{"summary.score", fmt.Sprintf("score %d out of range [0,%d]", r.Summary.Score, report.MaxScore)})
	}
	expected := report.ComputeScore(len(r.Jargon), len(r.Passive))
	if r.Summary.Score != expected {
		errs = append(errs, ValidationError{"summary.score", fmt.Sprintf("score %d does not match computed %d", r.Summary.Score, expected)})
	}
	g := report.GradeFor(expected)
	if r.Summary.Grade != g.Label {
		errs = append(errs, ValidationError{"summary.grade", fmt.Sprintf("expected %q, got %q", g.Label, r.Summary.Grade)})
	}
	if r.Summary.Marker != g.Marker {
		errs = append(errs, ValidationError{"summary.marker", fmt.Sprintf("expected %q, got %q", g.Marker, r.Summary.Marker)})
	}
	if r.Summary.JargonCount != len(r.Jargon) {
		errs = append(errs, ValidationError{"summary.jargon_count", fmt.Sprintf("expected %d, got %d", len(r.Jargon), r.Summary.JargonCount)})
	}
	if r.Summary.PassiveCount != len(r.Passive) {
		errs = append(errs, ValidationError{"summary.passive_count", fmt.Sprintf("expected %d, got %d", len(r.Passive), r.Summary.PassiveCount)})
	}

	// Validate jargon findings: known phrase, table suggestion, at most once, table order
	order := make(map[string]int)
	for i, e := range rules.Jargon() {
		order[e.Phrase] = i
	}
	seen := make(map[string]bool)
	last := -1
	for i, f := range r.Jargon {
		prefix := fmt.Sprintf("jargon[%d]", i)
		want, ok := rules.Replacement(f.MatchedPhrase)
		if !ok {
			errs = append(errs, ValidationError{prefix + ".matched_phrase", fmt.Sprintf("unknown phrase: %q", f.MatchedPhrase)})
			continue
		}
		if f.Suggestion != want {
			errs = append(errs, ValidationError{prefix + ".suggestion", fmt.Sprintf("expected %q, got %q", want, f.Suggestion)})
		}
		if seen[f.MatchedPhrase] {
			errs = append(errs, ValidationError{prefix + ".matched_phrase", fmt.Sprintf("duplicate phrase: %q", f.MatchedPhrase)})
		}
		seen[f.MatchedPhrase] = true
		if order[f.MatchedPhrase] < last {
			errs = append(errs, ValidationError{prefix, "out of table order"})
		}
		last = order[f.MatchedPhrase]
	}

	// Validate passive findings
	for i, f := range r.Passive {
		prefix := fmt.Sprintf("passive[%d]", i)
		if f.Sentence == "" {
			errs = append(errs, ValidationError{prefix + ".sentence", "required"})
		}
		if f.Message == "" {
			errs = append(errs, ValidationError{prefix + ".message", "required"})
		}
	}

	return errs
}
