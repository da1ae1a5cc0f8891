// Package analyzer scores prose against the plain-English rules: banned
// jargon and passive-voice constructions.
//
// Analyze is pure and safe for concurrent use; the rule tables it reads are
// immutable after package initialization.
package analyzer

import (
	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/rules"
	"github.com/dshills/plaincheck/internal/sentence"
)

var (
	jargonTable  = rules.Jargon()
	passiveTable = rules.Passive()
)

// Analyze checks text and returns its findings and score. It accepts any
// string; empty or whitespace-only input yields no findings and a score of 100.
func Analyze(text string) report.Report {
	jargon := matchJargon(text, jargonTable)
	passive := matchPassive(sentence.Split(text), passiveTable)
	return report.Report{
		Jargon:  jargon,
		Passive: passive,
		Score:   report.ComputeScore(len(jargon), len(passive)),
	}
}

// Grade maps a score in [0,100] to its label and marker.
func Grade(score int) report.Grade {
	return report.GradeFor(score)
}
