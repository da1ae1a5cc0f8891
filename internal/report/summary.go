package report

// ComputeSummary derives the summary for a report. The score is recomputed
// from the finding counts rather than trusted.
func ComputeSummary(r Report) Summary {
	score := ComputeScore(len(r.Jargon), len(r.Passive))
	g := GradeFor(score)
	return Summary{
		Score:        score,
		Grade:        g.Label,
		Marker:       g.Marker,
		JargonCount:  len(r.Jargon),
		PassiveCount: len(r.Passive),
	}
}

// NewResult wraps r in a Result envelope for the named input.
func NewResult(tool, version string, in Input, r Report) Result {
	return Result{
		Tool:    tool,
		Version: version,
		Input:   in,
		Summary: ComputeSummary(r),
		Jargon:  r.Jargon,
		Passive: r.Passive,
	}
}
