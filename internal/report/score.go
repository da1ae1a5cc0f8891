package report

const (
	MaxScore       = 100
	JargonPenalty  = 5
	PassivePenalty = 3
)

// ComputeScore calculates a deterministic score from finding counts.
// Starts at 100, subtracts 5 per jargon finding and 3 per passive finding,
// clamps at 0.
func ComputeScore(jargon, passive int) int {
	score := MaxScore - JargonPenalty*jargon - PassivePenalty*passive
	if score < 0 {
		score = 0
	}
	return score
}
