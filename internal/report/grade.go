package report

// Grade is a human-readable label for a score.
type Grade struct {
	Label  string `json:"label"`
	Marker string `json:"marker"`
}

var (
	GradeA = Grade{Label: "A - Excellent", Marker: "🟢"}
	GradeB = Grade{Label: "B - Good", Marker: "🟡"}
	GradeC = Grade{Label: "C - Fair", Marker: "🟠"}
	GradeD = Grade{Label: "D - Needs Work", Marker: "🔴"}
)

// GradeFor maps a score in [0,100] to its grade.
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	default:
		return GradeD
	}
}

// Rank orders grades from worst (0) to best (3); unknown grades rank -1.
func (g Grade) Rank() int {
	switch g.Label {
	case GradeD.Label:
		return 0
	case GradeC.Label:
		return 1
	case GradeB.Label:
		return 2
	case GradeA.Label:
		return 3
	}
	return -1
}
