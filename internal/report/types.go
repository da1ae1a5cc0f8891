// Package report defines the analyzer output types, the scorer, and the
// grade mapper.
package report

// Report is the result of analyzing one text.
type Report struct {
	Jargon  []JargonFinding  `json:"jargon"`
	Passive []PassiveFinding `json:"passive"`
	Score   int              `json:"score"`
}

// JargonFinding records a dictionary phrase present in the text.
type JargonFinding struct {
	MatchedPhrase string `json:"matched_phrase"`
	Suggestion    string `json:"suggestion"`
}

// PassiveFinding records one passive-voice match within a sentence.
type PassiveFinding struct {
	Sentence string `json:"sentence"`
	Message  string `json:"message"`
}

// Result wraps a report with its input metadata for batch output.
type Result struct {
	Tool    string           `json:"tool"`
	Version string           `json:"version"`
	Input   Input            `json:"input"`
	Summary Summary          `json:"summary"`
	Jargon  []JargonFinding  `json:"jargon"`
	Passive []PassiveFinding `json:"passive"`
}

// Input describes the analyzed text.
type Input struct {
	File string `json:"file"`
	Hash string `json:"hash"`
}

// Summary holds the score, its grade, and finding counts.
type Summary struct {
	Score        int    `json:"score"`
	Grade        string `json:"grade"`
	Marker       string `json:"marker"`
	JargonCount  int    `json:"jargon_count"`
	PassiveCount int    `json:"passive_count"`
}
