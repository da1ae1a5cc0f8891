package analyzer

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/plaincheck/internal/report"
	"github.com/dshills/plaincheck/internal/rules"
)

func passive(sentence, match string) report.PassiveFinding {
	return report.PassiveFinding{Sentence: sentence, Message: passiveMessage(match)}
}

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  report.Report
		grade report.Grade
	}{
		{
			name:  "clean prose",
			text:  "We ship the release tomorrow.",
			want:  report.Report{Jargon: []report.JargonFinding{}, Passive: []report.PassiveFinding{}, Score: 100},
			grade: report.GradeA,
		},
		{
			name: "single jargon hit",
			text: "We will utilize the new system.",
			want: report.Report{
				Jargon:  []report.JargonFinding{{MatchedPhrase: "utilize", Suggestion: "use"}},
				Passive: []report.PassiveFinding{},
				Score:   95,
			},
			grade: report.GradeA,
		},
		{
			name: "pure passive",
			text: "The document was signed.",
			want: report.Report{
				Jargon:  []report.JargonFinding{},
				Passive: []report.PassiveFinding{passive("The document was signed", "was signed")},
				Score:   97,
			},
			grade: report.GradeA,
		},
		{
			name: "perfect passive",
			text: "The report has been reviewed.",
			want: report.Report{
				Jargon:  []report.JargonFinding{},
				Passive: []report.PassiveFinding{passive("The report has been reviewed", "has been reviewed")},
				Score:   97,
			},
			grade: report.GradeA,
		},
		{
			name: "modal passive and jargon",
			text: "The plan will be implemented to leverage synergy.",
			want: report.Report{
				Jargon: []report.JargonFinding{
					{MatchedPhrase: "leverage", Suggestion: "use"},
					{MatchedPhrase: "synergy", Suggestion: "teamwork"},
				},
				Passive: []report.PassiveFinding{
					passive("The plan will be implemented to leverage synergy", "will be implemented"),
				},
				Score: 87,
			},
			grade: report.GradeB,
		},
		{
			name: "heavy offender",
			text: "We utilize synergy. The bandwidth is optimized. The report has been facilitated.",
			want: report.Report{
				Jargon: []report.JargonFinding{
					{MatchedPhrase: "utilize", Suggestion: "use"},
					{MatchedPhrase: "synergy", Suggestion: "teamwork"},
					{MatchedPhrase: "bandwidth", Suggestion: "time / capacity"},
					{MatchedPhrase: "optimized", Suggestion: "improved"},
					{MatchedPhrase: "facilitated", Suggestion: "helped"},
				},
				Passive: []report.PassiveFinding{
					passive("The bandwidth is optimized", "is optimized"),
					passive("The report has been facilitated", "has been facilitated"),
				},
				Score: 69,
			},
			grade: report.GradeD,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Analyze(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
			if g := Grade(got.Score); g != tt.grade {
				t.Errorf("Grade(%d) = %q, want %q", got.Score, g.Label, tt.grade.Label)
			}
		})
	}
}

func TestPassiveMessageFormat(t *testing.T) {
	got := Analyze("The document WAS Signed.")
	want := "Passive voice detected: 'WAS Signed'. Try active voice instead."
	if len(got.Passive) != 1 || got.Passive[0].Message != want {
		t.Errorf("passive = %+v, want message %q", got.Passive, want)
	}
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t", "...", "?!"} {
		got := Analyze(text)
		if got.Score != 100 || len(got.Jargon) != 0 || len(got.Passive) != 0 {
			t.Errorf("Analyze(%q) = %+v, want empty report", text, got)
		}
		if got.Jargon == nil || got.Passive == nil {
			t.Errorf("Analyze(%q) returned nil finding lists", text)
		}
	}
}

func TestAnalyzeTotality(t *testing.T) {
	inputs := []string{
		"\x00\xff\xfe",
		"日本語のテキスト。句読点！",
		strings.Repeat("We utilize synergy and it was processed. ", 100),
		"(?i)[a-z]+\\b$^",
	}
	for _, text := range inputs {
		got := Analyze(text)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("score %d out of range for %q", got.Score, text)
		}
		want := report.ComputeScore(len(got.Jargon), len(got.Passive))
		if got.Score != want {
			t.Errorf("score %d is not linear in finding counts (want %d)", got.Score, want)
		}
	}
}

func TestAnalyzeIsPure(t *testing.T) {
	text := "We utilize synergy. The bandwidth is optimized."
	first := Analyze(text)
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, Analyze(text)); diff != "" {
			t.Fatalf("repeated Analyze differs (-first +got):\n%s", diff)
		}
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	text := "The plan will be implemented to leverage synergy."
	want := Analyze(text)
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, Analyze(text)); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)
	for diff := range errs {
		t.Errorf("concurrent Analyze differs:\n%s", diff)
	}
}

func TestJargonDedup(t *testing.T) {
	got := Analyze("Utilize it. We utilize. UTILIZE everything, utilize!")
	if len(got.Jargon) != 1 {
		t.Fatalf("expected 1 jargon finding, got %+v", got.Jargon)
	}
	if got.Score != 95 {
		t.Errorf("score = %d, want 95", got.Score)
	}
}

func TestJargonCaseInsensitive(t *testing.T) {
	for _, e := range rules.Jargon() {
		for _, variant := range []string{strings.ToUpper(e.Phrase), strings.ToUpper(e.Phrase[:1]) + e.Phrase[1:]} {
			got := Analyze("Please " + variant + " now.")
			found := false
			for _, f := range got.Jargon {
				if f.MatchedPhrase == e.Phrase {
					found = true
					if f.Suggestion != e.Replacement {
						t.Errorf("suggestion for %q = %q, want %q", e.Phrase, f.Suggestion, e.Replacement)
					}
				}
			}
			if !found {
				t.Errorf("no finding for %q in %q", e.Phrase, variant)
			}
		}
	}
}

func TestJargonWordBoundaries(t *testing.T) {
	tests := []string{
		"We used the tool.",
		"The team utilizes the tool.",
		"A useful leveraged buyout.",
		"Synergyland is a theme park.",
	}
	for _, text := range tests {
		if got := Analyze(text); len(got.Jargon) != 0 {
			t.Errorf("Analyze(%q) jargon = %+v, want none", text, got.Jargon)
		}
	}
}

func TestJargonMultiWordPhrases(t *testing.T) {
	got := Analyze("Let's circle back on the low-hanging fruit. It is state-of-the-art.")
	want := []report.JargonFinding{
		{MatchedPhrase: "circle back", Suggestion: "follow up / return to"},
		{MatchedPhrase: "low-hanging fruit", Suggestion: "easy wins"},
		{MatchedPhrase: "state-of-the-art", Suggestion: "newest / best available"},
	}
	if diff := cmp.Diff(want, got.Jargon); diff != "" {
		t.Errorf("jargon mismatch (-want +got):\n%s", diff)
	}
}

func TestJargonTableOrder(t *testing.T) {
	// Text order is the reverse of table order.
	got := Analyze("Synergy helps us leverage tools we utilize.")
	var phrases []string
	for _, f := range got.Jargon {
		phrases = append(phrases, f.MatchedPhrase)
	}
	want := []string{"utilize", "leverage", "synergy"}
	if diff := cmp.Diff(want, phrases); diff != "" {
		t.Errorf("jargon order mismatch (-want +got):\n%s", diff)
	}
}

func TestPassiveOrdering(t *testing.T) {
	text := "It will be mailed after it is printed. The box was packed and was sealed! Nothing has been shipped"
	want := []report.PassiveFinding{
		passive("It will be mailed after it is printed", "is printed"),
		passive("It will be mailed after it is printed", "will be mailed"),
		passive("The box was packed and was sealed", "was packed"),
		passive("The box was packed and was sealed", "was sealed"),
		passive("Nothing has been shipped", "has been shipped"),
	}
	got := Analyze(text)
	if diff := cmp.Diff(want, got.Passive); diff != "" {
		t.Errorf("passive mismatch (-want +got):\n%s", diff)
	}
	if got.Score != 100-5*3 {
		t.Errorf("score = %d, want 85", got.Score)
	}
}

func TestPassiveIrregularParticiplesMissed(t *testing.T) {
	got := Analyze("The letter was written. The parcel will be sent.")
	if len(got.Passive) != 0 {
		t.Errorf("irregular participles should not match, got %+v", got.Passive)
	}
}

func TestPassiveStativeAdjectiveMatches(t *testing.T) {
	got := Analyze("She is interested.")
	if len(got.Passive) != 1 {
		t.Errorf("expected the ed-suffix approximation to flag 'is interested', got %+v", got.Passive)
	}
}
