// Package sentence splits prose into sentences on terminal punctuation.
package sentence

import (
	"regexp"
	"strings"
)

// terminators matches runs of sentence-ending punctuation. Other Unicode
// punctuation does not end a sentence.
var terminators = regexp.MustCompile(`[.!?]+`)

// Split returns the sentences of text in order, each trimmed of surrounding
// whitespace. Empty sentences are dropped, so whitespace-only input yields
// none and input without terminators is a single sentence.
func Split(text string) []string {
	var out []string
	for _, s := range terminators.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
