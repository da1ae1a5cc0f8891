// Package rules holds the built-in plain-English rule tables: the jargon
// dictionary and the passive-voice pattern set.
package rules

import (
	"embed"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// JargonEntry maps a banned lowercase phrase to a plain replacement.
type JargonEntry struct {
	Phrase      string `yaml:"phrase" json:"phrase"`
	Replacement string `yaml:"replacement" json:"replacement"`

	re *regexp.Regexp
}

// Matches reports whether the phrase occurs as a whole word sequence in
// lower, which must already be lowercased.
func (e JargonEntry) Matches(lower string) bool {
	if e.re == nil {
		return false
	}
	return e.re.MatchString(lower)
}

// PassivePattern recognizes one passive-voice verb group.
type PassivePattern struct {
	ID      string `yaml:"id" json:"id"`
	Example string `yaml:"example" json:"example"`
	Regex   string `yaml:"regex" json:"regex"`

	re *regexp.Regexp
}

// FindAll returns every non-overlapping match in s, left to right.
func (p PassivePattern) FindAll(s string) []string {
	if p.re == nil {
		return nil
	}
	return p.re.FindAllString(s, -1)
}

type jargonFile struct {
	Name        string        `yaml:"name"`
	Version     int           `yaml:"version"`
	Description string        `yaml:"description"`
	Entries     []JargonEntry `yaml:"entries"`
}

type passiveFile struct {
	Name        string           `yaml:"name"`
	Version     int              `yaml:"version"`
	Description string           `yaml:"description"`
	Patterns    []PassivePattern `yaml:"patterns"`
}

var (
	jargon  []JargonEntry
	passive []PassivePattern
	index   map[string]string
)

func init() {
	var err error
	jargon, err = ParseJargon(mustRead("jargon.yaml"))
	if err != nil {
		panic(err)
	}
	passive, err = ParsePassive(mustRead("passive.yaml"))
	if err != nil {
		panic(err)
	}
	index = make(map[string]string, len(jargon))
	for _, e := range jargon {
		index[e.Phrase] = e.Replacement
	}
}

func mustRead(name string) []byte {
	data, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		panic(fmt.Sprintf("rules: missing builtin table %s: %v", name, err))
	}
	return data
}

// Jargon returns the jargon dictionary in table order.
func Jargon() []JargonEntry {
	return slices.Clone(jargon)
}

// Passive returns the passive-voice patterns in index order.
func Passive() []PassivePattern {
	return slices.Clone(passive)
}

// Replacement looks up the table replacement for phrase.
func Replacement(phrase string) (string, bool) {
	r, ok := index[phrase]
	return r, ok
}

// ParseJargon decodes and validates a jargon table.
// Phrases must be nonempty, trimmed, lowercase and unique.
func ParseJargon(data []byte) ([]JargonEntry, error) {
	var f jargonFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("rules.ParseJargon: %w", err)
	}
	seen := make(map[string]bool, len(f.Entries))
	for i := range f.Entries {
		e := &f.Entries[i]
		switch {
		case e.Phrase == "":
			return nil, fmt.Errorf("rules.ParseJargon: entry %d: empty phrase", i)
		case e.Phrase != strings.TrimSpace(e.Phrase):
			return nil, fmt.Errorf("rules.ParseJargon: entry %d: phrase %q has surrounding space", i, e.Phrase)
		case e.Phrase != strings.ToLower(e.Phrase):
			return nil, fmt.Errorf("rules.ParseJargon: entry %d: phrase %q is not lowercase", i, e.Phrase)
		case seen[e.Phrase]:
			return nil, fmt.Errorf("rules.ParseJargon: entry %d: duplicate phrase %q", i, e.Phrase)
		case strings.TrimSpace(e.Replacement) == "":
			return nil, fmt.Errorf("rules.ParseJargon: entry %d: phrase %q has no replacement", i, e.Phrase)
		}
		seen[e.Phrase] = true
		e.re = regexp.MustCompile(`\b` + regexp.QuoteMeta(e.Phrase) + `\b`)
	}
	return f.Entries, nil
}

// ParsePassive decodes a passive pattern table and compiles each pattern
// case-insensitively.
func ParsePassive(data []byte) ([]PassivePattern, error) {
	var f passiveFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("rules.ParsePassive: %w", err)
	}
	for i := range f.Patterns {
		p := &f.Patterns[i]
		if p.Regex == "" {
			return nil, fmt.Errorf("rules.ParsePassive: pattern %d: empty regex", i)
		}
		re, err := regexp.Compile(`(?i)` + p.Regex)
		if err != nil {
			return nil, fmt.Errorf("rules.ParsePassive: pattern %d (%s): %w", i, p.ID, err)
		}
		p.re = re
	}
	return f.Patterns, nil
}
