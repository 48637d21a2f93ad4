// Package puzzle holds the rules of a single Spelling Bee puzzle: which
// letters are playable, which words count, and what they score.
package puzzle

import "unicode/utf8"

// Config describes one puzzle. It is built once from the command line and
// never modified afterwards.
type Config struct {
	Required         rune
	Optional         Set
	MinLen           int
	AllowProperNouns bool
}

// Alphabet returns the full set of playable letters: the required letter
// plus every optional one.
func (c Config) Alphabet() Set {
	a := make(Set, len(c.Optional)+1)
	for r := range c.Optional {
		a[r] = struct{}{}
	}
	a[c.Required] = struct{}{}
	return a
}

// Stage identifies the first check a candidate word fails, or StageOK.
type Stage int

const (
	StageTooShort Stage = iota
	StageNotLowerOrAlpha
	StageMissingRequired
	StageOutsideLetters
	StageOK
)

func (s Stage) String() string {
	switch s {
	case StageTooShort:
		return "too_short"
	case StageNotLowerOrAlpha:
		return "not_lower_or_alpha"
	case StageMissingRequired:
		return "missing_required"
	case StageOutsideLetters:
		return "uses_outside_letters"
	case StageOK:
		return "ok"
	}
	return "unknown"
}

// Classify runs the validity checks in their fixed order and returns the
// first stage the word fails.
func Classify(word string, cfg Config) Stage {
	if utf8.RuneCountInString(word) < cfg.MinLen {
		return StageTooShort
	}
	if !isAlpha(word) || (!cfg.AllowProperNouns && !isLower(word)) {
		return StageNotLowerOrAlpha
	}
	s := NewSet(word)
	if !s.Has(cfg.Required) {
		return StageMissingRequired
	}
	if !s.SubsetOf(cfg.Alphabet()) {
		return StageOutsideLetters
	}
	return StageOK
}

// Check reports whether word is playable, and if so whether it is a pangram
// (its letters cover the whole alphabet).
func Check(word string, cfg Config) (valid, pangram bool) {
	if Classify(word, cfg) != StageOK {
		return false, false
	}
	return true, NewSet(word).SupersetOf(cfg.Alphabet())
}

// Score computes a word's point value. A word of exactly the minimum length
// is worth one point; anything longer is worth its length in letters. A
// pangram earns seven bonus points on top.
func Score(word string, pangram bool, minLen int) int {
	pts := utf8.RuneCountInString(word)
	if pts == minLen {
		pts = 1
	}
	if pangram {
		pts += 7
	}
	return pts
}
