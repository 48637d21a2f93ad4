package puzzle

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

// Set is a set of letters.
type Set map[rune]struct{}

// NewSet returns the set of distinct runes in word.
func NewSet(word string) Set {
	s := make(Set, len(word))
	for _, r := range word {
		s[r] = struct{}{}
	}
	return s
}

func (s Set) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// SubsetOf reports whether every letter of s is in t.
func (s Set) SubsetOf(t Set) bool {
	for r := range s {
		if !t.Has(r) {
			return false
		}
	}
	return true
}

// SupersetOf reports whether every letter of t is in s.
func (s Set) SupersetOf(t Set) bool {
	return t.SubsetOf(s)
}

// Sorted returns the letters of s in ascending order as a string.
func (s Set) Sorted() string {
	letters := make([]rune, 0, len(s))
	for r := range s {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

var (
	ErrRequiredLetter   = errors.New("required must be a single letter A-Z")
	ErrOptionalLetters  = errors.New("optional must be exactly 5 letters A-Z")
	ErrRequiredOverlap  = errors.New("required letter must not be among the 5 optional letters")
	ErrOptionalDistinct = errors.New("optional letters must be 5 distinct letters")
)

// ParseLetters lowercases and validates the puzzle letters: one required
// letter plus an optional-letter string that must hold exactly six distinct
// letters, none of them the required one.
//
// TODO: the flag help and the errors above say five optional letters, but the
// parser has always required six. Settle on one wording.
func ParseLetters(required, optional string) (rune, Set, error) {
	required = strings.ToLower(required)
	optional = strings.ToLower(optional)

	reqRunes := []rune(required)
	if len(reqRunes) != 1 || !isAlpha(required) {
		return 0, nil, ErrRequiredLetter
	}
	if len([]rune(optional)) != 6 || !isAlpha(optional) {
		return 0, nil, ErrOptionalLetters
	}
	opt := NewSet(optional)
	if opt.Has(reqRunes[0]) {
		return 0, nil, ErrRequiredOverlap
	}
	if len(opt) != 6 {
		return 0, nil, ErrOptionalDistinct
	}
	return reqRunes[0], opt, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isLower reports whether s has at least one lowercase letter and no
// uppercase or titlecase ones.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}
