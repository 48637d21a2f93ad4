// Package lexicon loads the candidate word list from one of three sources:
// a user-supplied file, a sqlite word-frequency database, or a small builtin
// fallback list.
package lexicon

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// fallbackWords is the list of last resort, used when no dictionary file is
// given and the frequency database cannot be read.
var fallbackWords = strings.Fields(
	"able bale ball bell label belly cable call cell clay ally lay lab lace")

// Fallback returns the builtin word list, lowercased.
func Fallback() []string {
	return lo.Map(fallbackWords, func(w string, _ int) string {
		return strings.ToLower(w)
	})
}

// LoadFile reads one word per line from path, trimmed and lowercased,
// skipping blank lines. The list is not deduplicated and no character
// validation happens here.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Info().Msgf("Loaded %d words from file: %s", len(words), path)
	return words, nil
}

// Load picks the word source. A file path wins if one was given; otherwise
// the frequency database is consulted, and if it cannot be used for any
// reason the builtin fallback list is returned instead. Only file errors are
// reported to the caller.
func Load(path, dbPath, lang string, nTop int, minZipf float64) ([]string, error) {
	if path != "" {
		return LoadFile(path)
	}
	words, err := LoadFrequency(dbPath, lang, nTop, minZipf)
	if err != nil {
		fb := Fallback()
		log.Warn().Err(err).Msgf("Frequency database unavailable. Using FALLBACK (%d words).", len(fb))
		return fb, nil
	}
	return words, nil
}

func isAlphaWord(s string) bool {
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
