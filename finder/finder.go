// Package finder runs the filter-and-score pass over a word list and
// renders the results.
package finder

import (
	"sort"

	"github.com/spelling-tools/beefinder/puzzle"
)

// Result is one playable word with its score.
type Result struct {
	Word    string
	Pangram bool
	Score   int
}

// Find validates and scores every candidate word and returns the playable
// ones: pangrams first, then by descending score, ties broken
// alphabetically. Duplicate words in the input stay duplicated in the
// output.
func Find(cfg puzzle.Config, words []string) []Result {
	results := []Result{}
	for _, w := range words {
		valid, pangram := puzzle.Check(w, cfg)
		if !valid {
			continue
		}
		results = append(results, Result{w, pangram, puzzle.Score(w, pangram, cfg.MinLen)})
	}
	sortResults(results)
	return results
}

func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Pangram != b.Pangram {
			return a.Pangram
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Word < b.Word
	})
}
