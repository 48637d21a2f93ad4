package finder

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/spelling-tools/beefinder/puzzle"
)

// Report writes the puzzle header and every scored result. With no results
// it prints a guidance line instead; that is a normal outcome, not an error.
func Report(w io.Writer, cfg puzzle.Config, results []Result, wordsLoaded int) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matches found. Try lowering --min-zipf, increasing --n-top, or using a bigger dictionary.")
		return
	}

	totalScore := lo.SumBy(results, func(r Result) int { return r.Score })
	pangrams := lo.CountBy(results, func(r Result) bool { return r.Pangram })

	fmt.Fprintf(w, "Required: %c | Optional: %s | Min length: %d\n",
		cfg.Required, cfg.Optional.Sorted(), cfg.MinLen)
	fmt.Fprintf(w, "Alphabet: %s\n", cfg.Alphabet().Sorted())
	fmt.Fprintf(w, "Loaded %d words. Found %d matches | Pangrams: %d | Total score: %d\n\n",
		wordsLoaded, len(results), pangrams, totalScore)

	if pangrams > 0 {
		fmt.Fprintln(w, "Pangrams:")
		for _, r := range results {
			if r.Pangram {
				fmt.Fprintf(w, "  %s (+7) [%d]\n", r.Word, r.Score)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "All matches:")
	for _, r := range results {
		if r.Pangram {
			fmt.Fprintf(w, "  %s [PANGRAM] [%d]\n", r.Word, r.Score)
		} else {
			fmt.Fprintf(w, "  %s [%d]\n", r.Word, r.Score)
		}
	}
}
