package finder

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/spelling-tools/beefinder/puzzle"
)

// maxSamples caps how many example words are kept per rejection stage.
const maxSamples = 10

// Tally records, per rejection stage, how many candidates stopped there and
// a few example words.
type Tally struct {
	Counts  map[puzzle.Stage]int
	Samples map[puzzle.Stage][]string
}

func newTally() *Tally {
	return &Tally{
		Counts:  make(map[puzzle.Stage]int),
		Samples: make(map[puzzle.Stage][]string),
	}
}

func (t *Tally) add(stage puzzle.Stage, word string) {
	t.Counts[stage]++
	if len(t.Samples[stage]) < maxSamples {
		t.Samples[stage] = append(t.Samples[stage], word)
	}
}

// Total returns the number of candidates considered.
func (t *Tally) Total() int {
	return lo.Sum(lo.Values(t.Counts))
}

// FindDebug produces exactly the results Find would, while attributing every
// candidate to the first stage that rejected it.
func FindDebug(cfg puzzle.Config, words []string) ([]Result, *Tally) {
	tally := newTally()
	results := []Result{}
	for _, w := range words {
		stage := puzzle.Classify(w, cfg)
		tally.add(stage, w)
		if stage != puzzle.StageOK {
			continue
		}
		pangram := puzzle.NewSet(w).SupersetOf(cfg.Alphabet())
		results = append(results, Result{w, pangram, puzzle.Score(w, pangram, cfg.MinLen)})
	}
	sortResults(results)
	return results, tally
}

// Render writes the per-stage summary table.
func (t *Tally) Render(w io.Writer) {
	fmt.Fprintln(w, "DEBUG summary:")
	fmt.Fprintf(w, "  Total considered: %d\n", t.Total())
	for stage := puzzle.StageTooShort; stage <= puzzle.StageOK; stage++ {
		fmt.Fprintf(w, "  %-22s: %d\n", stage, t.Counts[stage])
		if samples := t.Samples[stage]; len(samples) > 0 {
			fmt.Fprintf(w, "    e.g.: %s\n", strings.Join(samples, ", "))
		}
	}
}
