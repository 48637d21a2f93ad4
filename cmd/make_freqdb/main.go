// Command make_freqdb builds the sqlite word-frequency database that
// beefinder reads. Input is a plain frequency list with one "word count"
// pair per line, such as the wikipedia word-frequency dumps.
package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

func main() {
	in := flag.String("in", "", "word-frequency text file, one word and count per line")
	out := flag.String("out", "wordfreq.db", "sqlite database to write")
	lang := flag.String("lang", "en", "language key to store the words under")
	flag.Parse()

	if *in == "" {
		log.Fatal().Msg("-in is required")
	}
	if err := build(*in, *out, *lang); err != nil {
		log.Fatal().Err(err).Msg("could not build frequency db")
	}
}

type wordCount struct {
	word  string
	count uint64
}

func build(in, out, lang string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		entries []wordCount
		total   uint64
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		count, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil || count == 0 {
			continue
		}
		entries = append(entries, wordCount{strings.ToLower(fields[0]), count})
		total += count
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("no usable entries in %s", in)
	}

	db, err := sql.Open("sqlite", out)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS frequencies (
		lang TEXT NOT NULL, word TEXT NOT NULL, zipf REAL NOT NULL)`); err != nil {
		return err
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS freq_lang_zipf
		ON frequencies (lang, zipf DESC)`); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO frequencies (lang, word, zipf) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		// Zipf scale: log10 of occurrences per billion words.
		zipf := math.Log10(float64(e.count)/float64(total)) + 9
		if _, err := stmt.Exec(lang, e.word, zipf); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Msgf("Wrote %d words (lang=%s) to %s", len(entries), lang, out)
	return nil
}
