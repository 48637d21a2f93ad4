package lexicon

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

// LoadFrequency reads the nTop most frequent words for lang from the sqlite
// database at dbPath, most frequent first. Non-alphabetic tokens are
// dropped, and when minZipf is positive so is every word scoring below it.
//
// The database holds one table: frequencies(lang, word, zipf).
func LoadFrequency(dbPath, lang string, nTop int, minZipf float64) ([]string, error) {
	// sql.Open would happily create an empty database file here; require
	// one to already exist.
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT word, zipf FROM frequencies WHERE lang = ? ORDER BY zipf DESC, word ASC LIMIT ?`,
		lang, nTop)
	if err != nil {
		return nil, fmt.Errorf("querying frequencies: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var (
			word string
			zipf float64
		)
		if err := rows.Scan(&word, &zipf); err != nil {
			return nil, err
		}
		if !isAlphaWord(word) {
			continue
		}
		if minZipf > 0 && zipf < minZipf {
			continue
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Info().Msgf("Loaded %d words from frequency db (n_top=%d, min_zipf=%g).", len(words), nTop, minZipf)
	return words, nil
}
