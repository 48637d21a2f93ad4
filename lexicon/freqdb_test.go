package lexicon

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedFreqDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordfreq.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE frequencies (lang TEXT NOT NULL, word TEXT NOT NULL, zipf REAL NOT NULL)`)
	require.NoError(t, err)
	rows := []struct {
		lang string
		word string
		zipf float64
	}{
		{"en", "the", 7.0},
		{"en", "hello", 5.0},
		{"en", "can't", 4.5},
		{"en", "rare", 2.0},
		{"fr", "bonjour", 6.0},
	}
	for _, r := range rows {
		_, err = db.Exec(`INSERT INTO frequencies (lang, word, zipf) VALUES (?, ?, ?)`,
			r.lang, r.word, r.zipf)
		require.NoError(t, err)
	}
	return path
}

func TestLoadFrequency(t *testing.T) {
	path := seedFreqDB(t)

	words, err := LoadFrequency(path, "en", 100, 3.5)
	require.NoError(t, err)
	// Most frequent first; "can't" is not alphabetic and "rare" scores
	// below the cutoff.
	require.Equal(t, []string{"the", "hello"}, words)
}

func TestLoadFrequencyNoCutoff(t *testing.T) {
	path := seedFreqDB(t)

	words, err := LoadFrequency(path, "en", 100, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"the", "hello", "rare"}, words)
}

func TestLoadFrequencyTopN(t *testing.T) {
	path := seedFreqDB(t)

	words, err := LoadFrequency(path, "en", 1, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"the"}, words)
}

func TestLoadFrequencyLang(t *testing.T) {
	path := seedFreqDB(t)

	words, err := LoadFrequency(path, "fr", 100, 3.5)
	require.NoError(t, err)
	require.Equal(t, []string{"bonjour"}, words)
}

func TestLoadFrequencyMissingDB(t *testing.T) {
	_, err := LoadFrequency(filepath.Join(t.TempDir(), "missing.db"), "en", 100, 3.5)
	require.Error(t, err)
}

func TestLoadFrequencyBadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = LoadFrequency(path, "en", 100, 3.5)
	require.Error(t, err)
}
