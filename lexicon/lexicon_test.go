package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte(" Apple \n\nBanana\nbanana\n\n"), 0644)
	is.NoErr(err)

	words, err := LoadFile(path)
	is.NoErr(err)
	is.Equal(words, []string{"apple", "banana", "banana"}) // lowercased, blanks skipped, duplicates kept
}

func TestLoadFileMissing(t *testing.T) {
	is := is.New(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	is.True(err != nil)
}

func TestFallback(t *testing.T) {
	is := is.New(t)
	words := Fallback()
	is.Equal(len(words), 14)
	for _, w := range words {
		is.True(isAlphaWord(w))
	}
	is.Equal(words[0], "able")
}

func TestLoadPrefersFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	words, err := Load(path, "does-not-matter.db", "en", 100, 3.5)
	is.NoErr(err)
	is.Equal(words, []string{"one", "two"})
}

func TestLoadFallsBack(t *testing.T) {
	is := is.New(t)
	words, err := Load("", filepath.Join(t.TempDir(), "missing.db"), "en", 100, 3.5)
	is.NoErr(err) // an unusable frequency database is not an error
	is.Equal(words, Fallback())
}
