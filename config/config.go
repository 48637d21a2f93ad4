// Package config parses command-line flags and environment overrides into
// the settings the finder runs with.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds every knob the program understands. It is populated once by
// Load and read-only afterwards.
type Config struct {
	Required         string
	Optional         string
	DictPath         string
	FreqDBPath       string
	Lang             string
	MinLen           int
	NTop             int
	MinZipf          float64
	AllowProperNouns bool
	Debug            bool

	freqDBSet bool
}

// Load parses args. Every flag can also be set through a BEEFINDER_
// environment variable (dashes become underscores); an explicit flag wins
// over the environment.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("beefinder", pflag.ContinueOnError)
	fs.StringP("required", "r", "", "one required letter")
	fs.StringP("optional", "o", "", "five optional letters, e.g. bcdef")
	fs.StringP("dict", "d", "", "path to a word list file, one word per line; if omitted the frequency database is used")
	fs.IntP("min-len", "m", 4, "minimum word length")
	fs.Bool("allow-proper-nouns", false, "allow capitalized words")
	fs.Int("n-top", 200000, "size of the frequency-ranked list to load")
	fs.Float64("min-zipf", 3.5, "keep words with Zipf frequency >= this; use 0 to disable")
	fs.String("freq-db", filepath.Join("data", "wordfreq.db"), "sqlite word-frequency database")
	fs.String("lang", "en", "language key into the frequency database")
	fs.Bool("debug", false, "print filter-stage stats and samples")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("beefinder")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	c.Required = v.GetString("required")
	c.Optional = v.GetString("optional")
	c.DictPath = v.GetString("dict")
	c.FreqDBPath = v.GetString("freq-db")
	c.Lang = v.GetString("lang")
	c.MinLen = v.GetInt("min-len")
	c.NTop = v.GetInt("n-top")
	c.MinZipf = v.GetFloat64("min-zipf")
	c.AllowProperNouns = v.GetBool("allow-proper-nouns")
	c.Debug = v.GetBool("debug")
	c.freqDBSet = fs.Changed("freq-db")

	if c.Required == "" || c.Optional == "" {
		return errors.New("both --required and --optional must be given")
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("bad --lang %q: %w", c.Lang, err)
	}
	return nil
}

// AdjustRelativePaths rebases the default frequency-database location onto
// the executable's directory, so the binary finds its data files no matter
// where it is invoked from. Paths given explicitly are left alone.
func (c *Config) AdjustRelativePaths(exPath string) {
	if c.freqDBSet || filepath.IsAbs(c.FreqDBPath) {
		return
	}
	c.FreqDBPath = filepath.Join(exPath, c.FreqDBPath)
}
