package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/spelling-tools/beefinder/config"
	"github.com/spelling-tools/beefinder/finder"
	"github.com/spelling-tools/beefinder/lexicon"
	"github.com/spelling-tools/beefinder/puzzle"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}
	output.PartsOrder = []string{zerolog.LevelFieldName, zerolog.MessageFieldName}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("[%s]", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	logger := zerolog.New(output)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("could not load config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Data files live next to the executable unless told otherwise.
	if ex, err := os.Executable(); err == nil {
		cfg.AdjustRelativePaths(filepath.Dir(ex))
	}

	required, optional, err := puzzle.ParseLetters(cfg.Required, cfg.Optional)
	if err != nil {
		log.Fatal().Err(err).Msg("bad puzzle letters")
	}
	pz := puzzle.Config{
		Required:         required,
		Optional:         optional,
		MinLen:           cfg.MinLen,
		AllowProperNouns: cfg.AllowProperNouns,
	}

	words, err := lexicon.Load(cfg.DictPath, cfg.FreqDBPath, cfg.Lang, cfg.NTop, cfg.MinZipf)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load word list")
	}

	var results []finder.Result
	if cfg.Debug {
		var tally *finder.Tally
		results, tally = finder.FindDebug(pz, words)
		tally.Render(os.Stdout)
	} else {
		results = finder.Find(pz, words)
	}
	finder.Report(os.Stdout, pz, results, len(words))
}
