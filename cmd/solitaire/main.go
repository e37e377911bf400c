// Command solitaire plays many games with the planners and reports how they
// did.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/solitaire/automatic"
	"github.com/domino14/solitaire/config"
)

var (
	GitVersion string
)

func setupLogging(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func seeds(cfg *config.Config) ([]uint64, error) {
	if fn := cfg.GetString(config.ConfigSeedsFile); fn != "" {
		return automatic.LoadSeeds(fn)
	}
	return automatic.SeedRange(cfg.GetUint64(config.ConfigStartSeed), cfg.GetInt(config.ConfigNumGames)), nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg)
	log.Info().Str("version", GitVersion).Msgf("Loaded config: %v", cfg.SanitizedSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ss, err := seeds(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-seeds")
	}
	tstart := time.Now()
	results, err := automatic.PlayGames(ctx, cfg, cfg.GetStringSlice(config.ConfigPlanners), ss)
	if err != nil {
		log.Fatal().Err(err).Msg("play-games")
	}
	log.Info().Dur("elapsed", time.Since(tstart)).Int("games", len(results)).Msg("done")

	sums := automatic.Summarize(results, cfg.GetFloat64(config.ConfigConfidence), cfg.GetInt(config.ConfigHistogramBins))
	for _, s := range sums {
		fmt.Println(s)
		fmt.Println(s.Histogram)
	}
	if fn := cfg.GetString(config.ConfigSummaryFile); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			log.Fatal().Err(err).Msg("create-summary-file")
		}
		defer f.Close()
		if err := automatic.WriteSummary(f, sums); err != nil {
			log.Fatal().Err(err).Msg("write-summary")
		}
		log.Info().Str("file", fn).Msg("wrote-summary")
	}
}
