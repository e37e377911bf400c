package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/solitaire/ai"
	"github.com/domino14/solitaire/config"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("solitaireGamesPlayed")
	IsPlaying = expvar.NewInt("solitaireIsPlaying")
}

type job struct {
	idx     int
	planner string
	seed    uint64
}

// PlayGames plays every seed with every planner, on as many goroutines as
// the threads setting asks for. If an output file is configured, a CSV line
// is written there for each game. Results come back ordered by planner,
// then by seed.
func PlayGames(ctx context.Context, cfg *config.Config, planners []string, seeds []uint64) ([]*GameResult, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if unknown := lo.Without(planners, ai.Names()...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown planners %v (have %v)", unknown, ai.Names())
	}
	threads := max(cfg.GetInt(config.ConfigThreads), 1)

	var logChan chan string
	writer := errgroup.Group{}
	if fn := cfg.GetString(config.ConfigOutputFile); fn != "" {
		logfile, err := os.Create(fn)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		writer.Go(func() error {
			defer logfile.Close()
			_, werr := logfile.WriteString(CSVHeader)
			// Keep draining after a failed write so that no game blocks.
			for msg := range logChan {
				if werr == nil {
					_, werr = logfile.WriteString(msg)
				}
			}
			log.Debug().Str("file", fn).AnErr("err", werr).Msg("game-log-written")
			return werr
		})
	}
	log.Info().Int("games", len(planners)*len(seeds)).Int("threads", threads).Msg("starting-games")

	results := make([]*GameResult, len(planners)*len(seeds))
	jobs := make(chan job, 100)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for pi, p := range planners {
			for si, s := range seeds {
				select {
				case jobs <- job{idx: pi*len(seeds) + si, planner: p, seed: s}:
				case <-gctx.Done():
					log.Info().Msg("Got stop signal, exiting soon...")
					return gctx.Err()
				}
			}
		}
		return nil
	})

	for t := 0; t < threads; t++ {
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			r := NewGameRunner(logChan, cfg)
			for j := range jobs {
				res, err := r.PlayGame(gctx, j.seed, j.planner)
				if err != nil {
					return err
				}
				results[j.idx] = res
				GamesPlayed.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	if logChan != nil {
		close(logChan)
	}
	if werr := writer.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("games", len(results)).Msg("all-games-finished")
	return results, nil
}
