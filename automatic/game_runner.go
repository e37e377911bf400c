// Package automatic plays solitaire games without a human: each game is
// dealt from a seed and played to the end by one of the planners.
package automatic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/solitaire/ai"
	"github.com/domino14/solitaire/config"
	"github.com/domino14/solitaire/game"
	"github.com/domino14/solitaire/move"
)

// CSVHeader names the columns of the lines sent on the log channel.
const CSVHeader = "planner,seed,score,won,moves,rejected\n"

// GameResult is the outcome of a single game.
type GameResult struct {
	Planner string
	Seed    uint64
	Score   int
	Won     bool
	// Moves counts the accepted moves, including the final quit.
	Moves int
	// Rejected counts suggestions the engine refused.
	Rejected int
}

func (r *GameResult) csv() string {
	return fmt.Sprintf("%v,%v,%v,%v,%v,%v\n",
		r.Planner, r.Seed, r.Score, r.Won, r.Moves, r.Rejected)
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	config   *config.Config
	logchan  chan string
	maxMoves int
}

// NewGameRunner just instantiates and initializes a game runner. logchan
// may be nil.
func NewGameRunner(logchan chan string, cfg *config.Config) *GameRunner {
	return &GameRunner{
		config:   cfg,
		logchan:  logchan,
		maxMoves: cfg.GetInt(config.ConfigMaxMoves),
	}
}

// PlayGame deals the game for seed and lets the named planner play it to
// the end. A planner that runs out of moves is an error. Once the move
// limit is reached, the runner quits the game on the planner's behalf.
func (r *GameRunner) PlayGame(ctx context.Context, seed uint64, plannerName string) (*GameResult, error) {
	g := game.Deal(seed)
	p, err := ai.New(plannerName, g.Observe())
	if err != nil {
		return nil, err
	}
	res := &GameResult{Planner: p.Name(), Seed: seed}

	for g.IsRunning() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var m move.Move
		if r.maxMoves > 0 && res.Moves >= r.maxMoves {
			log.Debug().Uint64("seed", seed).Int("moves", res.Moves).Msg("move-limit-reached")
			m = move.NewQuitMove()
		} else {
			m, err = p.MakeMove()
			if err != nil {
				return nil, fmt.Errorf("planner %s, seed %d, move %d: %w", p.Name(), seed, res.Moves, err)
			}
		}
		disclosed, err := g.Act(m)
		if err != nil {
			// The planner's memory makes sure it suggests something else.
			var merr *game.MoveError
			if !errors.As(err, &merr) {
				return nil, err
			}
			res.Rejected++
			continue
		}
		res.Moves++
		if err := p.Update(m, disclosed); err != nil {
			return nil, fmt.Errorf("planner %s, seed %d: %w", p.Name(), seed, err)
		}
	}
	res.Score = g.Score()
	res.Won = g.IsWon()

	log.Debug().Str("planner", res.Planner).Uint64("seed", seed).Int("score", res.Score).
		Bool("won", res.Won).Int("moves", res.Moves).Msg("game-over")
	if r.logchan != nil {
		r.logchan <- res.csv()
	}
	return res, nil
}
