package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/solitaire/config"
)

func TestPlayGames(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	out := filepath.Join(t.TempDir(), "games.csv")
	cfg.Set(config.ConfigOutputFile, out)
	cfg.Set(config.ConfigThreads, 3)

	seeds := SeedRange(100, 10)
	planners := []string{"greedy", "simple"}
	results, err := PlayGames(context.Background(), cfg, planners, seeds)
	is.NoErr(err)
	is.Equal(len(results), 20)
	for i, r := range results {
		is.Equal(r.Planner, planners[i/10])
		is.Equal(r.Seed, seeds[i%10])
	}

	// Same games on one thread give the same results.
	cfg.Set(config.ConfigThreads, 1)
	cfg.Set(config.ConfigOutputFile, "")
	again, err := PlayGames(context.Background(), cfg, planners, seeds)
	is.NoErr(err)
	is.Equal(again, results)

	bts, err := os.ReadFile(out)
	is.NoErr(err)
	lines := strings.Split(strings.TrimSpace(string(bts)), "\n")
	is.Equal(len(lines), 21)
	is.Equal(lines[0]+"\n", CSVHeader)
}

func TestPlayGamesUnknownPlanner(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigOutputFile, "")
	_, err := PlayGames(context.Background(), cfg, []string{"greedy", "mcts"}, SeedRange(0, 2))
	is.True(err != nil)
}

func TestPlayGamesCanceled(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigOutputFile, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PlayGames(ctx, cfg, []string{"greedy"}, SeedRange(0, 50))
	is.True(err != nil)
}
