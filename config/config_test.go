package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigNumGames), 1000)
	is.Equal(cfg.GetStringSlice(ConfigPlanners), []string{"greedy", "simple"})
	is.Equal(cfg.GetFloat64(ConfigConfidence), 95.0)
	is.True(!cfg.GetBool(ConfigDebug))
}

func TestFlagsOverrideDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--num-games", "12", "--planners", "simple", "--debug", "--start-seed", "77"}))
	is.Equal(cfg.GetInt(ConfigNumGames), 12)
	is.Equal(cfg.GetStringSlice(ConfigPlanners), []string{"simple"})
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.GetUint64(ConfigStartSeed), uint64(77))
	is.Equal(cfg.GetInt(ConfigThreads), 4)
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("SOLITAIRE_MAX_MOVES", "321")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigMaxMoves), 321)

	cfg = &Config{}
	is.NoErr(cfg.Load([]string{"--max-moves", "9"}))
	is.Equal(cfg.GetInt(ConfigMaxMoves), 9)
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	f := filepath.Join(t.TempDir(), "solitaire.yaml")
	is.NoErr(os.WriteFile(f, []byte("threads: 2\nhistogram-bins: 7\n"), 0o644))
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config-file", f, "--threads", "3"}))
	is.Equal(cfg.GetInt(ConfigThreads), 3)
	is.Equal(cfg.GetInt(ConfigHistogramBins), 7)
	is.Equal(cfg.SanitizedSettings()[ConfigHistogramBins], 7)
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}
