package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug         = "debug"
	ConfigConfigFile    = "config-file"
	ConfigNumGames      = "num-games"
	ConfigStartSeed     = "start-seed"
	ConfigSeedsFile     = "seeds-file"
	ConfigThreads       = "threads"
	ConfigPlanners      = "planners"
	ConfigOutputFile    = "output-file"
	ConfigSummaryFile   = "summary-file"
	ConfigMaxMoves      = "max-moves"
	ConfigHistogramBins = "histogram-bins"
	ConfigConfidence    = "confidence"
)

// Config wraps a viper instance. Settings come, in increasing order of
// precedence, from defaults, an optional config file, SOLITAIRE_ prefixed
// environment variables and command-line flags.
type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigNumGames, 1000)
	v.SetDefault(ConfigStartSeed, 0)
	v.SetDefault(ConfigSeedsFile, "")
	v.SetDefault(ConfigThreads, 4)
	v.SetDefault(ConfigPlanners, []string{"greedy", "simple"})
	v.SetDefault(ConfigOutputFile, "/tmp/solitaire_games.txt")
	v.SetDefault(ConfigSummaryFile, "")
	v.SetDefault(ConfigMaxMoves, 5000)
	v.SetDefault(ConfigHistogramBins, 10)
	v.SetDefault(ConfigConfidence, 95.0)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("solitaire")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfig returns a config with only the defaults and environment
// applied. Useful in tests.
func DefaultConfig() *Config {
	return &Config{newViper()}
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("solitaire", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigConfigFile, "", "optional YAML/TOML/JSON config file")
	fs.Int(ConfigNumGames, 1000, "number of games to play per planner")
	fs.Uint64(ConfigStartSeed, 0, "seed of the first game; games use increasing seeds")
	fs.String(ConfigSeedsFile, "", "read seeds from this file instead of counting up")
	fs.Int(ConfigThreads, 4, "number of games to play in parallel")
	fs.StringSlice(ConfigPlanners, []string{"greedy", "simple"}, "planners to run")
	fs.String(ConfigOutputFile, "/tmp/solitaire_games.txt", "CSV log of every game played")
	fs.String(ConfigSummaryFile, "", "write a YAML summary here as well as printing it")
	fs.Int(ConfigMaxMoves, 5000, "quit a game after this many accepted moves")
	fs.Int(ConfigHistogramBins, 10, "bins in the score histogram")
	fs.Float64(ConfigConfidence, 95.0, "confidence, in percent, of the win rate interval")
	return fs
}

// Load parses args and reads the config file if one was named.
func (c *Config) Load(args []string) error {
	v := newViper()
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if f := v.GetString(ConfigConfigFile); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", f, err)
		}
	}
	c.Viper = v
	return nil
}

// SanitizedSettings returns the settings as a map, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
