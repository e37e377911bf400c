package automatic

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/solitaire/stats"
)

// Summary aggregates the games of one planner.
type Summary struct {
	Planner     string  `yaml:"planner"`
	Games       int     `yaml:"games"`
	Wins        int     `yaml:"wins"`
	WinRate     float64 `yaml:"win_rate"`
	WinRateLow  float64 `yaml:"win_rate_low"`
	WinRateHigh float64 `yaml:"win_rate_high"`
	Confidence  float64 `yaml:"confidence"`
	ScoreMean   float64 `yaml:"score_mean"`
	ScoreStdev  float64 `yaml:"score_stdev"`
	ScoreMin    float64 `yaml:"score_min"`
	ScoreMax    float64 `yaml:"score_max"`
	MovesMean   float64 `yaml:"moves_mean"`
	Rejected    int     `yaml:"rejected"`
	// Histogram is a text plot of the scores.
	Histogram string `yaml:"histogram,omitempty"`
}

// Summarize groups results by planner, in order of first appearance.
// confidence is a percentage used for the win rate interval.
func Summarize(results []*GameResult, confidence float64, bins int) []Summary {
	byPlanner := lo.GroupBy(results, func(r *GameResult) string { return r.Planner })
	names := lo.Uniq(lo.Map(results, func(r *GameResult, _ int) string { return r.Planner }))

	sums := make([]Summary, 0, len(names))
	for _, name := range names {
		rs := byPlanner[name]
		var wins stats.Proportion
		var score, moves stats.Statistic
		for _, r := range rs {
			wins.Add(r.Won)
			score.Push(float64(r.Score))
			moves.Push(float64(r.Moves))
		}
		low, high := wins.Interval(confidence)
		scores := lo.Map(rs, func(r *GameResult, _ int) float64 { return float64(r.Score) })
		sums = append(sums, Summary{
			Planner:     name,
			Games:       len(rs),
			Wins:        wins.Successes,
			WinRate:     wins.Rate(),
			WinRateLow:  low,
			WinRateHigh: high,
			Confidence:  confidence,
			ScoreMean:   score.Mean(),
			ScoreStdev:  score.Stdev(),
			ScoreMin:    score.Min(),
			ScoreMax:    score.Max(),
			MovesMean:   moves.Mean(),
			Rejected:    lo.SumBy(rs, func(r *GameResult) int { return r.Rejected }),
			Histogram:   scoreHistogram(scores, bins),
		})
	}
	return sums
}

// scoreHistogram is empty when there is nothing to spread over bins.
func scoreHistogram(scores []float64, bins int) string {
	if bins < 1 || len(scores) == 0 || lo.Min(scores) == lo.Max(scores) {
		return ""
	}
	var sb strings.Builder
	h := histogram.Hist(bins, scores)
	if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
		return ""
	}
	return sb.String()
}

// WriteSummary writes the summaries as a YAML document.
func WriteSummary(w io.Writer, sums []Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sums); err != nil {
		return err
	}
	return enc.Close()
}

// ReadSummary reads back what WriteSummary wrote.
func ReadSummary(r io.Reader) ([]Summary, error) {
	var sums []Summary
	if err := yaml.NewDecoder(r).Decode(&sums); err != nil {
		return nil, err
	}
	return sums, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d/%d won (%.2f%%, %.0f%% CI %.2f%%-%.2f%%), score %.1f ± %.1f, %.1f moves",
		s.Planner, s.Wins, s.Games, 100*s.WinRate, s.Confidence, 100*s.WinRateLow, 100*s.WinRateHigh,
		s.ScoreMean, s.ScoreStdev, s.MovesMean)
}
