// Package stats keeps running statistics over game results.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance over pushed values, using
// Welford's algorithm.
type Statistic struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.min, s.max = val, val
	} else {
		s.min = math.Min(s.min, val)
		s.max = math.Max(s.max, val)
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 { return s.mean }

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Min() float64 { return s.min }
func (s *Statistic) Max() float64 { return s.max }
func (s *Statistic) Count() int   { return s.n }

// Proportion counts successes out of trials, e.g. games won out of games
// played.
type Proportion struct {
	Successes int
	Trials    int
}

func (p *Proportion) Add(success bool) {
	p.Trials++
	if success {
		p.Successes++
	}
}

func (p Proportion) Rate() float64 {
	if p.Trials == 0 {
		return 0.0
	}
	return float64(p.Successes) / float64(p.Trials)
}

// Interval is the normal-approximation confidence interval of the rate,
// clamped to [0, 1]. The confidence is a percentage, e.g. 95.
func (p Proportion) Interval(confidence float64) (float64, float64) {
	if p.Trials == 0 {
		return 0.0, 0.0
	}
	r := p.Rate()
	half := ZVal(confidence) * math.Sqrt(r*(1-r)/float64(p.Trials))
	return math.Max(r-half, 0), math.Min(r+half, 1)
}

// ZVal returns the two-tailed Z-value associated with a specific confidence interval.
// The interval is a number from 0 to 100 percent.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + (confidenceInterval / 100)) / 2
	return dist.Quantile(area)
}
