package stats

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores   []int
		mean     float64
		stdev    float64
		min, max float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]int{1}, 1, 0, 1, 1},
		{[]int{}, 0, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.Equal(s.Count(), len(c.scores))
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.True(FuzzyEqual(s.Min(), c.min))
		is.True(FuzzyEqual(s.Max(), c.max))
	}
}

func TestStandardError(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	is.Equal(s.StandardError(), 0.0)
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Push(v)
	}
	is.True(FuzzyEqual(s.StandardError(), s.Stdev()/math.Sqrt(8)))
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(math.Abs(ZVal(95)-1.959964) < 1e-5)
	is.True(math.Abs(ZVal(99)-2.575829) < 1e-5)
	is.True(FuzzyEqual(ZVal(0), 0))
}

func TestProportion(t *testing.T) {
	is := is.New(t)
	var p Proportion
	lo, hi := p.Interval(95)
	is.Equal(lo, 0.0)
	is.Equal(hi, 0.0)

	for i := range 100 {
		p.Add(i%4 == 0)
	}
	is.Equal(p.Successes, 25)
	is.Equal(p.Trials, 100)
	is.True(FuzzyEqual(p.Rate(), 0.25))
	lo, hi = p.Interval(95)
	half := ZVal(95) * math.Sqrt(0.25*0.75/100)
	is.True(FuzzyEqual(lo, 0.25-half))
	is.True(FuzzyEqual(hi, 0.25+half))

	all := Proportion{Successes: 3, Trials: 3}
	lo, hi = all.Interval(95)
	is.Equal(lo, 1.0)
	is.Equal(hi, 1.0)
}
