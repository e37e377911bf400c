package pile

import (
	"testing"

	"github.com/matryer/is"
)

func TestCapabilities(t *testing.T) {
	is := is.New(t)
	is.True(Waste.IsWaste())
	is.True(!Waste.IsDepot() && !Waste.IsFoundation())
	for i, a := range Foundations {
		is.True(a.IsFoundation())
		is.True(!a.IsDepot() && !a.IsWaste())
		is.Equal(a.Index(), i)
	}
	for i, a := range Depots {
		is.True(a.IsDepot())
		is.True(!a.IsFoundation() && !a.IsWaste())
		is.Equal(a.Index(), i)
	}
	is.True(!Addr(12).Valid())
	is.True(Depot7.Valid())
}

func TestParseRoundTrip(t *testing.T) {
	is := is.New(t)
	all := append([]Addr{Waste}, Foundations[:]...)
	all = append(all, Depots[:]...)
	is.Equal(len(all), 12)
	for _, a := range all {
		got, err := Parse(a.String())
		is.NoErr(err)
		is.Equal(got, a)
	}
	got, err := Parse(" d3")
	is.NoErr(err)
	is.Equal(got, Depot3)
	_, err = Parse("D8")
	is.True(err != nil)
	_, err = Parse("talon")
	is.True(err != nil)
}
