// Package pile names the piles of a solitaire table that a move can
// address: the waste, four foundations and seven depots. The talon is
// never addressed directly.
package pile

import (
	"fmt"
	"strings"
)

// Addr is the address of a pile.
type Addr uint8

const (
	// Waste is the pile of cards turned over from the talon.
	Waste Addr = iota
	// Foundations are built up by suit from ace to king.
	Foundation1
	Foundation2
	Foundation3
	Foundation4
	// Depots are built down from king in alternating colours.
	Depot1
	Depot2
	Depot3
	Depot4
	Depot5
	Depot6
	Depot7
)

const (
	NumFoundations = 4
	NumDepots      = 7
)

var (
	Foundations = [NumFoundations]Addr{Foundation1, Foundation2, Foundation3, Foundation4}
	Depots      = [NumDepots]Addr{Depot1, Depot2, Depot3, Depot4, Depot5, Depot6, Depot7}
	// DepotsAndWaste are the piles a planner builds from.
	DepotsAndWaste = [NumDepots + 1]Addr{Depot1, Depot2, Depot3, Depot4, Depot5, Depot6, Depot7, Waste}
)

func (a Addr) IsWaste() bool      { return a == Waste }
func (a Addr) IsFoundation() bool { return a >= Foundation1 && a <= Foundation4 }
func (a Addr) IsDepot() bool      { return a >= Depot1 && a <= Depot7 }

// Valid is false for values outside the closed set of addresses.
func (a Addr) Valid() bool { return a <= Depot7 }

// Index returns the position of the address within its own group.
func (a Addr) Index() int {
	switch {
	case a.IsFoundation():
		return int(a - Foundation1)
	case a.IsDepot():
		return int(a - Depot1)
	}
	return 0
}

func (a Addr) String() string {
	switch {
	case a.IsWaste():
		return "W"
	case a.IsFoundation():
		return fmt.Sprintf("F%d", a.Index()+1)
	case a.IsDepot():
		return fmt.Sprintf("D%d", a.Index()+1)
	}
	return "?"
}

// Parse turns "W", "F1".."F4" or "D1".."D7" (any case) into an address.
func Parse(s string) (Addr, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "W" {
		return Waste, nil
	}
	for _, a := range Foundations {
		if a.String() == s {
			return a, nil
		}
	}
	for _, a := range Depots {
		if a.String() == s {
			return a, nil
		}
	}
	return Waste, fmt.Errorf("unknown pile %q", s)
}
