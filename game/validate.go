package game

import (
	"fmt"

	"github.com/domino14/solitaire/cards"
)

// Validate checks every invariant of a full game, including that all 52
// cards are on the table exactly once.
func (g *Game) Validate() error {
	if err := g.checkStructure(); err != nil {
		return err
	}
	if n := g.cardCount(); n != DeckSize {
		return fmt.Errorf("table holds %d cards, expected %d", n, DeckSize)
	}
	return nil
}

func (g *Game) cardCount() int {
	n := len(g.talon) + len(g.waste)
	for _, f := range g.foundations {
		n += len(f)
	}
	for _, d := range g.depots {
		n += len(d)
	}
	return n
}

// checkStructure checks every invariant except the card count.
func (g *Game) checkStructure() error {
	seen := make(map[cards.Card]bool, DeckSize)
	see := func(c cards.Card, where string) error {
		if c.Rank < cards.Ace || c.Rank > cards.King || c.Suit > cards.Spades {
			return fmt.Errorf("invalid card %v in %s", c, where)
		}
		if seen[c] {
			return fmt.Errorf("duplicate card %v in %s", c, where)
		}
		seen[c] = true
		return nil
	}

	for _, c := range g.talon {
		if err := see(c, "talon"); err != nil {
			return err
		}
	}
	for _, c := range g.waste {
		if err := see(c, "waste"); err != nil {
			return err
		}
	}
	for i, f := range g.foundations {
		where := fmt.Sprintf("foundation %d", i+1)
		for j, c := range f {
			if err := see(c, where); err != nil {
				return err
			}
			if c.Suit != f[0].Suit || int(c.Rank) != j+1 {
				return fmt.Errorf("%s is not an ascending run from the ace: %v at %d", where, c, j)
			}
		}
	}
	for i, d := range g.depots {
		where := fmt.Sprintf("depot %d", i+1)
		for _, c := range d {
			if err := see(c.Card, where); err != nil {
				return err
			}
		}
		// Read from the top down: a face up run, then only face down cards.
		j := len(d) - 1
		for ; j > 0 && d[j].FaceUp && d[j-1].FaceUp; j-- {
			lower, upper := d[j].Card, d[j-1].Card
			if lower.Color() == upper.Color() || lower.Rank+1 != upper.Rank {
				return fmt.Errorf("%s: %v cannot lie on %v", where, lower, upper)
			}
		}
		for j--; j >= 0; j-- {
			if d[j].FaceUp {
				return fmt.Errorf("%s: face up %v below a face down card", where, d[j].Card)
			}
		}
	}
	return nil
}
