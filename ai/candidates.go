package ai

import (
	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/pile"
	"github.com/domino14/solitaire/view"
)

// columnFilter can veto a column-building transfer.
type columnFilter func(o *view.Observer, from, to pile.Addr, n int) bool

// candidates lists the moves that look legal from o, grouped by kind in
// this order: foundation builds, reveals, column building, take, turnover,
// quit. Quit is always last, and is the only candidate once o is won.
func candidates(o *view.Observer, allow columnFilter) []move.Move {
	if o.IsWon() {
		return []move.Move{move.NewQuitMove()}
	}
	var ms []move.Move

	for _, from := range pile.DepotsAndWaste {
		top, ok := o.CardAt(from, 1)
		if !ok || !top.IsFaceUp() {
			continue
		}
		for _, to := range pile.Foundations {
			if buildsOnFoundation(top.Card(), o.FoundationTops[to.Index()]) {
				ms = append(ms, move.NewTransferMove(from, to, 1))
			}
		}
	}

	for _, addr := range pile.Depots {
		top, ok := o.CardAt(addr, 1)
		if ok && !top.IsFaceUp() {
			ms = append(ms, move.NewRevealMove(addr))
		}
	}

	for _, from := range pile.DepotsAndWaste {
		takeable := o.NTakeableCards(from)
		for _, to := range pile.Depots {
			if to == from {
				continue
			}
			dst, hasDst := o.CardAt(to, 1)
			for n := 1; n <= takeable; n++ {
				base, _ := o.CardAt(from, n)
				if !hasDst {
					// A king that already heads its column gains nothing
					// from moving to another empty one.
					if !base.Card().Rank.IsKing() || (from.IsDepot() && n == len(o.Depots[from.Index()])) {
						continue
					}
				} else if !dst.IsFaceUp() || !buildsOnDepot(base.Card(), dst.Card()) {
					continue
				}
				if allow != nil && !allow(o, from, to, n) {
					continue
				}
				ms = append(ms, move.NewTransferMove(from, to, n))
			}
		}
	}

	if o.TalonSize > 0 {
		ms = append(ms, move.NewTakeMove())
	}
	if o.TalonSize == 0 && len(o.Waste) > 0 {
		ms = append(ms, move.NewTurnoverMove())
	}
	return append(ms, move.NewQuitMove())
}

// buildsOnFoundation reports whether c can go onto a foundation topped by
// top, where a zero top is an empty foundation.
func buildsOnFoundation(c, top cards.Card) bool {
	if top.IsZero() {
		return c.Rank.IsAce()
	}
	return c.Suit == top.Suit && c.Rank == top.Rank+1
}

func buildsOnDepot(c, top cards.Card) bool {
	return c.Color() != top.Color() && c.Rank+1 == top.Rank
}
