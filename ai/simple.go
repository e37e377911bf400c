package ai

import (
	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/pile"
	"github.com/domino14/solitaire/view"
)

// SimplePlanner tries moves in a fixed order of kinds, with a couple of
// pieces of common solitaire advice layered on top.
type SimplePlanner struct {
	memory
}

func NewSimplePlanner(obs view.Observer) *SimplePlanner {
	return &SimplePlanner{memory: newMemory(SimplePlannerName, obs)}
}

// allowColumnMove keeps low waste cards out of the columns: a 2 can only
// ever block other cards there, and anything below a 5 waits until the
// talon has been gone through once.
func (p *SimplePlanner) allowColumnMove(o *view.Observer, from, _ pile.Addr, _ int) bool {
	if !from.IsWaste() || len(o.Waste) == 0 {
		return true
	}
	top := o.Waste[len(o.Waste)-1]
	if top.Rank == cards.Two {
		return false
	}
	return top.Rank >= cards.Five || p.passes > 0
}

func (p *SimplePlanner) MakeMove() (move.Move, error) {
	return p.choose(candidates(&p.obs, p.allowColumnMove))
}
