package game

import (
	"slices"

	"github.com/samber/lo"

	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/pile"
)

// Score changes, following the rules at
// https://australiancardgames.com.au/solitaire/
const (
	ScoreWasteToFoundation = 10
	ScoreDepotToFoundation = 10
	ScoreWasteToDepot      = 5
	ScoreFoundationToDepot = -15
	ScoreReveal            = 5
	ScoreTurnover          = -100
)

func (g *Game) addScore(delta int) {
	g.score = max(g.score+delta, 0)
}

func (g *Game) scoreMove(m move.Move) {
	switch m.Action() {
	case move.MoveTypeTransfer:
		from, to := m.From(), m.To()
		switch {
		case from.IsWaste() && to.IsFoundation():
			g.addScore(ScoreWasteToFoundation)
		case from.IsWaste() && to.IsDepot():
			g.addScore(ScoreWasteToDepot)
		case from.IsDepot() && to.IsFoundation():
			g.addScore(ScoreDepotToFoundation)
		case from.IsFoundation() && to.IsDepot():
			g.addScore(ScoreFoundationToDepot)
		}
	case move.MoveTypeReveal:
		g.addScore(ScoreReveal)
	case move.MoveTypeTurnover:
		g.addScore(ScoreTurnover)
	}
}

// take moves the top card of the talon onto the waste, face up.
func (g *Game) take() (cards.Card, error) {
	if len(g.talon) == 0 {
		return cards.NoCard, ErrUnspecified
	}
	c := g.talon[len(g.talon)-1]
	g.talon = g.talon[:len(g.talon)-1]
	g.waste = append(g.waste, c)
	return c, nil
}

// turnover turns the waste over to form a new talon. Only allowed once
// the talon is empty.
func (g *Game) turnover() error {
	if len(g.talon) != 0 || len(g.waste) == 0 {
		return ErrUnspecified
	}
	g.talon = lo.Reverse(slices.Clone(g.waste))
	g.waste = nil
	return nil
}

// reveal flips the face-down top card of a depot.
func (g *Game) reveal(addr pile.Addr) (cards.Card, error) {
	if !addr.IsDepot() {
		return cards.NoCard, illegal("cannot reveal cards in pile %v", addr)
	}
	d := g.depots[addr.Index()]
	if len(d) == 0 {
		return cards.NoCard, ErrNoCardToMove
	}
	if d[len(d)-1].FaceUp {
		return cards.NoCard, ErrUnspecified
	}
	d[len(d)-1].FaceUp = true
	return d[len(d)-1].Card, nil
}

// top returns the accessible card of a pile.
func (g *Game) top(addr pile.Addr) (PlacedCard, bool) {
	switch {
	case addr.IsWaste():
		if len(g.waste) > 0 {
			return Up(g.waste[len(g.waste)-1]), true
		}
	case addr.IsFoundation():
		f := g.foundations[addr.Index()]
		if len(f) > 0 {
			return Up(f[len(f)-1]), true
		}
	case addr.IsDepot():
		d := g.depots[addr.Index()]
		if len(d) > 0 {
			return d[len(d)-1], true
		}
	}
	return PlacedCard{}, false
}

// pop removes the top card of a non-empty pile.
func (g *Game) pop(addr pile.Addr) {
	switch {
	case addr.IsWaste():
		g.waste = g.waste[:len(g.waste)-1]
	case addr.IsFoundation():
		f := g.foundations[addr.Index()]
		g.foundations[addr.Index()] = f[:len(f)-1]
	case addr.IsDepot():
		d := g.depots[addr.Index()]
		g.depots[addr.Index()] = d[:len(d)-1]
	}
}

func (g *Game) moveCards(from, to pile.Addr, n int) error {
	if !from.Valid() || !to.Valid() {
		return illegal("unknown pile")
	}
	if n < 1 {
		return illegal("must move at least one card, not %d", n)
	}
	if from == to {
		return illegal("cannot move %v onto itself", from)
	}
	if (from.IsWaste() || from.IsFoundation()) && n != 1 {
		return illegal("only one card at a time can leave %v", from)
	}
	switch {
	case to.IsWaste():
		return illegal("cannot move cards to the waste")
	case to.IsFoundation():
		if n != 1 {
			return illegal("only one card at a time can go to %v", to)
		}
		return g.moveToFoundation(from, to)
	}
	return g.moveToDepot(from, to, n)
}

func (g *Game) moveToFoundation(from, to pile.Addr) error {
	src, ok := g.top(from)
	if !ok {
		return ErrNoCardToMove
	}
	if !src.FaceUp {
		return illegal("cannot move a face down card from %v", from)
	}
	c := src.Card
	f := g.foundations[to.Index()]
	if c.Rank.IsAce() {
		if len(f) != 0 {
			return illegal("cannot place ace on non-empty slot %v", to)
		}
	} else {
		if len(f) == 0 {
			return illegal("cannot place non-ace %v on empty slot %v", c, to)
		}
		t := f[len(f)-1]
		if t.Suit != c.Suit || c.Rank != t.Rank+1 {
			return illegal("cannot place %v on top of %v", c, t)
		}
	}
	g.pop(from)
	g.foundations[to.Index()] = append(f, c)
	if g.foundationsComplete() {
		g.playing = PlayStateWon
	}
	return nil
}

func (g *Game) foundationsComplete() bool {
	for _, f := range g.foundations {
		if len(f) != FoundationSize {
			return false
		}
	}
	return true
}

func (g *Game) moveToDepot(from, to pile.Addr, n int) error {
	var run []PlacedCard
	if from.IsDepot() {
		d := g.depots[from.Index()]
		if len(d) == 0 {
			return ErrNoCardToMove
		}
		if len(d) < n {
			return illegal("%v holds %d cards, cannot move %d", from, len(d), n)
		}
		run = d[len(d)-n:]
	} else {
		src, ok := g.top(from)
		if !ok {
			return ErrNoCardToMove
		}
		run = []PlacedCard{src}
	}
	for _, c := range run {
		if !c.FaceUp {
			return illegal("cannot move face down cards from %v", from)
		}
	}

	base := run[0].Card
	dst := g.depots[to.Index()]
	if len(dst) == 0 {
		if !base.Rank.IsKing() {
			return illegal("only a king can go on empty depot %v, not %v", to, base)
		}
	} else {
		t := dst[len(dst)-1]
		if !t.FaceUp {
			return illegal("top of %v is face down", to)
		}
		if t.Card.Color() == base.Color() || base.Rank+1 != t.Card.Rank {
			return illegal("cannot place %v on top of %v", base, t.Card)
		}
	}

	moved := slices.Clone(run)
	if from.IsDepot() {
		d := g.depots[from.Index()]
		g.depots[from.Index()] = d[:len(d)-n]
	} else {
		g.pop(from)
	}
	g.depots[to.Index()] = append(dst, moved...)
	return nil
}
