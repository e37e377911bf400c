// Package view is the partial-information snapshot of a solitaire game
// that players are allowed to see. Face-down cards in the depots keep their
// position but not their identity, and the talon is only a count.
package view

import (
	"errors"
	"fmt"

	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/pile"
)

// Observer holds everything known about the game state. The last element
// of Waste and of every depot is the accessible top card. A zero card in
// FoundationTops means the foundation is empty.
type Observer struct {
	TalonSize      int
	Waste          []cards.Card
	FoundationTops [pile.NumFoundations]cards.Card
	Depots         [pile.NumDepots][]cards.CardView
}

var ErrInconsistentUpdate = errors.New("update does not match the observed state")

// IsWon is true once every foundation is topped by a king.
func (o *Observer) IsWon() bool {
	for _, c := range o.FoundationTops {
		if !c.Rank.IsKing() {
			return false
		}
	}
	return true
}

// NTakeableCards returns how many face-up cards can be picked up from addr.
func (o *Observer) NTakeableCards(addr pile.Addr) int {
	switch {
	case addr.IsWaste():
		if len(o.Waste) > 0 {
			return 1
		}
		return 0
	case addr.IsFoundation():
		if !o.FoundationTops[addr.Index()].IsZero() {
			return 1
		}
		return 0
	case addr.IsDepot():
		d := o.Depots[addr.Index()]
		n := 0
		for i := len(d) - 1; i >= 0 && d[i].IsFaceUp(); i-- {
			n++
		}
		return n
	}
	return 0
}

// CardAt returns the n-th card from the top of addr (n = 1 is the top).
// The waste and the foundations only expose their top card.
func (o *Observer) CardAt(addr pile.Addr, n int) (cards.CardView, bool) {
	if n < 1 {
		return cards.CardView{}, false
	}
	switch {
	case addr.IsWaste():
		if n == 1 && len(o.Waste) > 0 {
			return cards.FaceUp(o.Waste[len(o.Waste)-1]), true
		}
	case addr.IsFoundation():
		top := o.FoundationTops[addr.Index()]
		if n == 1 && !top.IsZero() {
			return cards.FaceUp(top), true
		}
	case addr.IsDepot():
		d := o.Depots[addr.Index()]
		if n <= len(d) {
			return d[len(d)-n], true
		}
	}
	return cards.CardView{}, false
}

// Clone returns a deep copy.
func (o *Observer) Clone() Observer {
	c := Observer{
		TalonSize:      o.TalonSize,
		Waste:          append([]cards.Card(nil), o.Waste...),
		FoundationTops: o.FoundationTops,
	}
	for i, d := range o.Depots {
		c.Depots[i] = append([]cards.CardView(nil), d...)
	}
	return c
}

// Update advances the view by a move that the engine accepted, using the
// card the engine disclosed for it (NoCard when nothing was disclosed).
// The view is left untouched when the move does not fit it.
func (o *Observer) Update(m move.Move, disclosed cards.Card) error {
	switch m.Action() {
	case move.MoveTypeTake:
		if disclosed.IsZero() || o.TalonSize == 0 {
			return fmt.Errorf("%w: take with talon %d and card %v",
				ErrInconsistentUpdate, o.TalonSize, disclosed)
		}
		o.Waste = append(o.Waste, disclosed)
		o.TalonSize--
	case move.MoveTypeTurnover:
		if o.TalonSize != 0 || len(o.Waste) == 0 {
			return fmt.Errorf("%w: turnover", ErrInconsistentUpdate)
		}
		o.TalonSize = len(o.Waste)
		o.Waste = o.Waste[:0]
	case move.MoveTypeQuit:
	case move.MoveTypeReveal:
		return o.reveal(m.From(), disclosed)
	case move.MoveTypeTransfer:
		return o.transfer(m.From(), m.To(), m.N())
	default:
		return fmt.Errorf("%w: unknown move %v", ErrInconsistentUpdate, m)
	}
	return nil
}

func (o *Observer) reveal(addr pile.Addr, disclosed cards.Card) error {
	if !addr.IsDepot() || disclosed.IsZero() {
		return fmt.Errorf("%w: reveal %v as %v", ErrInconsistentUpdate, addr, disclosed)
	}
	d := o.Depots[addr.Index()]
	if len(d) == 0 || d[len(d)-1].IsFaceUp() {
		return fmt.Errorf("%w: nothing face down on %v", ErrInconsistentUpdate, addr)
	}
	d[len(d)-1] = cards.FaceUp(disclosed)
	return nil
}

func (o *Observer) transfer(from, to pile.Addr, n int) error {
	bad := fmt.Errorf("%w: move %v->%v x%d", ErrInconsistentUpdate, from, to, n)
	if n < 1 || from == to {
		return bad
	}
	switch {
	case from.IsDepot() && to.IsDepot():
		src := o.Depots[from.Index()]
		if n > len(src) {
			return bad
		}
		split := len(src) - n
		o.Depots[to.Index()] = append(o.Depots[to.Index()], src[split:]...)
		o.Depots[from.Index()] = src[:split:split]
	case from.IsDepot() && to.IsFoundation() && n == 1:
		src := o.Depots[from.Index()]
		if len(src) == 0 || !src[len(src)-1].IsFaceUp() {
			return bad
		}
		o.FoundationTops[to.Index()] = src[len(src)-1].Card()
		o.Depots[from.Index()] = src[: len(src)-1 : len(src)-1]
	case from.IsFoundation() && to.IsDepot() && n == 1:
		top := o.FoundationTops[from.Index()]
		if top.IsZero() {
			return bad
		}
		o.Depots[to.Index()] = append(o.Depots[to.Index()], cards.FaceUp(top))
		if top.Rank.IsAce() {
			o.FoundationTops[from.Index()] = cards.NoCard
		} else {
			o.FoundationTops[from.Index()] = cards.Card{Suit: top.Suit, Rank: top.Rank - 1}
		}
	case from.IsFoundation() && to.IsFoundation() && n == 1:
		top := o.FoundationTops[from.Index()]
		if top.IsZero() {
			return bad
		}
		o.FoundationTops[to.Index()] = top
		if top.Rank.IsAce() {
			o.FoundationTops[from.Index()] = cards.NoCard
		} else {
			o.FoundationTops[from.Index()] = cards.Card{Suit: top.Suit, Rank: top.Rank - 1}
		}
	case from.IsWaste() && n == 1 && (to.IsDepot() || to.IsFoundation()):
		if len(o.Waste) == 0 {
			return bad
		}
		c := o.Waste[len(o.Waste)-1]
		o.Waste = o.Waste[:len(o.Waste)-1]
		if to.IsDepot() {
			o.Depots[to.Index()] = append(o.Depots[to.Index()], cards.FaceUp(c))
		} else {
			o.FoundationTops[to.Index()] = c
		}
	default:
		return bad
	}
	return nil
}
