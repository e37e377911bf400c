package view

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/solitaire/cards"
)

func TestKeyIgnoresPileOrder(t *testing.T) {
	is := is.New(t)
	a := Observer{TalonSize: 3}
	a.Depots[0] = []cards.CardView{cards.FaceDown(), up(cards.Hearts, 9)}
	a.Depots[4] = []cards.CardView{up(cards.Clubs, cards.King)}
	a.FoundationTops[0] = cards.Card{Suit: cards.Spades, Rank: 2}

	b := Observer{TalonSize: 3}
	b.Depots[6] = []cards.CardView{cards.FaceDown(), up(cards.Hearts, 9)}
	b.Depots[1] = []cards.CardView{up(cards.Clubs, cards.King)}
	b.FoundationTops[3] = cards.Card{Suit: cards.Spades, Rank: 2}

	is.Equal(a.Key(), b.Key())
	is.True(a.Equal(&b))
	is.Equal(a.Hash(), b.Hash())
}

func TestKeyRespectsOrderInsideAPile(t *testing.T) {
	is := is.New(t)
	a := Observer{}
	a.Depots[0] = []cards.CardView{up(cards.Clubs, cards.King), up(cards.Hearts, cards.Queen)}
	b := Observer{}
	b.Depots[0] = []cards.CardView{up(cards.Hearts, cards.Queen), up(cards.Clubs, cards.King)}
	is.True(a.Key() != b.Key())

	c := Observer{Waste: []cards.Card{{Suit: cards.Hearts, Rank: 1}, {Suit: cards.Hearts, Rank: 2}}}
	d := Observer{Waste: []cards.Card{{Suit: cards.Hearts, Rank: 2}, {Suit: cards.Hearts, Rank: 1}}}
	is.True(c.Key() != d.Key())
}

func TestKeySeparatesDistinctStates(t *testing.T) {
	is := is.New(t)
	a := Observer{TalonSize: 1}
	b := Observer{TalonSize: 2}
	is.True(a.Key() != b.Key())

	// one column of two cards against two columns of one card each
	c := Observer{}
	c.Depots[0] = []cards.CardView{up(cards.Clubs, cards.King), up(cards.Hearts, cards.Queen)}
	d := Observer{}
	d.Depots[0] = []cards.CardView{up(cards.Clubs, cards.King)}
	d.Depots[1] = []cards.CardView{up(cards.Hearts, cards.Queen)}
	is.True(c.Key() != d.Key())

	e := Observer{}
	e.Depots[2] = []cards.CardView{cards.FaceDown()}
	f := Observer{}
	f.Depots[2] = []cards.CardView{up(cards.Hearts, cards.Ace)}
	is.True(e.Key() != f.Key())
}

func TestKeyDoesNotMutate(t *testing.T) {
	is := is.New(t)
	o := Observer{}
	o.FoundationTops[0] = cards.Card{Suit: cards.Spades, Rank: 4}
	o.FoundationTops[3] = cards.Card{Suit: cards.Hearts, Rank: 1}
	o.Depots[5] = []cards.CardView{up(cards.Clubs, 7)}
	_ = o.Key()
	is.Equal(o.FoundationTops[0].Suit, cards.Spades)
	is.Equal(len(o.Depots[5]), 1)
	is.Equal(len(o.Depots[0]), 0)
}
