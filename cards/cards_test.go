package cards

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestNewRank(t *testing.T) {
	is := is.New(t)
	for v := 1; v <= 13; v++ {
		r, err := NewRank(v)
		is.NoErr(err)
		is.Equal(int(r), v)
	}
	for _, v := range []int{-1, 0, 14, 255} {
		_, err := NewRank(v)
		is.True(errors.Is(err, ErrRankOutOfRange))
	}
}

func TestColors(t *testing.T) {
	is := is.New(t)
	is.Equal(Hearts.Color(), Red)
	is.Equal(Diamonds.Color(), Red)
	is.Equal(Clubs.Color(), Black)
	is.Equal(Spades.Color(), Black)
	is.Equal(Card{Suit: Spades, Rank: Queen}.Color(), Black)
}

func TestDeck(t *testing.T) {
	is := is.New(t)
	d := Deck()
	is.Equal(len(d), 52)
	seen := map[Card]bool{}
	for _, c := range d {
		is.True(!c.IsZero())
		is.True(!seen[c])
		seen[c] = true
	}
	is.Equal(d[0], Card{Suit: Hearts, Rank: Ace})
	is.Equal(d[13], Card{Suit: Clubs, Rank: Ace})
	is.Equal(d[51], Card{Suit: Spades, Rank: King})
}

func TestParseCard(t *testing.T) {
	is := is.New(t)
	type tc struct {
		in   string
		want Card
	}
	for _, c := range []tc{
		{"QC", Card{Suit: Clubs, Rank: Queen}},
		{"10h", Card{Suit: Hearts, Rank: 10}},
		{"as", Card{Suit: Spades, Rank: Ace}},
		{" kd ", Card{Suit: Diamonds, Rank: King}},
	} {
		got, err := ParseCard(c.in)
		is.NoErr(err)
		is.Equal(got, c.want)
		reparsed, err := ParseCard(got.String())
		is.NoErr(err)
		is.Equal(reparsed, got)
	}
	for _, bad := range []string{"", "Q", "QX", "14C", "0S", "ZH"} {
		_, err := ParseCard(bad)
		is.True(err != nil)
	}
}

func TestCardViewHidesIdentity(t *testing.T) {
	is := is.New(t)
	is.Equal(FaceDown().Card(), NoCard)
	is.True(!FaceDown().IsFaceUp())
	qc := Card{Suit: Clubs, Rank: Queen}
	is.Equal(FaceUp(qc).Card(), qc)
	is.Equal(FaceDown(), CardView{})
	is.True(FaceDown().Compare(FaceUp(qc)) < 0)
	is.True(FaceUp(Card{Suit: Hearts, Rank: King}).Compare(FaceUp(qc)) < 0)
	is.Equal(FaceUp(qc).Compare(FaceUp(qc)), 0)
}
