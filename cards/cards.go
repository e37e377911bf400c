// Package cards contains the card model for a game of solitaire: suits,
// colours, ranks, cards, and the face-up/face-down view of a card.
package cards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four suits of a 52-card deck.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in their natural order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	}
	return "?"
}

// Color returns the colour of the suit. Hearts and diamonds are red.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color of a card.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank is the numerical value on a card. Ace is 1 and King is 13. The
// zero Rank is not a valid rank; it marks the absence of a card.
type Rank uint8

const (
	Ace   Rank = 1
	Two   Rank = 2
	Five  Rank = 5
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var ErrRankOutOfRange = errors.New("rank not in range 1-13")

// NewRank returns the rank for v, failing if v is outside [1, 13].
func NewRank(v int) (Rank, error) {
	if v < int(Ace) || v > int(King) {
		return 0, fmt.Errorf("%w: %d", ErrRankOutOfRange, v)
	}
	return Rank(v), nil
}

func (r Rank) IsAce() bool  { return r == Ace }
func (r Rank) IsKing() bool { return r == King }

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is the identity of a playing card. The zero Card means "no card".
type Card struct {
	Suit Suit
	Rank Rank
}

// NoCard is the zero Card.
var NoCard = Card{}

func (c Card) IsZero() bool { return c.Rank == 0 }

func (c Card) Color() Color { return c.Suit.Color() }

func (c Card) String() string {
	if c.IsZero() {
		return "--"
	}
	return c.Rank.String() + c.Suit.String()
}

// Compare orders cards by suit, then rank. The zero card sorts first.
func (c Card) Compare(o Card) int {
	switch {
	case c.IsZero() && o.IsZero():
		return 0
	case c.IsZero():
		return -1
	case o.IsZero():
		return 1
	case c.Suit != o.Suit:
		return int(c.Suit) - int(o.Suit)
	}
	return int(c.Rank) - int(o.Rank)
}

// ParseCard parses strings like "QC", "10h" or "as".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoCard, fmt.Errorf("card %q too short", s)
	}
	rs, ss := s[:len(s)-1], s[len(s)-1:]
	var suit Suit
	switch ss {
	case "H":
		suit = Hearts
	case "D":
		suit = Diamonds
	case "C":
		suit = Clubs
	case "S":
		suit = Spades
	default:
		return NoCard, fmt.Errorf("unknown suit in card %q", s)
	}
	var v int
	switch rs {
	case "A":
		v = 1
	case "J":
		v = 11
	case "Q":
		v = 12
	case "K":
		v = 13
	default:
		var err error
		v, err = strconv.Atoi(rs)
		if err != nil {
			return NoCard, fmt.Errorf("unknown rank in card %q", s)
		}
	}
	rank, err := NewRank(v)
	if err != nil {
		return NoCard, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Deck returns the 52 cards in canonical order: hearts, clubs, diamonds
// and spades, each from ace to king.
func Deck() []Card {
	d := make([]Card, 0, 52)
	for _, s := range []Suit{Hearts, Clubs, Diamonds, Spades} {
		for r := Ace; r <= King; r++ {
			d = append(d, Card{Suit: s, Rank: r})
		}
	}
	return d
}

// CardView is a card as seen by a player: either face up with its
// identity, or face down with no identity at all.
type CardView struct {
	card   Card
	faceUp bool
}

// FaceUp returns a visible view of c.
func FaceUp(c Card) CardView { return CardView{card: c, faceUp: true} }

// FaceDown returns the opaque face-down marker.
func FaceDown() CardView { return CardView{} }

func (v CardView) IsFaceUp() bool { return v.faceUp }

// Card returns the identity of a face-up card, and NoCard for a face-down one.
func (v CardView) Card() Card { return v.card }

func (v CardView) String() string {
	if !v.faceUp {
		return "##"
	}
	return v.card.String()
}

// Compare orders views: face-down before face-up, then by card.
func (v CardView) Compare(o CardView) int {
	if v.faceUp != o.faceUp {
		if v.faceUp {
			return 1
		}
		return -1
	}
	return v.card.Compare(o.card)
}
