package view

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/domino14/solitaire/cards"
)

// Separators never collide with encoded cards: a card encodes as a suit
// byte in 1..4 (0 for face down) followed by a rank byte in 0..13.
const (
	sepSection = 0xFF
	sepPile    = 0xFE
)

func appendCard(b []byte, v cards.CardView) []byte {
	if !v.IsFaceUp() {
		return append(b, 0, 0)
	}
	c := v.Card()
	return append(b, byte(c.Suit)+1, byte(c.Rank))
}

// Key is a canonical encoding of the observer. Two observers that differ
// only by which depot holds which column, or which foundation holds which
// suit, have the same key. The order of cards inside a single depot and
// inside the waste is preserved.
func (o *Observer) Key() string {
	var b []byte
	b = binary.AppendUvarint(b, uint64(o.TalonSize))
	b = append(b, sepSection)
	for _, c := range o.Waste {
		b = appendCard(b, cards.FaceUp(c))
	}
	b = append(b, sepSection)

	tops := o.FoundationTops
	slices.SortFunc(tops[:], cards.Card.Compare)
	for _, c := range tops {
		if c.IsZero() {
			b = append(b, 0, 0)
		} else {
			b = appendCard(b, cards.FaceUp(c))
		}
	}
	b = append(b, sepSection)

	cols := make([]string, len(o.Depots))
	for i, d := range o.Depots {
		var cb []byte
		for _, v := range d {
			cb = appendCard(cb, v)
		}
		cols[i] = string(cb)
	}
	slices.Sort(cols)
	b = append(b, strings.Join(cols, string([]byte{sepPile}))...)
	return string(b)
}

// Equal compares two observers by their canonical keys.
func (o *Observer) Equal(other *Observer) bool {
	return o.Key() == other.Key()
}

// Hash is a 64-bit digest of Key, handy for logging.
func (o *Observer) Hash() uint64 {
	return xxhash.Sum64String(o.Key())
}
