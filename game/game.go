// Package game encapsulates the rules of Klondike solitaire. A Game owns
// every pile on the table, validates and applies moves, keeps the score,
// and hands out partial views of itself.
// Note: a Game doesn't care how it is played. Planners, human players, etc.
// play a game outside of the scope of this package.
package game

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/pile"
	"github.com/domino14/solitaire/view"
)

const (
	DeckSize       = 52
	FoundationSize = 13
)

// PlayState says whether the game is still going, and if not, how it ended.
type PlayState uint8

const (
	PlayStatePlaying PlayState = iota
	PlayStateWon
	PlayStateLost
)

func (p PlayState) String() string {
	switch p {
	case PlayStatePlaying:
		return "playing"
	case PlayStateWon:
		return "won"
	case PlayStateLost:
		return "lost"
	}
	return "unknown"
}

// PlacedCard is a card on the table together with which way up it lies.
type PlacedCard struct {
	Card   cards.Card
	FaceUp bool
}

func Up(c cards.Card) PlacedCard   { return PlacedCard{Card: c, FaceUp: true} }
func Down(c cards.Card) PlacedCard { return PlacedCard{Card: c} }

func (p PlacedCard) view() cards.CardView {
	if p.FaceUp {
		return cards.FaceUp(p.Card)
	}
	return cards.FaceDown()
}

// Game is the authoritative game state.
//
// Invariant: between calls the game is always valid, meaning
//   - all 52 cards are on the table exactly once
//   - the talon is face down and the waste is face up
//   - face up cards in the depots alternate colours and decrease by one
//   - each foundation is an ascending run of one suit starting at the ace
type Game struct {
	// talon is face down; the last card is the next one drawn.
	talon []cards.Card
	// waste is face up; the last card is the playable one.
	waste       []cards.Card
	foundations [pile.NumFoundations][]cards.Card
	// depots: the last card of each is the accessible one.
	depots [pile.NumDepots][]PlacedCard

	playing PlayState
	score   int
	turnnum int
}

// shuffledDeck returns the 52 cards shuffled by a ChaCha generator that is
// seeded only from seed.
func shuffledDeck(seed uint64) []cards.Card {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:8], seed)
	rng := frand.NewCustom(s[:], 1024, 12)
	d := cards.Deck()
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
	return d
}

// Deal deals a new game. The same seed always deals the same game.
func Deal(seed uint64) *Game {
	pack := shuffledDeck(seed)
	g := &Game{}
	idx := 0
	for i := range pile.NumDepots {
		depot := make([]PlacedCard, 0, i+1)
		for range i {
			depot = append(depot, Down(pack[idx]))
			idx++
		}
		depot = append(depot, Up(pack[idx]))
		idx++
		g.depots[i] = depot
	}
	g.talon = append([]cards.Card(nil), pack[idx:]...)
	log.Debug().Uint64("seed", seed).Int("talon", len(g.talon)).Msg("dealt-game")
	return g
}

// Layout describes a table explicitly. The talon is face down with its
// last card drawn first; waste and foundation cards are face up.
type Layout struct {
	Talon       []cards.Card
	Waste       []cards.Card
	Foundations [pile.NumFoundations][]cards.Card
	Depots      [pile.NumDepots][]PlacedCard
	Score       int
}

// NewFromLayout sets up a running game from an explicit table. The table
// may hold fewer than 52 cards, but every other invariant must hold.
func NewFromLayout(l Layout) (*Game, error) {
	if l.Score < 0 {
		return nil, fmt.Errorf("negative score %d", l.Score)
	}
	g := &Game{
		talon: append([]cards.Card(nil), l.Talon...),
		waste: append([]cards.Card(nil), l.Waste...),
		score: l.Score,
	}
	for i := range l.Foundations {
		g.foundations[i] = append([]cards.Card(nil), l.Foundations[i]...)
	}
	for i := range l.Depots {
		g.depots[i] = append([]PlacedCard(nil), l.Depots[i]...)
	}
	if err := g.checkStructure(); err != nil {
		return nil, err
	}
	if g.foundationsComplete() {
		g.playing = PlayStateWon
	}
	return g, nil
}

func (g *Game) Score() int { return g.score }

// Playing returns the current play state.
func (g *Game) Playing() PlayState { return g.playing }

// IsRunning is true while moves can still be made.
func (g *Game) IsRunning() bool { return g.playing == PlayStatePlaying }

// IsWon is true once all four foundations are complete.
func (g *Game) IsWon() bool { return g.playing == PlayStateWon }

func (g *Game) TalonLen() int { return len(g.talon) }

// Turn is the number of moves accepted so far.
func (g *Game) Turn() int { return g.turnnum }

// Observe returns the partial view of the game. It shares no memory with
// the game.
func (g *Game) Observe() view.Observer {
	o := view.Observer{
		TalonSize: len(g.talon),
		Waste:     append([]cards.Card(nil), g.waste...),
	}
	for i, f := range g.foundations {
		if len(f) > 0 {
			o.FoundationTops[i] = f[len(f)-1]
		}
	}
	for i, d := range g.depots {
		o.Depots[i] = make([]cards.CardView, len(d))
		for j, c := range d {
			o.Depots[i][j] = c.view()
		}
	}
	return o
}

// Act validates and applies a single move. For takes and reveals it
// returns the card that became visible; otherwise it returns NoCard.
// A rejected move leaves the game and the score unchanged.
func (g *Game) Act(m move.Move) (cards.Card, error) {
	if g.playing != PlayStatePlaying {
		return cards.NoCard, ErrGameOver
	}
	var disclosed cards.Card
	var err error
	switch m.Action() {
	case move.MoveTypeTake:
		disclosed, err = g.take()
	case move.MoveTypeTurnover:
		err = g.turnover()
	case move.MoveTypeReveal:
		disclosed, err = g.reveal(m.From())
	case move.MoveTypeTransfer:
		err = g.moveCards(m.From(), m.To(), m.N())
	case move.MoveTypeQuit:
		g.playing = PlayStateLost
	default:
		err = ErrUnspecified
	}
	if err != nil {
		log.Debug().Err(err).Str("move", m.ShortDescription()).Msg("move-rejected")
		return cards.NoCard, err
	}
	g.scoreMove(m)
	g.turnnum++
	return disclosed, nil
}
