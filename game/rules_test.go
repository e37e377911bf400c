package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/pile"
)

// A small table:
//
//	waste: 5H 2C      F1: AC
//	D1: ## KH         D2: QC         D3: ##
//	D4: (empty)       D5: 8D 7S      D6: 9C      D7: QD
func ruleLayout() Layout {
	return Layout{
		Waste: []cards.Card{card(cards.Hearts, 5), card(cards.Clubs, 2)},
		Foundations: [pile.NumFoundations][]cards.Card{
			{card(cards.Clubs, cards.Ace)},
		},
		Depots: [pile.NumDepots][]PlacedCard{
			{Down(card(cards.Spades, 9)), Up(card(cards.Hearts, cards.King))},
			{Up(card(cards.Clubs, cards.Queen))},
			{Down(card(cards.Diamonds, 3))},
			nil,
			{Up(card(cards.Diamonds, 8)), Up(card(cards.Spades, 7))},
			{Up(card(cards.Clubs, 9))},
			{Up(card(cards.Diamonds, cards.Queen))},
		},
	}
}

func TestMoveLegality(t *testing.T) {
	type tc struct {
		name  string
		m     move.Move
		err   error
		score int
	}
	tr := move.NewTransferMove
	for _, c := range []tc{
		{"waste to foundation", tr(pile.Waste, pile.Foundation1, 1), nil, 10},
		{"non-ace to empty foundation", tr(pile.Waste, pile.Foundation2, 1), IllegalMove, 0},
		{"two from the waste", tr(pile.Waste, pile.Depot1, 2), IllegalMove, 0},
		{"queen on king", tr(pile.Depot2, pile.Depot1, 1), nil, 0},
		{"red queen on red king", tr(pile.Depot7, pile.Depot1, 1), IllegalMove, 0},
		{"run of two", tr(pile.Depot5, pile.Depot6, 2), nil, 0},
		{"wrong base of run", tr(pile.Depot5, pile.Depot6, 1), IllegalMove, 0},
		{"run too long", tr(pile.Depot5, pile.Depot6, 3), IllegalMove, 0},
		{"face down run", tr(pile.Depot3, pile.Depot1, 1), IllegalMove, 0},
		{"queen to empty depot", tr(pile.Depot2, pile.Depot4, 1), IllegalMove, 0},
		{"king to empty depot", tr(pile.Depot1, pile.Depot4, 1), nil, 0},
		{"onto face down card", tr(pile.Depot2, pile.Depot3, 1), IllegalMove, 0},
		{"from empty depot", tr(pile.Depot4, pile.Depot1, 1), ErrNoCardToMove, 0},
		{"to the waste", tr(pile.Depot2, pile.Waste, 1), IllegalMove, 0},
		{"onto itself", tr(pile.Depot2, pile.Depot2, 1), IllegalMove, 0},
		{"zero cards", tr(pile.Depot2, pile.Depot1, 0), IllegalMove, 0},
		{"king to empty foundation", tr(pile.Depot1, pile.Foundation2, 1), IllegalMove, 0},
		{"face down to foundation", tr(pile.Depot3, pile.Foundation2, 1), IllegalMove, 0},
		{"empty foundation to depot", tr(pile.Foundation3, pile.Depot1, 1), ErrNoCardToMove, 0},
		{"two to a foundation", tr(pile.Depot5, pile.Foundation2, 2), IllegalMove, 0},
		{"reveal", move.NewRevealMove(pile.Depot3), nil, 5},
		{"reveal face up card", move.NewRevealMove(pile.Depot1), ErrUnspecified, 0},
		{"reveal empty depot", move.NewRevealMove(pile.Depot4), ErrNoCardToMove, 0},
		{"reveal a foundation", move.NewRevealMove(pile.Foundation1), IllegalMove, 0},
		{"take from empty talon", move.NewTakeMove(), ErrUnspecified, 0},
		{"turnover", move.NewTurnoverMove(), nil, 0},
		{"quit", move.NewQuitMove(), nil, 0},
	} {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewFromLayout(ruleLayout())
			require.NoError(t, err)
			before := snapshot(g)
			_, err = g.Act(c.m)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				assert.Equal(t, before, snapshot(g))
				return
			}
			require.NoError(t, err)
			assert.NoError(t, g.checkStructure())
			assert.Equal(t, c.score, g.Score())
			assert.Equal(t, 1, g.Turn())
		})
	}
}

func TestTransferRunKeepsOrder(t *testing.T) {
	g, err := NewFromLayout(ruleLayout())
	require.NoError(t, err)
	_, err = g.Act(move.NewTransferMove(pile.Depot5, pile.Depot6, 2))
	require.NoError(t, err)
	assert.Empty(t, g.depots[4])
	assert.Equal(t, []PlacedCard{
		Up(card(cards.Clubs, 9)),
		Up(card(cards.Diamonds, 8)),
		Up(card(cards.Spades, 7)),
	}, g.depots[5])
}

func TestWasteToDepotScores(t *testing.T) {
	g, err := NewFromLayout(Layout{
		Waste: []cards.Card{card(cards.Hearts, cards.Queen)},
		Depots: [pile.NumDepots][]PlacedCard{
			{Up(card(cards.Spades, cards.King))},
		},
	})
	require.NoError(t, err)
	_, err = g.Act(move.NewTransferMove(pile.Waste, pile.Depot1, 1))
	require.NoError(t, err)
	assert.Equal(t, ScoreWasteToDepot, g.Score())
	assert.Empty(t, g.waste)
}

func TestMoveErrorKinds(t *testing.T) {
	err := illegal("cannot do %s", "that")
	assert.ErrorIs(t, err, IllegalMove)
	assert.NotErrorIs(t, err, ErrUnspecified)
	assert.NotErrorIs(t, err, ErrGameOver)
	assert.Equal(t, "illegal move: cannot do that", err.Error())
	assert.NotErrorIs(t, ErrNoCardToMove, IllegalMove)
	assert.ErrorIs(t, ErrGameOver, IllegalMove)
}
