// Package ai holds the planners that play solitaire from a partial view of
// the game. Planners never see the engine; they track their own view and
// are told what each accepted move disclosed.
package ai

import (
	"errors"
	"fmt"
	"slices"

	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/view"
)

// ErrNoMoveFound means every candidate for the current view was already
// tried. No further progress is possible.
var ErrNoMoveFound = errors.New("no untried move found")

// Planner chooses moves for one game.
type Planner interface {
	// MakeMove suggests the next move for the tracked view. A move is never
	// suggested twice for the same view.
	MakeMove() (move.Move, error)
	// Name is used for reporting.
	Name() string
	// Update advances the tracked view by a move the engine accepted and
	// the card it disclosed, if any.
	Update(m move.Move, disclosed cards.Card) error
}

const (
	GreedyPlannerName = "greedy"
	SimplePlannerName = "simple"
)

var planners = map[string]func(view.Observer) Planner{
	GreedyPlannerName: func(o view.Observer) Planner { return NewGreedyPlanner(o) },
	SimplePlannerName: func(o view.Observer) Planner { return NewSimplePlanner(o) },
}

// New creates the named planner, starting from the given view.
func New(name string, obs view.Observer) (Planner, error) {
	f, ok := planners[name]
	if !ok {
		return nil, fmt.Errorf("unknown planner %q (have %v)", name, Names())
	}
	return f(obs), nil
}

// Names lists the registered planners in sorted order.
func Names() []string {
	names := make([]string, 0, len(planners))
	for n := range planners {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
