package ai

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/view"
)

type seenKey struct {
	view string
	m    move.Move
}

// memory is shared by the planners. It owns the tracked view, every
// (view, move) pair handed out so far, and the number of talon passes.
type memory struct {
	name   string
	obs    view.Observer
	seen   map[seenKey]struct{}
	passes int
}

func newMemory(name string, obs view.Observer) memory {
	return memory{
		name: name,
		obs:  obs.Clone(),
		seen: make(map[seenKey]struct{}),
	}
}

func (mem *memory) Name() string { return mem.name }

// View returns a copy of the tracked view.
func (mem *memory) View() view.Observer { return mem.obs.Clone() }

// Passes is the number of turnovers suggested so far.
func (mem *memory) Passes() int { return mem.passes }

func (mem *memory) Update(m move.Move, disclosed cards.Card) error {
	return mem.obs.Update(m, disclosed)
}

// choose returns the first candidate not yet tried from the current view
// and records it.
func (mem *memory) choose(candidates []move.Move) (move.Move, error) {
	key := mem.obs.Key()
	for _, m := range candidates {
		k := seenKey{view: key, m: m}
		if _, ok := mem.seen[k]; ok {
			continue
		}
		mem.seen[k] = struct{}{}
		if m.Action() == move.MoveTypeTurnover {
			mem.passes++
		}
		log.Debug().Str("planner", mem.name).Uint64("view", mem.obs.Hash()).
			Int("candidates", len(candidates)).Str("move", m.ShortDescription()).
			Msg("chose-move")
		return m, nil
	}
	log.Debug().Str("planner", mem.name).Uint64("view", mem.obs.Hash()).
		Int("candidates", len(candidates)).Msg("candidates-exhausted")
	return move.Move{}, ErrNoMoveFound
}
