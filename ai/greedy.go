package ai

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/solitaire/move"
	"github.com/domino14/solitaire/view"
)

// Priorities for the greedy planner. Higher is tried first.
const (
	PriorityFoundation        = 10
	PriorityReveal            = 5
	PriorityColumn            = 0
	PriorityFoundationToDepot = -15
	PriorityWasteToFoundation = 10
	PriorityWasteToDepot      = 5
	PriorityTake              = 0
	PriorityTurnover          = -100
	PriorityQuit              = -200
)

// GreedyPlanner prefers whatever move scores the most right now. It only
// turns the waste over when nothing else is left, and quits after that.
type GreedyPlanner struct {
	memory
}

func NewGreedyPlanner(obs view.Observer) *GreedyPlanner {
	return &GreedyPlanner{memory: newMemory(GreedyPlannerName, obs)}
}

type prioritizedMove struct {
	m        move.Move
	priority int
}

// priority ranks a candidate. Transfers to a foundation are foundation
// builds; every other transfer builds a column.
func priority(m move.Move) int {
	switch m.Action() {
	case move.MoveTypeReveal:
		return PriorityReveal
	case move.MoveTypeTake:
		return PriorityTake
	case move.MoveTypeTurnover:
		return PriorityTurnover
	case move.MoveTypeQuit:
		return PriorityQuit
	}
	from, to := m.From(), m.To()
	switch {
	case from.IsWaste() && to.IsFoundation():
		return PriorityWasteToFoundation
	case to.IsFoundation():
		return PriorityFoundation
	case from.IsFoundation() && to.IsDepot():
		return PriorityFoundationToDepot
	case from.IsWaste() && to.IsDepot():
		return PriorityWasteToDepot
	}
	return PriorityColumn
}

// rankedCandidates orders the candidates by descending priority. Equal
// priorities keep the order in which they were generated.
func (p *GreedyPlanner) rankedCandidates() []move.Move {
	pms := lo.Map(candidates(&p.obs, nil), func(m move.Move, _ int) prioritizedMove {
		return prioritizedMove{m: m, priority: priority(m)}
	})
	sort.SliceStable(pms, func(i, j int) bool {
		return pms[i].priority > pms[j].priority
	})
	return lo.Map(pms, func(pm prioritizedMove, _ int) move.Move { return pm.m })
}

func (p *GreedyPlanner) MakeMove() (move.Move, error) {
	return p.choose(p.rankedCandidates())
}
