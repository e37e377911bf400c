package move

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/solitaire/pile"
)

// MoveType is a type of move; a take, a transfer between piles, etc.
type MoveType uint8

const (
	// MoveTypeTake takes the top card of the talon and places it face up
	// on the waste.
	MoveTypeTake MoveType = iota
	// MoveTypeTransfer moves cards from one pile to another. Only
	// depot-to-depot transfers may move more than one card.
	MoveTypeTransfer
	// MoveTypeTurnover turns the waste over to form a new talon.
	MoveTypeTurnover
	// MoveTypeReveal flips the face-down top card of a depot.
	MoveTypeReveal
	// MoveTypeQuit stops playing the game.
	MoveTypeQuit
)

// Move is a single action submitted to the game engine. It is a small
// comparable value, so it can be used as a map key.
type Move struct {
	action MoveType
	from   pile.Addr
	to     pile.Addr
	n      int
}

func NewTakeMove() Move     { return Move{action: MoveTypeTake} }
func NewTurnoverMove() Move { return Move{action: MoveTypeTurnover} }
func NewQuitMove() Move     { return Move{action: MoveTypeQuit} }

// NewRevealMove reveals the top card of the pile at addr.
func NewRevealMove(addr pile.Addr) Move {
	return Move{action: MoveTypeReveal, from: addr}
}

// NewTransferMove moves the top n cards of from onto to.
func NewTransferMove(from, to pile.Addr, n int) Move {
	return Move{action: MoveTypeTransfer, from: from, to: to, n: n}
}

func (m Move) Action() MoveType { return m.action }

// From is the source pile of a transfer, or the revealed pile.
func (m Move) From() pile.Addr { return m.from }

// To is the destination pile of a transfer.
func (m Move) To() pile.Addr { return m.to }

// N is the number of cards moved by a transfer.
func (m Move) N() int { return m.n }

func (t MoveType) String() string {
	switch t {
	case MoveTypeTake:
		return "Take"
	case MoveTypeTransfer:
		return "Transfer"
	case MoveTypeTurnover:
		return "Turnover"
	case MoveTypeReveal:
		return "Reveal"
	case MoveTypeQuit:
		return "Quit"
	}
	return "UNHANDLED"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m Move) ShortDescription() string {
	switch m.action {
	case MoveTypeTransfer:
		return fmt.Sprintf("%v->%v x%d", m.from, m.to, m.n)
	case MoveTypeReveal:
		return fmt.Sprintf("reveal %v", m.from)
	case MoveTypeTake:
		return "(take)"
	case MoveTypeTurnover:
		return "(turnover)"
	case MoveTypeQuit:
		return "(quit)"
	}
	return "UNHANDLED"
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	return fmt.Sprintf("<action: %v %v>", m.action, m.ShortDescription())
}

var errMoveSyntax = errors.New("moves look like: take | turnover | quit | reveal <pile> | move <from> <to> [n]")

// Parse builds a move from shell-style fields, e.g.
// ["move", "W", "D3"] or ["reveal", "d2"].
func Parse(fields []string) (Move, error) {
	if len(fields) == 0 {
		return Move{}, errMoveSyntax
	}
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "take", "t":
		return NewTakeMove(), nil
	case "turnover", "turn", "to":
		return NewTurnoverMove(), nil
	case "quit", "q":
		return NewQuitMove(), nil
	case "reveal", "r":
		if len(args) != 1 {
			return Move{}, errMoveSyntax
		}
		addr, err := pile.Parse(args[0])
		if err != nil {
			return Move{}, err
		}
		return NewRevealMove(addr), nil
	case "move", "mv", "m":
		if len(args) != 2 && len(args) != 3 {
			return Move{}, errMoveSyntax
		}
		from, err := pile.Parse(args[0])
		if err != nil {
			return Move{}, err
		}
		to, err := pile.Parse(args[1])
		if err != nil {
			return Move{}, err
		}
		n := 1
		if len(args) == 3 {
			n, err = strconv.Atoi(args[2])
			if err != nil {
				return Move{}, fmt.Errorf("bad card count %q: %w", args[2], err)
			}
		}
		return NewTransferMove(from, to, n), nil
	}
	return Move{}, errMoveSyntax
}
