package game

import "fmt"

// MoveErrorKind distinguishes the ways a move can be rejected.
type MoveErrorKind uint8

const (
	// MoveErrorDescribed is a broken rule, with some textual explanation.
	MoveErrorDescribed MoveErrorKind = iota
	// MoveErrorNoCard means there was no card where one was needed.
	MoveErrorNoCard
	// MoveErrorUnspecified is the catch-all kind.
	MoveErrorUnspecified
)

// MoveError is returned by Act when a move is rejected. A rejected move
// never changes the game.
type MoveError struct {
	Kind        MoveErrorKind
	Description string
}

var (
	ErrNoCardToMove = &MoveError{Kind: MoveErrorNoCard}
	ErrUnspecified  = &MoveError{Kind: MoveErrorUnspecified}
	ErrGameOver     = &MoveError{Kind: MoveErrorDescribed, Description: "game is over"}
)

func (e *MoveError) Error() string {
	switch e.Kind {
	case MoveErrorNoCard:
		return "found no card to move"
	case MoveErrorUnspecified:
		return "unspecified move error"
	}
	return "illegal move: " + e.Description
}

// Is matches errors of the same kind. A target with a description only
// matches that exact description.
func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Description == "" || t.Description == e.Description
}

// IllegalMove matches any MoveErrorDescribed error through errors.Is.
var IllegalMove = &MoveError{Kind: MoveErrorDescribed}

func illegal(format string, args ...any) error {
	return &MoveError{Kind: MoveErrorDescribed, Description: fmt.Sprintf(format, args...)}
}
