package game

import (
	"fmt"
	"strings"

	"github.com/domino14/solitaire/pile"
)

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Talon: %d cards   Score: %d   State: %v   Turn: %d\n",
		len(g.talon), g.score, g.playing, g.turnnum)

	fmt.Fprintf(&sb, "Waste (%d cards)", len(g.waste))
	if len(g.waste) > 0 {
		fmt.Fprintf(&sb, " top: %v", g.waste[len(g.waste)-1])
	}
	sb.WriteString("\n")

	sb.WriteString("Foundations:")
	for i, f := range g.foundations {
		fmt.Fprintf(&sb, "  %v ", pile.Foundations[i])
		if len(f) == 0 {
			sb.WriteString("[]")
		} else {
			fmt.Fprintf(&sb, "%v", f[len(f)-1])
		}
	}
	sb.WriteString("\n\n")

	for i, d := range g.depots {
		fmt.Fprintf(&sb, "%v:", pile.Depots[i])
		for _, c := range d {
			sb.WriteString(" ")
			sb.WriteString(c.view().String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
