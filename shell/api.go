package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/solitaire/ai"
	"github.com/domino14/solitaire/cards"
	"github.com/domino14/solitaire/config"
	"github.com/domino14/solitaire/game"
	"github.com/domino14/solitaire/move"
)

func (sc *ShellController) standardModeSwitch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "exit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "deal", "new":
		return sc.deal(cmd)
	case "show":
		return sc.show(cmd)
	case "view":
		return sc.view(cmd)
	case "score":
		return sc.score(cmd)
	case "planner":
		return sc.setPlanner(cmd)
	case "next", "n":
		return sc.next(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	}
	m, err := move.Parse(append([]string{cmd.cmd}, cmd.args...))
	if err != nil {
		return nil, fmt.Errorf("%w; type help for the list of commands", err)
	}
	return sc.play(m)
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		return msg(usageTopic(cmd.args[0])), nil
	}
	return msg(usage), nil
}

func (sc *ShellController) deal(cmd *shellcmd) (*Response, error) {
	seed := frand.Uint64n(1 << 53)
	if len(cmd.args) > 0 {
		var err error
		seed, err = strconv.ParseUint(cmd.args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q: %w", cmd.args[0], err)
		}
	}
	sc.seed = seed
	sc.game = game.Deal(seed)
	if err := sc.resetPlanner(); err != nil {
		return nil, err
	}
	log.Debug().Uint64("seed", seed).Str("planner", sc.plannerName).Msg("shell-deal")
	return msg(fmt.Sprintf("Dealt game %d\n\n%s", seed, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) resetPlanner() error {
	p, err := ai.New(sc.plannerName, sc.game.Observe())
	if err != nil {
		return err
	}
	sc.planner = p
	return nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

// view prints what the planners get to see.
func (sc *ShellController) view(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	o := sc.game.Observe()
	var sb strings.Builder
	fmt.Fprintf(&sb, "talon: %d\nwaste: %v\nfoundations: %v\n", o.TalonSize, o.Waste, o.FoundationTops)
	for i, d := range o.Depots {
		fmt.Fprintf(&sb, "D%d: %v\n", i+1, d)
	}
	fmt.Fprintf(&sb, "hash: %016x", o.Hash())
	return msg(sb.String()), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(fmt.Sprintf("Score: %d (%v, %d moves)", sc.game.Score(), sc.game.Playing(), sc.game.Turn())), nil
}

func (sc *ShellController) setPlanner(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("planner: %s (available: %v)", sc.plannerName, ai.Names())), nil
	}
	name := cmd.args[0]
	if !lo.Contains(ai.Names(), name) {
		return nil, fmt.Errorf("unknown planner %q (have %v)", name, ai.Names())
	}
	sc.plannerName = name
	if sc.game != nil {
		if err := sc.resetPlanner(); err != nil {
			return nil, err
		}
	}
	return msg("planner set to " + name), nil
}

// play submits a move and keeps the planner's view in step with it.
func (sc *ShellController) play(m move.Move) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	disclosed, err := sc.game.Act(m)
	if err != nil {
		return nil, err
	}
	if err := sc.planner.Update(m, disclosed); err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(m.ShortDescription())
	if disclosed != cards.NoCard {
		fmt.Fprintf(&sb, ": %v", disclosed)
	}
	sb.WriteString("\n\n")
	sb.WriteString(sc.game.ToDisplayText())
	if !sc.game.IsRunning() {
		fmt.Fprintf(&sb, "\nGame over: %v with score %d", sc.game.Playing(), sc.game.Score())
	}
	return msg(sb.String()), nil
}

// plannerMove asks the planner until the game accepts a move.
func (sc *ShellController) plannerMove() (move.Move, cards.Card, error) {
	for {
		m, err := sc.planner.MakeMove()
		if err != nil {
			return m, cards.NoCard, err
		}
		disclosed, err := sc.game.Act(m)
		if errors.Is(err, game.ErrGameOver) {
			return m, cards.NoCard, err
		}
		if err != nil {
			log.Debug().Err(err).Str("move", m.ShortDescription()).Msg("planner-move-rejected")
			continue
		}
		return m, disclosed, sc.planner.Update(m, disclosed)
	}
}

func (sc *ShellController) next(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if !sc.game.IsRunning() {
		return nil, game.ErrGameOver
	}
	m, disclosed, err := sc.plannerMove()
	if err != nil {
		return nil, err
	}
	s := fmt.Sprintf("%s played %s", sc.planner.Name(), m.ShortDescription())
	if disclosed != cards.NoCard {
		s += fmt.Sprintf(": %v", disclosed)
	}
	return msg(s + "\n\n" + sc.game.ToDisplayText()), nil
}

// autoplay lets the planner finish the game, up to -max moves.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	limit := sc.config.GetInt(config.ConfigMaxMoves)
	if v, ok := cmd.options["max"]; ok {
		var err error
		if limit, err = strconv.Atoi(v); err != nil {
			return nil, err
		}
	}
	n := 0
	for sc.game.IsRunning() && (limit <= 0 || n < limit) {
		if _, _, err := sc.plannerMove(); err != nil {
			return nil, err
		}
		n++
	}
	return msg(fmt.Sprintf("%s played %d moves\n\n%s\nScore: %d (%v)",
		sc.planner.Name(), n, sc.game.ToDisplayText(), sc.game.Score(), sc.game.Playing())), nil
}
