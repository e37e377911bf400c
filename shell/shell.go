package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/solitaire/ai"
	"github.com/domino14/solitaire/config"
	"github.com/domino14/solitaire/game"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("please deal a game first with the `deal` command")
	errExit              = errors.New("exit")
)

// ShellController drives one game at a time from a readline prompt.
type ShellController struct {
	l   *readline.Instance
	out io.Writer

	config      *config.Config
	game        *game.Game
	seed        uint64
	plannerName string
	planner     ai.Planner
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32msolitaire>\033[0m ",
		HistoryFile:     "/tmp/solitaire_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newShellController(cfg, l.Stdout())
	sc.l = l
	return sc
}

func newShellController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{
		out:         out,
		config:      cfg,
		plannerName: ai.GreedyPlannerName,
	}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its arguments, and -key value
// options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: map[string]string{}}
	for i := 1; i < len(fields); i++ {
		if isOption(fields[i]) {
			if i+1 == len(fields) {
				return nil, errWrongOptionSyntax
			}
			cmd.options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		cmd.args = append(cmd.args, fields[i])
	}
	return cmd, nil
}

// isOption matches -name, but not negative numbers.
func isOption(s string) bool {
	return len(s) > 1 && s[0] == '-' && unicode.IsLetter(rune(s[1]))
}

// Execute runs a single line and prints its response.
func (sc *ShellController) Execute(line string) error {
	cmd, err := extractFields(strings.TrimSpace(line))
	if err == errNoData {
		return nil
	}
	if err != nil {
		sc.showError(err)
		return nil
	}
	resp, err := sc.standardModeSwitch(cmd)
	if err == errExit {
		return err
	}
	if err != nil {
		sc.showError(err)
		return nil
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.Execute(line); err == errExit {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
