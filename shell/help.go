package shell

const usage = `Commands:
  deal [seed]            deal a new game; a random seed is used if none is given
  show                   show the whole table
  view                   show what the planners see
  score                  show the score and state of the game
  take | t               take a card from the talon
  turnover | to          turn the waste over once the talon is empty
  reveal <pile>          reveal the top card of a depot, e.g. reveal D3
  move <from> <to> [n]   move n cards (default 1), e.g. move W F1, move D2 D5 3
  quit | q               give up the game
  planner [name]         show or choose the planner
  next | n               let the planner make one move
  autoplay [-max N]      let the planner play to the end
  help [topic]           show this help, or help on piles or scoring
  exit                   leave the shell`

var topics = map[string]string{
	"piles": `Piles are named W (waste), F1-F4 (foundations) and D1-D7 (depots).
Only depot to depot moves can carry more than one card.`,
	"scoring": `waste to foundation +10, depot to foundation +10, waste to depot +5,
reveal +5, foundation to depot -15, turnover -100. The score never drops below 0.`,
}

func usageTopic(topic string) string {
	if t, ok := topics[topic]; ok {
		return t
	}
	return "There is no help text for the topic " + topic
}
