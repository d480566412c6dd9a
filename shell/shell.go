// Package shell runs the interactive console game: a human against the
// search engine, alternating turns until no open cells remain. The engine's
// moves come from the explored tree where possible; when play walks off the
// explored frontier, the shell issues a fresh search from the current
// position.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/obviate/obstruction/config"
	"github.com/obviate/obstruction/game"
	"github.com/obviate/obstruction/minimax"
	"github.com/obviate/obstruction/move"
	"github.com/obviate/obstruction/results"
)

// searchFunc is one of the solver's two entry points.
type searchFunc func(*game.Position, int) (*game.Node, int, error)

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	readLine func() (string, error)

	solver    *minimax.Solver
	search    searchFunc
	algorithm string
	depth     int
	aiFirst   bool
	size      config.BoardSize
	sink      *results.Writer
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	size, err := cfg.BoardSize()
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "Enter your move in the format row/column: ",
		HistoryFile:     "/tmp/obstruction-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}

	solver := &minimax.Solver{}
	search := solver.MinimaxWithPruning
	if cfg.Algorithm == config.AlgMinimax {
		search = solver.Minimax
	}

	return &ShellController{
		l:         l,
		out:       os.Stdout,
		readLine:  l.Readline,
		solver:    solver,
		search:    search,
		algorithm: cfg.Algorithm,
		depth:     cfg.Depth,
		aiFirst:   cfg.AIPlayer == 1,
		size:      size,
		sink:      results.NewWriter(cfg.ResultsPath),
	}, nil
}

func (sc *ShellController) Close() error {
	if sc.l != nil {
		return sc.l.Close()
	}
	return nil
}

// Play runs one full game. The very first search's statistics are appended
// through the results sink; later re-searches are not recorded.
func (sc *ShellController) Play() error {
	start, err := game.New(sc.size.Width, sc.size.Height)
	if err != nil {
		return err
	}

	log.Debug().
		Str("algorithm", sc.algorithm).
		Int("depth", sc.depth).
		Bool("ai-first", sc.aiFirst).
		Str("size", sc.size.String()).
		Msg("game-start")

	node, expanded, err := sc.search(start, sc.depth)
	if err != nil {
		return err
	}

	rec := results.Record{
		Width:     sc.size.Width,
		Height:    sc.size.Height,
		Algorithm: sc.algorithm,
		Expanded:  expanded,
		Depth:     sc.depth,
	}
	if err := sc.sink.Append(rec); err != nil {
		log.Err(err).Str("path", sc.sink.Path()).Msg("could-not-record-results")
		showMessage(fmt.Sprintf(
			"The results could not be written to %q. Make sure the program is run with sufficient permissions.",
			sc.sink.Path()), sc.out)
	}

	return sc.play(node)
}

func (sc *ShellController) play(node *game.Node) error {
	aiTurn := sc.aiFirst
	aiLabel, humanLabel := "Player 1: AI", "Player 2: Human"
	if !sc.aiFirst {
		aiLabel, humanLabel = "Player 2: AI", "Player 1: Human"
	}

	showMessage("Board:", sc.out)
	showMessage(node.Position().String()+"\n", sc.out)

	var err error
	for !node.Position().Done() {
		if aiTurn {
			showMessage(aiLabel, sc.out)
			node, err = sc.aiMove(node)
		} else {
			showMessage(humanLabel, sc.out)
			node, err = sc.humanMove(node)
		}
		if err != nil {
			return err
		}
		sc.showMove(node, aiTurn)
		aiTurn = !aiTurn
	}

	winner, _ := node.Position().Winner()
	name := "AI"
	if aiTurn {
		// The flag has flipped past the last mover.
		name = "Human"
	}
	showMessage("Game complete.", sc.out)
	showMessage(fmt.Sprintf("Winner: %s (%s)", name, winner), sc.out)
	return nil
}

// aiMove follows the search-preferred child, re-searching from the current
// position when the tree ends here: a depth cutoff, or a choice that pruning
// left unreliable. The loop guarantees the position is not terminal, so the
// fresh search always yields a choice.
func (sc *ShellController) aiMove(node *game.Node) (*game.Node, error) {
	if chosen := node.Position().ChosenChild(); chosen != nil {
		return chosen, nil
	}
	fresh, _, err := sc.search(node.Position(), sc.depth)
	if err != nil {
		return nil, err
	}
	chosen := fresh.Position().ChosenChild()
	if chosen == nil {
		return nil, errors.New("search produced no move for a position still in play")
	}
	return chosen, nil
}

// humanMove prompts until the human enters a legal placement, then descends
// into the matching explored child, or starts a fresh one-node tree when the
// successor was never generated.
func (sc *ShellController) humanMove(node *game.Node) (*game.Node, error) {
	pos := node.Position()
	for {
		line, err := sc.readLine()
		if err != nil {
			return nil, err
		}
		m, err := move.Parse(line)
		if err != nil {
			showMessage("Row and column values must be integers, in the format row/column.", sc.out)
			continue
		}
		if m.Row < 0 || m.Row >= pos.Height() {
			showMessage(fmt.Sprintf("Rows must be in [0, %d]", pos.Height()-1), sc.out)
			continue
		}
		if m.Col < 0 || m.Col >= pos.Width() {
			showMessage(fmt.Sprintf("Columns must be in [0, %d]", pos.Width()-1), sc.out)
			continue
		}
		succ, ok := pos.Place(m.Row, m.Col)
		if !ok {
			showMessage("Only open squares can be played.", sc.out)
			continue
		}
		if child := node.FindChild(succ); child != nil {
			return child, nil
		}
		return game.NewNode(succ), nil
	}
}

func (sc *ShellController) showMove(node *game.Node, aiTurn bool) {
	mover := "Human"
	if aiTurn {
		mover = "AI"
	}
	showMessage(node.Position().String(), sc.out)
	if m, ok := node.Position().LastMove(); ok {
		showMessage(fmt.Sprintf("%s move: %s\n", mover, m), sc.out)
	}
}
