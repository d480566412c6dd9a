// Package minimax implements depth-limited game-tree search over Obstruction
// positions: plain minimax, and minimax with alpha-beta pruning. The tree is
// generated while searching rather than built up front, so pruned branches
// are never instantiated at all.
package minimax

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/obviate/obstruction/game"
)

// ErrNegativeDepth is returned when a search is requested with depth < 0.
var ErrNegativeDepth = errors.New("search depth must be non-negative")

// Solver runs searches and keeps a running total of positions instantiated
// across calls, since a game typically re-searches several times as play
// advances past the explored frontier.
type Solver struct {
	totalNodes int
}

// Minimax expands pos to the given depth without pruning. It returns the
// explored tree and the number of positions instantiated, the root included.
func (s *Solver) Minimax(pos *game.Position, depth int) (*game.Node, int, error) {
	return s.search(pos, &plainParams{depth: depth}, "minimax", depth)
}

// MinimaxWithPruning expands pos to the given depth with alpha-beta pruning,
// alpha seeded at -Inf and beta at +Inf. The root utility always matches
// Minimax's; the explored tree may be smaller.
func (s *Solver) MinimaxWithPruning(pos *game.Position, depth int) (*game.Node, int, error) {
	return s.search(pos, &pruningParams{
		depth: depth,
		alpha: math.Inf(-1),
		beta:  math.Inf(1),
	}, "alphabeta", depth)
}

// TotalNodes returns the number of positions instantiated across all
// searches run through this solver.
func (s *Solver) TotalNodes() int { return s.totalNodes }

func (s *Solver) search(pos *game.Position, params searchParams, algorithm string, depth int) (*game.Node, int, error) {
	if depth < 0 {
		return nil, 0, ErrNegativeDepth
	}
	node, expanded := expand(pos, params)
	s.totalNodes += expanded
	log.Debug().
		Str("algorithm", algorithm).
		Int("depth", depth).
		Int("expanded", expanded).
		Int("total-expanded", s.totalNodes).
		Msg("search-done")
	return node, expanded, nil
}

func expand(pos *game.Position, params searchParams) (*game.Node, int) {
	node := game.NewNode(pos)
	expanded := 1
	if params.remainingDepth() == 0 || pos.Done() {
		// Leaf. Its utility resolves lazily on read, as a terminal value
		// or a depth-cutoff equity score.
		return node, expanded
	}

	// The first player maximizes and feeds new bests into alpha; the
	// second minimizes and feeds beta.
	better := math.Max
	feed := params.raiseAlpha
	running := math.Inf(-1)
	if pos.OnTurn() == game.SecondPlayer {
		better = math.Min
		feed = params.lowerBeta
		running = math.Inf(1)
	}
	pos.SetUtility(running)

	for row := 0; row < pos.Height(); row++ {
		for col := 0; col < pos.Width(); col++ {
			succ, ok := pos.Place(row, col)
			if !ok {
				// Non-open cells are simply not legal moves.
				continue
			}
			child, n := expand(succ, params.child())
			node.AppendChild(child)
			expanded += n

			best := better(pos.Utility(), succ.Utility())
			if best == pos.Utility() && pos.ChosenChild() != nil {
				continue
			}
			pos.SetChosenChild(child)
			pos.SetUtility(best)
			feed(best)
			if params.prune() {
				// Stop generating siblings entirely. A finite best found
				// this way is untrustworthy for replay, because not every
				// successor was examined; clearing the chosen child makes
				// the caller re-search from here. A proven win or loss
				// stands. At the original root this clause can only fire
				// on a proven outcome, since alpha and beta start at
				// +-Inf, so a non-terminal root always keeps its choice.
				if !math.IsInf(best, 0) {
					pos.SetChosenChild(nil)
				}
				return node, expanded
			}
		}
	}
	return node, expanded
}
