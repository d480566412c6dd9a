// Package game implements the Obstruction board position and the explorable
// game tree that search builds over it. A Position is an immutable value;
// playing a move derives a new one. The only fields written after creation
// are the utility and the chosen child, each assigned by the single search
// call that expands the position.
package game

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/obviate/obstruction/equity"
	"github.com/obviate/obstruction/move"
)

// Player identifies one of the two competitors.
type Player uint8

const (
	// FirstPlayer moves at the root and marks cells with O.
	FirstPlayer Player = iota
	// SecondPlayer marks cells with X.
	SecondPlayer
)

func (p Player) String() string {
	if p == FirstPlayer {
		return "O"
	}
	return "X"
}

func (p Player) other() Player {
	if p == FirstPlayer {
		return SecondPlayer
	}
	return FirstPlayer
}

// CellState is the state of a single cell on the board.
type CellState uint8

const (
	CellOpen CellState = iota
	CellBlocked
	CellFirst
	CellSecond
)

func (c CellState) String() string {
	switch c {
	case CellOpen:
		return "-"
	case CellBlocked:
		return "/"
	case CellFirst:
		return "O"
	case CellSecond:
		return "X"
	}
	return "?"
}

var ErrBadDimensions = errors.New("board width and height must both be at least 1")

// Position is one game state: the grid, the count of open cells, and whose
// turn it is. Equality between positions compares the grid only; see
// EqualGrid.
type Position struct {
	cells  []CellState // row-major, width*height
	width  int
	height int
	open   int
	onTurn Player

	// lastMove is the placement that produced this position from its
	// parent; hasLastMove is false for the root.
	lastMove    move.Move
	hasLastMove bool

	utility    float64
	utilitySet bool

	chosen *Node
}

// New creates a width x height board with every cell open and the first
// player on turn.
func New(width, height int) (*Position, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	return &Position{
		cells:  make([]CellState, width*height),
		width:  width,
		height: height,
		open:   width * height,
		onTurn: FirstPlayer,
	}, nil
}

// Place marks (row, col) for the player on turn, blocks every open cell in
// the surrounding 3x3 neighborhood (clipped at the edges), and returns the
// successor position with the other player on turn. It returns ok=false for
// an out-of-range coordinate or a non-open target cell; an illegal placement
// is an expected outcome, not an error, since search enumerates every
// coordinate and skips the failures. The receiver is never modified.
func (p *Position) Place(row, col int) (*Position, bool) {
	if row < 0 || row >= p.height || col < 0 || col >= p.width ||
		p.cells[row*p.width+col] != CellOpen {
		return nil, false
	}

	cells := make([]CellState, len(p.cells))
	copy(cells, p.cells)
	open := p.open

	mark := CellFirst
	if p.onTurn == SecondPlayer {
		mark = CellSecond
	}
	cells[row*p.width+col] = mark
	open--

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= p.height {
			continue
		}
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= p.width || cells[r*p.width+c] != CellOpen {
				continue
			}
			cells[r*p.width+c] = CellBlocked
			open--
		}
	}

	return &Position{
		cells:       cells,
		width:       p.width,
		height:      p.height,
		open:        open,
		onTurn:      p.onTurn.other(),
		lastMove:    move.Move{Row: row, Col: col},
		hasLastMove: true,
	}, true
}

func (p *Position) Width() int  { return p.width }
func (p *Position) Height() int { return p.height }

// OpenCount returns the number of open cells remaining.
func (p *Position) OpenCount() int { return p.open }

// OnTurn returns the player who moves next from this position.
func (p *Position) OnTurn() Player { return p.onTurn }

// CellAt returns the state of the cell at (row, col). It panics on
// out-of-range coordinates, like any slice access.
func (p *Position) CellAt(row, col int) CellState {
	return p.cells[row*p.width+col]
}

// LastMove returns the placement that produced this position from its
// parent. ok is false for the root position.
func (p *Position) LastMove() (move.Move, bool) {
	return p.lastMove, p.hasLastMove
}

// Done reports whether the game is over: no open cells remain.
func (p *Position) Done() bool { return p.open == 0 }

// Winner returns the winning player. ok is false while the game is still in
// progress. When the game is done, the winner is the player who made the
// last move, the opposite of the player on turn.
func (p *Position) Winner() (Player, bool) {
	if !p.Done() {
		return FirstPlayer, false
	}
	return p.onTurn.other(), true
}

// Utility returns the position's comparison value, computing and caching it
// on first read: +Inf for a first-player win, -Inf for a second-player win,
// and the equity score for a non-terminal position cut off at the depth
// limit. Search overrides it for interior nodes via SetUtility.
func (p *Position) Utility() float64 {
	if !p.utilitySet {
		if winner, done := p.Winner(); done {
			if winner == FirstPlayer {
				p.utility = math.Inf(1)
			} else {
				p.utility = math.Inf(-1)
			}
		} else {
			p.utility = equity.Score(p.open, p.width, p.height, p.onTurn == FirstPlayer)
		}
		p.utilitySet = true
	}
	return p.utility
}

// SetUtility assigns the backed-up utility of an interior node, overriding
// the lazy terminal/cutoff computation.
func (p *Position) SetUtility(v float64) {
	p.utility = v
	p.utilitySet = true
}

// ChosenChild returns the tree node search preferred from this position, or
// nil if search never assigned one (or cleared it after pruning cut the
// enumeration short).
func (p *Position) ChosenChild() *Node { return p.chosen }

// SetChosenChild records (or, with nil, clears) the search-preferred child.
func (p *Position) SetChosenChild(n *Node) { p.chosen = n }

// EqualGrid reports whether two positions have identical grids. Turn,
// originating move, utility and chosen child are deliberately excluded:
// positions compared here always come from the same game, where identical
// grids imply the same player on turn.
func (p *Position) EqualGrid(o *Position) bool {
	if p.width != o.width || p.height != o.height {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as a grid with numbered rows and columns.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for c := 0; c < p.width; c++ {
		fmt.Fprintf(&sb, " %d", c)
	}
	for r := 0; r < p.height; r++ {
		fmt.Fprintf(&sb, "\n%d", r)
		for c := 0; c < p.width; c++ {
			sb.WriteString(" " + p.cells[r*p.width+c].String())
		}
	}
	return sb.String()
}
