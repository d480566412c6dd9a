package game

import (
	"math"
	"testing"

	"github.com/matryer/is"

	"github.com/obviate/obstruction/move"
)

// countCells tallies each cell state so tests can confirm the grid and the
// open counter never drift apart.
func countCells(p *Position) map[CellState]int {
	counts := map[CellState]int{}
	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			counts[p.CellAt(r, c)]++
		}
	}
	return counts
}

func assertConsistent(t *testing.T, p *Position) {
	t.Helper()
	is := is.New(t)
	counts := countCells(p)
	total := counts[CellOpen] + counts[CellBlocked] + counts[CellFirst] + counts[CellSecond]
	is.Equal(total, p.Width()*p.Height())
	is.Equal(counts[CellOpen], p.OpenCount())
}

func TestNewRejectsBadDimensions(t *testing.T) {
	is := is.New(t)
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		_, err := New(dims[0], dims[1])
		is.Equal(err, ErrBadDimensions)
	}
}

func TestNew(t *testing.T) {
	is := is.New(t)
	p, err := New(6, 7)
	is.NoErr(err)
	is.Equal(p.Width(), 6)
	is.Equal(p.Height(), 7)
	is.Equal(p.OpenCount(), 42)
	is.Equal(p.OnTurn(), FirstPlayer)
	_, hasMove := p.LastMove()
	is.True(!hasMove)
	is.True(!p.Done())
	assertConsistent(t, p)
}

func TestPlaceBlocksNeighborhood(t *testing.T) {
	is := is.New(t)
	p, err := New(4, 4)
	is.NoErr(err)

	succ, ok := p.Place(1, 1)
	is.True(ok)
	is.Equal(succ.CellAt(1, 1), CellFirst)
	for _, rc := range [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		is.Equal(succ.CellAt(rc[0], rc[1]), CellBlocked)
	}
	is.Equal(succ.OpenCount(), 16-9)
	is.Equal(succ.OnTurn(), SecondPlayer)
	m, hasMove := succ.LastMove()
	is.True(hasMove)
	is.Equal(m, move.Move{Row: 1, Col: 1})
	assertConsistent(t, succ)

	// The parent is untouched.
	is.Equal(p.OpenCount(), 16)
	is.Equal(p.CellAt(1, 1), CellOpen)

	// Replaying the same cell on the successor is illegal, as is any cell
	// in the blocked neighborhood.
	_, ok = succ.Place(1, 1)
	is.True(!ok)
	_, ok = succ.Place(0, 0)
	is.True(!ok)

	// A far corner is still open.
	far, ok := succ.Place(3, 3)
	is.True(ok)
	is.Equal(far.CellAt(3, 3), CellSecond)
	is.Equal(far.OnTurn(), FirstPlayer)
	assertConsistent(t, far)
}

func TestPlaceClipsAtEdges(t *testing.T) {
	is := is.New(t)
	p, err := New(5, 5)
	is.NoErr(err)
	succ, ok := p.Place(0, 0)
	is.True(ok)
	// A corner placement blocks only the three in-range neighbors.
	is.Equal(succ.OpenCount(), 25-4)
	assertConsistent(t, succ)
}

func TestPlaceOutOfRange(t *testing.T) {
	is := is.New(t)
	p, err := New(3, 3)
	is.NoErr(err)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
		_, ok := p.Place(rc[0], rc[1])
		is.True(!ok)
	}
}

func TestSingleCellGame(t *testing.T) {
	is := is.New(t)
	p, err := New(1, 1)
	is.NoErr(err)
	succ, ok := p.Place(0, 0)
	is.True(ok)
	is.Equal(succ.OpenCount(), 0)
	is.True(succ.Done())
	winner, done := succ.Winner()
	is.True(done)
	is.Equal(winner, FirstPlayer)
	is.Equal(succ.Utility(), math.Inf(1))
}

func TestAdjacencyEndsGameInOneMove(t *testing.T) {
	is := is.New(t)
	p, err := New(2, 1)
	is.NoErr(err)
	is.Equal(p.OpenCount(), 2)
	// Marking one cell blocks the only other cell, ending the game.
	succ, ok := p.Place(0, 0)
	is.True(ok)
	is.Equal(succ.OpenCount(), 0)
	is.True(succ.Done())
	winner, done := succ.Winner()
	is.True(done)
	is.Equal(winner, FirstPlayer)
	is.Equal(succ.Utility(), math.Inf(1))
	assertConsistent(t, succ)
}

func TestWinnerUndefinedWhileInProgress(t *testing.T) {
	is := is.New(t)
	p, err := New(3, 3)
	is.NoErr(err)
	_, done := p.Winner()
	is.True(!done)
}

func TestSecondPlayerWin(t *testing.T) {
	is := is.New(t)
	// 3x1: first takes a corner, second takes the remaining open cell.
	p, err := New(3, 1)
	is.NoErr(err)
	afterFirst, ok := p.Place(0, 0)
	is.True(ok)
	is.Equal(afterFirst.OpenCount(), 1)
	afterSecond, ok := afterFirst.Place(0, 2)
	is.True(ok)
	is.True(afterSecond.Done())
	winner, done := afterSecond.Winner()
	is.True(done)
	is.Equal(winner, SecondPlayer)
	is.Equal(afterSecond.Utility(), math.Inf(-1))
}

func TestUtilityCutoffLeaf(t *testing.T) {
	is := is.New(t)
	p, err := New(3, 1)
	is.NoErr(err)
	afterFirst, ok := p.Place(0, 0)
	is.True(ok)
	// One open cell left with the second player on turn: the sentinel,
	// negated, never -1.
	is.Equal(afterFirst.Utility(), float64(-4))
}

func TestSetUtilityOverridesLazyValue(t *testing.T) {
	is := is.New(t)
	p, err := New(3, 3)
	is.NoErr(err)
	p.SetUtility(2.5)
	is.Equal(p.Utility(), 2.5)
}

func TestUtilityCached(t *testing.T) {
	is := is.New(t)
	p, err := New(3, 3)
	is.NoErr(err)
	is.Equal(p.Utility(), float64(9))
	is.Equal(p.Utility(), float64(9))
}

func TestEqualGrid(t *testing.T) {
	is := is.New(t)
	p, err := New(3, 3)
	is.NoErr(err)

	a, ok := p.Place(0, 0)
	is.True(ok)
	b, ok := p.Place(0, 0)
	is.True(ok)
	// Same placement from the same parent: identical grids, even though
	// the annotation fields may diverge.
	b.SetUtility(99)
	is.True(a.EqualGrid(b))
	is.True(b.EqualGrid(a))

	c, ok := p.Place(2, 2)
	is.True(ok)
	is.True(!a.EqualGrid(c))
}

func TestString(t *testing.T) {
	is := is.New(t)
	p, err := New(2, 2)
	is.NoErr(err)
	succ, ok := p.Place(0, 0)
	is.True(ok)
	is.Equal(succ.String(), "  0 1\n0 O /\n1 / /")
}
