// Package equity scores non-terminal positions that search cut off at its
// depth limit.
package equity

// Score evaluates a position reached at the depth cutoff. The base score is
// the number of open cells, which favors moves that leave the opponent the
// fewest options. Exactly one open cell is the exception: whoever is on turn
// is forced to take it and lose, so that case scores width*height + 1,
// larger than any real open count. The sign makes the value plug directly
// into the minimax comparison: positive if the first player is on turn,
// negative otherwise.
func Score(open, width, height int, firstOnTurn bool) float64 {
	util := open
	if util == 1 {
		util = width*height + 1
	}
	if firstOnTurn {
		return float64(util)
	}
	return -float64(util)
}
