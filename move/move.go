// Package move defines the placement move for Obstruction and the
// row/column notation used by the interactive driver.
package move

import (
	"fmt"
	"regexp"
	"strconv"
)

// Move is a single placement: the row and column of the cell being marked.
type Move struct {
	Row int
	Col int
}

var reMove = regexp.MustCompile(`^\s*(?P<row>-?[0-9]+)/(?P<col>-?[0-9]+)\s*$`)

// Parse reads a move in row/column notation, e.g. "3/4". It does not
// range-check the coordinates; that is the board's job.
func Parse(s string) (Move, error) {
	matches := reMove.FindStringSubmatch(s)
	if matches == nil {
		return Move{}, fmt.Errorf("move %q is not in the format row/column", s)
	}
	row, err := strconv.Atoi(matches[reMove.SubexpIndex("row")])
	if err != nil {
		return Move{}, fmt.Errorf("row value must be an integer: %w", err)
	}
	col, err := strconv.Atoi(matches[reMove.SubexpIndex("col")])
	if err != nil {
		return Move{}, fmt.Errorf("column value must be an integer: %w", err)
	}
	return Move{Row: row, Col: col}, nil
}

func (m Move) String() string {
	return fmt.Sprintf("%d/%d", m.Row, m.Col)
}
