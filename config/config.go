// Package config loads and validates the engine's settings. Error messages
// here are user-readable and safe to show directly.
package config

import (
	"fmt"
	"strings"

	"github.com/namsral/flag"
	"github.com/samber/lo"
)

// Algorithm names accepted by the -algorithm flag.
const (
	AlgMinimax   = "MM"
	AlgAlphaBeta = "AB"
)

// BoardSize is one of the playable board dimensions.
type BoardSize struct {
	Width  int
	Height int
}

func (b BoardSize) String() string {
	return fmt.Sprintf("%d*%d", b.Width, b.Height)
}

// Sizes are the board dimensions the interactive game offers.
var Sizes = []BoardSize{{6, 6}, {6, 7}, {7, 8}, {8, 8}}

type Config struct {
	AIPlayer    int
	Algorithm   string
	Size        string
	Depth       int
	ResultsPath string
	Debug       bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("obstruction", flag.ContinueOnError)
	fs.IntVar(&c.AIPlayer, "ai-player", 1, "1 if the AI moves first, 2 if the human moves first")
	fs.StringVar(&c.Algorithm, "algorithm", AlgAlphaBeta, "search algorithm: MM (minimax) or AB (minimax with alpha-beta pruning)")
	fs.StringVar(&c.Size, "size", "6*6", "board size, one of "+strings.Join(sizeStrings(), " "))
	fs.IntVar(&c.Depth, "depth", 4, "search lookahead depth in plies")
	fs.StringVar(&c.ResultsPath, "results-path", "Readme.txt", "file the first search's statistics are appended to")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	return fs.Parse(args)
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.AIPlayer != 1 && c.AIPlayer != 2 {
		return fmt.Errorf("the AI player must be specified as 1 (AI goes first) or 2 (AI goes second; human goes first)")
	}
	if c.Algorithm != AlgMinimax && c.Algorithm != AlgAlphaBeta {
		return fmt.Errorf("%q is not a supported algorithm; choose one of the following: %s %s",
			c.Algorithm, AlgMinimax, AlgAlphaBeta)
	}
	if _, err := c.BoardSize(); err != nil {
		return err
	}
	if c.Depth < 0 {
		return fmt.Errorf("the search depth must be non-negative")
	}
	return nil
}

// BoardSize resolves the size setting to concrete dimensions.
func (c *Config) BoardSize() (BoardSize, error) {
	for _, s := range Sizes {
		if s.String() == c.Size {
			return s, nil
		}
	}
	return BoardSize{}, fmt.Errorf("the size must be one of the following: %s",
		strings.Join(sizeStrings(), " "))
}

func sizeStrings() []string {
	return lo.Map(Sizes, func(s BoardSize, _ int) string { return s.String() })
}
