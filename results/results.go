// Package results records search statistics as append-only plain text.
package results

import (
	"fmt"
	"os"
)

// Record describes one search: the board it ran on, the algorithm used, how
// many positions it instantiated and to what depth it looked ahead.
type Record struct {
	Width     int
	Height    int
	Algorithm string
	Expanded  int
	Depth     int
}

// Writer appends records to a single text file, creating it on first use.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string { return w.path }

// Append writes one record to the end of the file. Formatting and storage
// live here; callers only supply the numbers.
func (w *Writer) Append(rec Record) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "Size: %d*%d\nAlgorithm: %s\nExpanded: %d\nDepth: %d\n\n",
		rec.Width, rec.Height, rec.Algorithm, rec.Expanded, rec.Depth)
	if err != nil {
		return fmt.Errorf("write results record: %w", err)
	}
	return nil
}
