package puzzlefile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"svw.info/sudokusolve/internal/domain"
)

// Format errors. Callers match them with errors.Is; the wrapped message
// carries the offending position.
var (
	ErrRowLength    = errors.New("puzzle row must be exactly 9 digits")
	ErrNotDigit     = errors.New("puzzle cell must be an ASCII digit")
	ErrTrailingData = errors.New("unexpected data after 9th row")
	ErrTruncated    = errors.New("puzzle file ended before 9 rows")
)

// FS loads puzzles from the local filesystem.
type FS struct{}

func NewFS() *FS { return &FS{} }

// Load reads the puzzle at path: exactly 9 lines of exactly 9 ASCII digits,
// 0 meaning empty, with end of input directly after the 9th line.
func (l *FS) Load(ctx context.Context, path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse reads the 9x9 text encoding from r. Nonzero cells are marked as
// fixed givens. A single newline terminating the 9th row is tolerated;
// anything beyond it is not.
func Parse(r io.Reader) (*domain.Board, error) {
	sc := bufio.NewScanner(r)
	var b domain.Board
	for row := 0; row < 9; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("row %d: %w", row+1, ErrTruncated)
		}
		line := sc.Text()
		if len(line) != 9 {
			return nil, fmt.Errorf("row %d has %d characters: %w", row+1, len(line), ErrRowLength)
		}
		for col := 0; col < 9; col++ {
			ch := line[col]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("row %d col %d (%q): %w", row+1, col+1, string(ch), ErrNotDigit)
			}
			v := ch - '0'
			b.Values[row][col] = v
			b.Fixed[row][col] = v != 0
		}
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%q: %w", sc.Text(), ErrTrailingData)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}
