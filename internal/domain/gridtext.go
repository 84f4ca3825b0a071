package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads a grid from text: 81 digit cells in row-major order,
// where '0' or '.' means empty. Whitespace and newlines are ignored, so
// both single-line and 9-line layouts parse.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		case ch == '.' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			// filled cell
		default:
			return Grid{}, fmt.Errorf("invalid grid character %q", ch)
		}
		if n >= 81 {
			return Grid{}, fmt.Errorf("grid has more than 81 cells")
		}
		if ch >= '1' && ch <= '9' {
			g[n/9][n%9] = uint8(ch - '0')
		}
		n++
	}
	if n != 81 {
		return Grid{}, fmt.Errorf("grid has %d cells, want 81", n)
	}
	return g, nil
}

// String renders the grid as nine rows of nine digits, '.' for empty.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
