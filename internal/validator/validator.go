package validator

import (
	"context"
	"fmt"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans all 27 units for duplicate digits, then runs a quick
// feasibility pass over empty cells. The reason string cites the first
// offending unit, 1-indexed. The feasibility pass is necessary but not
// sufficient: a grid that passes may still have no completion, so callers
// needing a definitive answer must run the solver.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, string, error) {
	g := &b.Values
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				return false, fmt.Sprintf("Duplicate %d in row %d", val, r+1), nil
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				return false, fmt.Sprintf("Duplicate %d in column %d", val, c+1), nil
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					val := g[br*3+dr][bc*3+dc]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						return false, fmt.Sprintf("Duplicate %d in 3x3 box at position (%d,%d)", val, br+1, bc+1), nil
					}
					m |= bit
				}
			}
		}
	}
	// quick feasibility: every empty cell must still have a legal digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 && g.Candidates(r, c) == 0 {
				return false, "Puzzle has no solution", nil
			}
		}
	}
	return true, "", nil
}
