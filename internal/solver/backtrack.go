package solver

import (
	"context"
	"time"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
	"github.com/shubhs27/Snap-n-Solve/internal/ports"
)

// BacktrackingSolver is the plain first-empty-cell recursive solver, kept
// as a fallback engine behind the same port as BestFirstSolver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0

	if !feasible(&grid) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrInfeasible
	}

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		cands := grid.Candidates(r, c)
		for v := uint8(1); v <= 9; v++ {
			if cands&(1<<v) == 0 {
				continue
			}
			nodes++
			grid[r][c] = v
			if dfs() {
				return true
			}
			grid[r][c] = 0
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrInfeasible
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
