package solver

import (
	"container/heap"
	"context"
	"errors"
	"time"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
	"github.com/shubhs27/Snap-n-Solve/internal/ports"
)

// ErrInfeasible reports that a grid has no valid completion. It is an
// expected outcome for contradictory captures, not an exceptional one.
var ErrInfeasible = errors.New("puzzle is infeasible")

// BestFirstSolver fills grids with best-first backtracking: at every step
// it branches on the empty cell with the fewest remaining candidates.
type BestFirstSolver struct{}

func NewBestFirstSolver() *BestFirstSolver { return &BestFirstSolver{} }

// Solve returns a completed copy of the board or ErrInfeasible. The input
// board is never mutated. Cancellation and deadlines on ctx abort the
// search and surface as ctx.Err().
func (s *BestFirstSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0

	if !feasible(&grid) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrInfeasible
	}

	// Success propagates as the return value: once a frame sees the
	// frontier empty, every ancestor short-circuits without trying
	// further candidates.
	var search func(f *frontier) bool
	search = func(f *frontier) bool {
		if ctx.Err() != nil {
			return false
		}
		if f.Len() == 0 {
			return true
		}
		e := heap.Pop(f).(frontierEntry)
		cands := grid.Candidates(e.row, e.col)
		for v := uint8(1); v <= 9; v++ {
			if cands&(1<<v) == 0 {
				continue
			}
			nodes++
			grid[e.row][e.col] = v
			next := buildFrontier(&grid)
			if search(&next) {
				return true
			}
			if ctx.Err() != nil {
				break
			}
		}
		grid[e.row][e.col] = 0 // backtrack
		return false
	}

	f := buildFrontier(&grid)
	if !search(&f) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrInfeasible
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// feasible is the quick pre-search check: every filled cell must be
// consistent with its units and every empty cell must keep at least one
// candidate. Necessary but not sufficient.
func feasible(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				if g.Candidates(r, c) == 0 {
					return false
				}
			} else if !g.Consistent(r, c) {
				return false
			}
		}
	}
	return true
}
