package solver

import (
	"container/heap"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
)

// frontierEntry records one empty cell and its current branching factor.
type frontierEntry struct {
	row, col int
	choices  int
}

// frontier is a min-heap of empty cells ordered by candidate count.
// Ties break row-major so pop order is fully deterministic.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].choices != f[j].choices {
		return f[i].choices < f[j].choices
	}
	if f[i].row != f[j].row {
		return f[i].row < f[j].row
	}
	return f[i].col < f[j].col
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierEntry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}

// buildFrontier collects every empty cell with its current candidate
// count. It is rebuilt from scratch after each placement: one placement
// shrinks the candidate sets of many cells at once, and re-ranking the
// whole frontier is what keeps the search's branching factor low.
func buildFrontier(g *domain.Grid) frontier {
	f := make(frontier, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				f = append(f, frontierEntry{row: r, col: c, choices: g.CandidateCount(r, c)})
			}
		}
	}
	heap.Init(&f)
	return f
}
