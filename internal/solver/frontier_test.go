package solver

import (
	"container/heap"
	"testing"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
)

func TestFrontierTieBreakIsRowMajor(t *testing.T) {
	// On an empty grid every cell has 9 choices, so pop order is purely
	// the deterministic tie-break.
	var g domain.Grid
	f := buildFrontier(&g)
	if f.Len() != 81 {
		t.Fatalf("frontier size = %d, want 81", f.Len())
	}
	for i := 0; i < 81; i++ {
		e := heap.Pop(&f).(frontierEntry)
		if e.row != i/9 || e.col != i%9 {
			t.Fatalf("pop %d = (%d,%d), want (%d,%d)", i, e.row, e.col, i/9, i%9)
		}
		if e.choices != 9 {
			t.Fatalf("pop %d choices = %d, want 9", i, e.choices)
		}
	}
}

func TestFrontierPopsFewestChoicesFirst(t *testing.T) {
	var g domain.Grid
	g[0] = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 0} // (0,8) is a naked single
	f := buildFrontier(&g)
	e := heap.Pop(&f).(frontierEntry)
	if e.row != 0 || e.col != 8 || e.choices != 1 {
		t.Fatalf("first pop = (%d,%d) choices=%d, want (0,8) choices=1", e.row, e.col, e.choices)
	}
}

func TestFrontierSkipsFilledCells(t *testing.T) {
	f := buildFrontier(&sample)
	want := 81 - sample.FilledCount()
	if f.Len() != want {
		t.Fatalf("frontier size = %d, want %d", f.Len(), want)
	}
}
