package domain

import "math/bits"

// candidateBits masks bits 1..9 of a candidate set.
const candidateBits = 0x3FE

// Candidates returns the set of digits 1-9 still legal for the cell at
// (r, c), encoded as a bitmask with bit v set for digit v. Filled cells
// have no candidates. An empty mask on an empty cell signals local
// infeasibility: no digit can go there.
func (g *Grid) Candidates(r, c int) uint16 {
	if g[r][c] != 0 {
		return 0
	}
	var used uint16
	for i := 0; i < 9; i++ {
		used |= 1 << g[r][i]
		used |= 1 << g[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			used |= 1 << g[br+dr][bc+dc]
		}
	}
	return ^used & candidateBits
}

// CandidateCount returns the branching factor of an empty cell.
func (g *Grid) CandidateCount(r, c int) int {
	return bits.OnesCount16(g.Candidates(r, c))
}

// EmptyCells lists unfilled cells in row-major order.
func (g *Grid) EmptyCells() []CellCoord {
	out := make([]CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// FilledCount returns the number of non-zero cells.
func (g *Grid) FilledCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Consistent reports whether the value at (r, c) conflicts with no other
// cell in its row, column, or box. Empty cells are always consistent.
func (g *Grid) Consistent(r, c int) bool {
	v := g[r][c]
	if v == 0 {
		return true
	}
	for i := 0; i < 9; i++ {
		if i != c && g[r][i] == v {
			return false
		}
		if i != r && g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if rr != r && cc != c && g[rr][cc] == v {
				return false
			}
		}
	}
	return true
}
