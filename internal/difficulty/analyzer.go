// Package difficulty grades an unsolved grid by structural and
// combinatorial properties. The grading never runs the solver: the
// technique requirement is approximated by counting naked singles
// instead of applying a full technique taxonomy.
package difficulty

import (
	"context"
	"math"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
)

type Analyzer struct{}

func New() *Analyzer { return &Analyzer{} }

// Analyze computes the composite difficulty score and tier for an
// unsolved board. Pure: the board is read only, nothing is cached, and
// the same board always grades identically.
func (a *Analyzer) Analyze(ctx context.Context, b *domain.Board) (domain.Report, error) {
	g := &b.Values

	empty := 81 - g.FilledCount()
	emptyScore := math.Min(float64(empty)*1.5, 45)

	singles := nakedSingles(g)
	technique := techniqueScore(singles)
	symmetry := symmetryScore(g)
	isolation := isolationScore(g)
	regional := regionalScore(g)

	score := emptyScore +
		technique*0.35 +
		(10-symmetry)*0.1 +
		isolation*0.05 +
		regional*0.05
	score = math.Max(0, math.Min(100, score))

	return domain.Report{
		Tier:         tierFor(score),
		Score:        score,
		EmptyCells:   empty,
		NakedSingles: singles,
		Technique:    technique,
		Symmetry:     symmetry,
		Isolation:    isolation,
		Regional:     regional,
	}, nil
}

func tierFor(score float64) domain.Difficulty {
	switch {
	case score < 40:
		return domain.Easy
	case score < 60:
		return domain.Medium
	case score < 80:
		return domain.Hard
	default:
		return domain.Expert
	}
}

// nakedSingles counts empty cells with exactly one legal digit.
func nakedSingles(g *domain.Grid) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 && g.CandidateCount(r, c) == 1 {
				n++
			}
		}
	}
	return n
}

// techniqueScore maps the naked-single count to a coarse 0-100 proxy for
// required solving techniques. Puzzles with few singles score near 90
// regardless of how advanced the actual techniques are.
func techniqueScore(singles int) float64 {
	switch {
	case singles > 15:
		return 10 // mostly naked singles
	case singles > 10:
		return 30
	case singles > 5:
		return 60
	default:
		return 90
	}
}

// symmetryScore measures 180-degree rotational symmetry of the filled
// pattern, 0-10. A pair agrees when both cells are filled or both empty.
// The center cell is its own partner and is skipped.
func symmetryScore(g *domain.Grid) float64 {
	agree, pairs := 0, 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			or, oc := 8-r, 8-c
			if r == or && c == oc {
				continue
			}
			pairs++
			if (g[r][c] == 0) == (g[or][oc] == 0) {
				agree++
			}
		}
	}
	if pairs == 0 {
		return 10
	}
	return math.Round(10 * float64(agree) / float64(pairs))
}

// isolationScore is the mean pairwise Manhattan distance between filled
// cells, normalized to 0-10. A grid with fewer than two filled cells has
// no pairs and scores 0 rather than dividing by zero.
func isolationScore(g *domain.Grid) float64 {
	var filled []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				filled = append(filled, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	total, pairs := 0, 0
	for i := 0; i < len(filled); i++ {
		for j := i + 1; j < len(filled); j++ {
			total += abs(filled[i].Row-filled[j].Row) + abs(filled[i].Col-filled[j].Col)
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	avg := float64(total) / float64(pairs)
	return math.Min(10, avg*10/8)
}

// regionalScore is the variance of filled-cell counts across the nine
// boxes, normalized to 0-10. High variance means some boxes carry far
// more clues than others.
func regionalScore(g *domain.Grid) float64 {
	var counts [9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				counts[(r/3)*3+c/3]++
			}
		}
	}
	sum := 0
	for _, n := range counts {
		sum += n
	}
	mean := float64(sum) / 9
	variance := 0.0
	for _, n := range counts {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= 9
	return math.Min(10, variance*10/5)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
