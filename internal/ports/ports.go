package ports

import (
	"context"
	"time"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a board or reports infeasibility.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box plus a quick
// per-cell feasibility pass).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, reason string, err error)
}

// Analyzer grades an unsolved board.
type Analyzer interface {
	Analyze(ctx context.Context, b *domain.Board) (domain.Report, error)
}

// Storage persists and retrieves graded captures as JSON.
type Storage interface {
	Save(ctx context.Context, c *domain.Capture) error
	Load(ctx context.Context, id string) (*domain.Capture, error)
	List(ctx context.Context) ([]domain.CaptureMeta, error)
}
