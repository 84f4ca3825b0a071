package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
	"github.com/shubhs27/Snap-n-Solve/internal/solver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // capture clients connect from arbitrary origins
	},
}

// frameMsg is one recognized grid from the capture pipeline.
type frameMsg struct {
	Board domain.Grid `json:"board"`
}

// frameResult is the per-frame answer the overlay renders: validation
// outcome, the solved grid when one exists, and the difficulty grade of
// the unsolved capture.
type frameResult struct {
	OK         bool         `json:"ok"`
	Reason     string       `json:"reason,omitempty"`
	Infeasible bool         `json:"infeasible,omitempty"`
	Solution   *domain.Grid `json:"solution,omitempty"`
	Tier       string       `json:"tier,omitempty"`
	Score      float64      `json:"score,omitempty"`
	DurationMs int64        `json:"durationMs"`
	Error      string       `json:"error,omitempty"`
}

// handleStream serves the real-time capture loop: each inbound frame grid
// gets validated, solved, and graded, and one result message goes back.
// The connection closes when the client disconnects or sends bad JSON.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var msg frameMsg
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		res := h.processFrame(r.Context(), msg.Board)
		if err := conn.WriteJSON(res); err != nil {
			return
		}
	}
}

func (h *Handler) processFrame(ctx context.Context, grid domain.Grid) frameResult {
	b := &domain.Board{Values: grid}

	ok, reason, err := h.UC.Validate(ctx, b)
	if err != nil {
		return frameResult{Error: err.Error()}
	}
	if !ok {
		return frameResult{Reason: reason}
	}

	solveCtx, cancel := h.solveCtx(ctx)
	defer cancel()
	out, st, err := h.UC.Solve(solveCtx, b)
	if err != nil {
		if errors.Is(err, solver.ErrInfeasible) {
			return frameResult{Infeasible: true, DurationMs: st.Duration.Milliseconds()}
		}
		return frameResult{Error: err.Error(), DurationMs: st.Duration.Milliseconds()}
	}

	// Grade the capture, not the solution.
	rep, err := h.UC.Analyze(ctx, b)
	if err != nil {
		return frameResult{Error: err.Error(), DurationMs: st.Duration.Milliseconds()}
	}
	return frameResult{
		OK:         true,
		Solution:   &out.Values,
		Tier:       rep.Tier.String(),
		Score:      rep.Score,
		DurationMs: st.Duration.Milliseconds(),
	}
}
