package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/shubhs27/Snap-n-Solve/internal/difficulty"
	"github.com/shubhs27/Snap-n-Solve/internal/domain"
	"github.com/shubhs27/Snap-n-Solve/internal/infrastructure/storage"
	"github.com/shubhs27/Snap-n-Solve/internal/solver"
	"github.com/shubhs27/Snap-n-Solve/internal/usecase"
	"github.com/shubhs27/Snap-n-Solve/internal/validator"
)

var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBestFirstSolver(),
		validator.New(),
		difficulty.New(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: sample}, &resp)
	if code != http.StatusOK || resp.Error != "" {
		t.Fatalf("status=%d error=%q", code, resp.Error)
	}
	if resp.Board == nil {
		t.Fatal("no board in response")
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.Board[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
}

func TestSolveEndpointInfeasible(t *testing.T) {
	srv := newTestServer(t)
	var g domain.Grid
	g[0] = [9]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}
	g[4][0] = 9
	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Board: g}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (infeasibility is an expected outcome)", code)
	}
	if !resp.Infeasible || resp.Board != nil {
		t.Fatalf("want infeasible envelope, got %+v", resp)
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var g domain.Grid
	g[0][0], g[0][5] = 5, 5
	var resp validateResp
	code := postJSON(t, srv.URL+"/api/validate", validateReq{Board: g}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.OK || resp.Reason != "Duplicate 5 in row 1" {
		t.Fatalf("got (%v, %q)", resp.OK, resp.Reason)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var resp analyzeResp
	code := postJSON(t, srv.URL+"/api/analyze", analyzeReq{Board: sample}, &resp)
	if code != http.StatusOK || resp.Error != "" {
		t.Fatalf("status=%d error=%q", code, resp.Error)
	}
	if resp.Tier != "Hard" {
		t.Fatalf("tier = %q, want Hard (score %.2f)", resp.Tier, resp.Score)
	}
	if resp.Report == nil || resp.Report.EmptyCells != 51 {
		t.Fatalf("report missing or wrong: %+v", resp.Report)
	}
}

func TestSaveLoadListEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var saved saveResp
	code := postJSON(t, srv.URL+"/api/save", domain.Capture{
		Source: "webcam",
		Board:  domain.Board{Values: sample},
	}, &saved)
	if code != http.StatusOK || saved.ID == "" {
		t.Fatalf("save: status=%d id=%q error=%q", code, saved.ID, saved.Error)
	}

	var loaded loadResp
	code = postJSON(t, srv.URL+"/api/load", loadReq{ID: saved.ID}, &loaded)
	if code != http.StatusOK || loaded.Capture == nil {
		t.Fatalf("load: status=%d error=%q", code, loaded.Error)
	}
	if loaded.Capture.Board.Values != sample {
		t.Fatal("loaded board mismatch")
	}
	// save graded the capture since no report was sent
	if loaded.Capture.Report.Tier.String() != "Hard" {
		t.Fatalf("capture tier = %s, want Hard", loaded.Capture.Report.Tier)
	}

	resp, err := http.Get(srv.URL + "/api/list")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var list listResp
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list.Captures) != 1 || list.Captures[0].ID != saved.ID {
		t.Fatalf("list = %+v", list.Captures)
	}
}

func TestMethodGuards(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/solve")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /api/solve = %d, want 405", resp.StatusCode)
	}
}

func TestStreamEndpoint(t *testing.T) {
	srv := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// a solvable frame gets a solution and a grade
	if err := conn.WriteJSON(frameMsg{Board: sample}); err != nil {
		t.Fatal(err)
	}
	var res frameResult
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatal(err)
	}
	if !res.OK || res.Solution == nil || res.Tier != "Hard" {
		t.Fatalf("frame result = %+v", res)
	}

	// a frame with a duplicate comes back with the validator's reason
	var bad domain.Grid
	bad[0][0], bad[0][5] = 5, 5
	if err := conn.WriteJSON(frameMsg{Board: bad}); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatal(err)
	}
	if res.OK || res.Reason != "Duplicate 5 in row 1" {
		t.Fatalf("bad frame result = %+v", res)
	}
}
