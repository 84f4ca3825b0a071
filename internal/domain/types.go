package domain

// Grid is the raw 9x9 cell matrix. Zero means empty.
type Grid [9][9]uint8

// Board holds current values and which cells are fixed givens
// (digits the capture pipeline recognized, as opposed to solver fills).
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Report is the difficulty breakdown for one unsolved grid.
type Report struct {
	Tier         Difficulty `json:"tier"`
	Score        float64    `json:"score"`
	EmptyCells   int        `json:"emptyCells"`
	NakedSingles int        `json:"nakedSingles"`
	// Sub-scores on their documented scales: technique 0-100, the rest 0-10.
	Technique float64 `json:"technique"`
	Symmetry  float64 `json:"symmetry"`
	Isolation float64 `json:"isolation"`
	Regional  float64 `json:"regional"`
}

// Capture is a persisted puzzle capture with its grading.
type Capture struct {
	ID        string `json:"id,omitempty"`
	Source    string `json:"source,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	Board     Board  `json:"board"`
	Report    Report `json:"report"`
}

// CaptureMeta is a lightweight listing entry.
type CaptureMeta struct {
	ID        string     `json:"id"`
	Source    string     `json:"source,omitempty"`
	Tier      Difficulty `json:"tier"`
	Score     float64    `json:"score"`
	CreatedAt int64      `json:"createdAt"`
}
