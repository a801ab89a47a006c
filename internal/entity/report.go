package entity

import "time"

// Per-file batch outcomes.
const (
	OutcomeExported = "exported"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

// ObjectSummary is the per-mesh-object line of a ValidationReport, in graph
// traversal order. Order is stable within one run only; callers must not rely
// on cross-run ordering.
type ObjectSummary struct {
	Name     string `json:"name"`
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Edges    int    `json:"edges"`
}

// Stats are monotonic sums over the objects visited in a single validation
// pass.
type Stats struct {
	TotalVertices int `json:"total_vertices"`
	TotalFaces    int `json:"total_faces"`
	MeshObjects   int `json:"mesh_objects"`
	Armatures     int `json:"armatures"`
	Materials     int `json:"materials"`
}

// ValidationReport is the immutable result of one validation pass over one
// loaded scene. Valid is always exactly "no issues"; warnings never affect it.
type ValidationReport struct {
	File     string          `json:"file"`
	Path     string          `json:"path"`
	Objects  []ObjectSummary `json:"objects"`
	Issues   []string        `json:"issues"`
	Warnings []string        `json:"warnings"`
	Stats    Stats           `json:"stats"`
	Valid    bool            `json:"valid"`
}

// BatchSummary is the aggregate record of one export run.
type BatchSummary struct {
	RunID      string    `json:"run_id"`
	Timestamp  time.Time `json:"timestamp"`
	TotalFiles int       `json:"total_files"`
	Exported   int       `json:"exported"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	Files      []string  `json:"files"`
}

// ValidationSummary is the aggregate record of one validation-only run.
type ValidationSummary struct {
	RunID        string              `json:"run_id"`
	Timestamp    time.Time           `json:"timestamp"`
	TotalFiles   int                 `json:"total_files"`
	ValidFiles   int                 `json:"valid_files"`
	InvalidFiles int                 `json:"invalid_files"`
	TotalIssues  int                 `json:"total_issues"`
	Files        []*ValidationReport `json:"files"`
}
