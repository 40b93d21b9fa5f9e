package elematch

import (
	"context"
	"time"
)

// Run represents one completed, saved matching run: a target learned from a
// reference document and searched across candidate documents. Only results
// are ever stored, never the model itself.
type Run struct {
	ID            string    `json:"id"`
	TargetID      string    `json:"targetId"`
	ReferencePath string    `json:"referencePath"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.TargetID == "" {
		return Errorf(EINVALID, "run target id required")
	}
	if r.ReferencePath == "" {
		return Errorf(EINVALID, "run reference path required")
	}
	return nil
}

// RunMatch is one accepted match within a saved run. Position is the
// zero-based rank of the match within its candidate's result list.
type RunMatch struct {
	ID            string  `json:"id"`
	RunID         string  `json:"runId"`
	CandidatePath string  `json:"candidatePath"`
	CandidateHash uint64  `json:"candidateHash"`
	NodePath      string  `json:"nodePath"`
	Score         float64 `json:"score"`
	Position      int     `json:"position"`
}

// Validate returns an error if the run match contains invalid fields.
func (m *RunMatch) Validate() error {
	if m.RunID == "" {
		return Errorf(EINVALID, "run match run ID required")
	}
	if m.CandidatePath == "" {
		return Errorf(EINVALID, "run match candidate path required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID       *string `json:"id"`
	TargetID *string `json:"targetId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService represents a service for persisting and retrieving run history.
type RunService interface {
	// CreateRun creates a new run.
	CreateRun(ctx context.Context, run *Run) error

	// CreateRunMatch attaches a match to an existing run.
	CreateRunMatch(ctx context.Context, match *RunMatch) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindRunMatches retrieves the matches of a run ordered by candidate
	// path and position.
	FindRunMatches(ctx context.Context, runID string) ([]*RunMatch, error)

	// DeleteRun permanently removes a run and its matches.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}
