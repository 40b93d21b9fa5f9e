package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ elematch.RunService = (*RunService)(nil)

// RunService implements elematch.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run.
func (s *RunService) CreateRun(ctx context.Context, run *elematch.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, target_id, reference_path, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.TargetID, run.ReferencePath, run.CreatedAt.Format(time.RFC3339))

	return err
}

// CreateRunMatch attaches a match to an existing run.
func (s *RunService) CreateRunMatch(ctx context.Context, match *elematch.RunMatch) error {
	if err := match.Validate(); err != nil {
		return err
	}

	match.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_matches (id, run_id, candidate_path, candidate_hash, node_path, score, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, match.ID, match.RunID, match.CandidatePath, formatHash(match.CandidateHash),
		match.NodePath, match.Score, match.Position)

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*elematch.Run, error) {
	var run elematch.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, target_id, reference_path, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.TargetID, &run.ReferencePath, &createdAt)

	if err == sql.ErrNoRows {
		return nil, elematch.Errorf(elematch.ENOTFOUND, "run %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter elematch.RunFilter) ([]*elematch.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, target_id, reference_path, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.TargetID != nil {
		query.WriteString(" AND target_id = ?")
		args = append(args, *filter.TargetID)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*elematch.Run
	for rows.Next() {
		var run elematch.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.TargetID, &run.ReferencePath, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindRunMatches retrieves the matches of a run in insertion order.
func (s *RunService) FindRunMatches(ctx context.Context, runID string) ([]*elematch.RunMatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, candidate_path, candidate_hash, node_path, score, position
		FROM run_matches
		WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*elematch.RunMatch
	for rows.Next() {
		var m elematch.RunMatch
		var hash string
		if err := rows.Scan(&m.ID, &m.RunID, &m.CandidatePath, &hash, &m.NodePath, &m.Score, &m.Position); err != nil {
			return nil, err
		}
		m.CandidateHash, err = parseHash(hash)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

// DeleteRun permanently removes a run and its matches.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return elematch.Errorf(elematch.ENOTFOUND, "run %q not found", id)
	}
	return nil
}

// Checksums are stored as hex strings; SQLite has no unsigned 64-bit type.
func formatHash(h uint64) string {
	return strconv.FormatUint(h, 16)
}

func parseHash(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	h, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse candidate hash: %w", err)
	}
	return h, nil
}
