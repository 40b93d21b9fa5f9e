package mock

import (
	"context"

	"github.com/MartinCastroAlvarez/elematch"
)

var _ elematch.RunService = (*RunService)(nil)

// RunService is a mock implementation of elematch.RunService.
type RunService struct {
	CreateRunFn      func(ctx context.Context, run *elematch.Run) error
	CreateRunMatchFn func(ctx context.Context, match *elematch.RunMatch) error
	FindRunByIDFn    func(ctx context.Context, id string) (*elematch.Run, error)
	FindRunsFn       func(ctx context.Context, filter elematch.RunFilter) ([]*elematch.Run, error)
	FindRunMatchesFn func(ctx context.Context, runID string) ([]*elematch.RunMatch, error)
	DeleteRunFn      func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *elematch.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) CreateRunMatch(ctx context.Context, match *elematch.RunMatch) error {
	return s.CreateRunMatchFn(ctx, match)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*elematch.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter elematch.RunFilter) ([]*elematch.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindRunMatches(ctx context.Context, runID string) ([]*elematch.RunMatch, error) {
	return s.FindRunMatchesFn(ctx, runID)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
