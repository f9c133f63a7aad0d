//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/databricks-sync/internal/domain/commands"
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
)

// StubResolveCommand is a stub implementation of commands.Resolve.
type StubResolveCommand struct {
	ExecuteCallCount int
	ExecuteRepoID    int64
	ExecuteErr       error
	LastInputs       entities.SyncInputs
}

var _ commands.Resolve = (*StubResolveCommand)(nil)

func (s *StubResolveCommand) Execute(_ context.Context, inputs entities.SyncInputs) (int64, error) {
	s.ExecuteCallCount++
	s.LastInputs = inputs
	return s.ExecuteRepoID, s.ExecuteErr
}
