//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/databricks-sync/internal/domain/commands"
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
)

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	ExecuteCallCount int
	ExecuteResult    *entities.SyncResult
	ExecuteErr       error
	LastInputs       entities.SyncInputs
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Execute(
	_ context.Context,
	inputs entities.SyncInputs,
) (*entities.SyncResult, error) {
	s.ExecuteCallCount++
	s.LastInputs = inputs
	return s.ExecuteResult, s.ExecuteErr
}
