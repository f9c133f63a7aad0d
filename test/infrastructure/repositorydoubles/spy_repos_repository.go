//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// SpyReposRepository implements repositories.ReposRepository as a configurable spy.
type SpyReposRepository struct {
	// --- ResolveRepoID ---
	RepoID        int64
	ResolveErr    error
	ResolvedPaths []string

	// --- SyncRepo ---
	Commit      string
	SyncErr     error
	SyncedIDs   []int64
	SyncTargets []entities.RefTarget

	// spy: whether the last call carried a deadline
	HadDeadline bool
}

var _ repositories.ReposRepository = (*SpyReposRepository)(nil)

func (s *SpyReposRepository) ResolveRepoID(ctx context.Context, path string) (int64, error) {
	_, s.HadDeadline = ctx.Deadline()
	s.ResolvedPaths = append(s.ResolvedPaths, path)
	return s.RepoID, s.ResolveErr
}

func (s *SpyReposRepository) SyncRepo(
	ctx context.Context, repoID int64, target entities.RefTarget,
) (string, error) {
	_, s.HadDeadline = ctx.Deadline()
	s.SyncedIDs = append(s.SyncedIDs, repoID)
	s.SyncTargets = append(s.SyncTargets, target)
	return s.Commit, s.SyncErr
}

// Factory returns a factory that always hands out this spy and records the credentials.
func (s *SpyReposRepository) Factory(credentials *[]entities.Credential) repositories.ReposRepositoryFactory {
	return func(credential entities.Credential) repositories.ReposRepository {
		if credentials != nil {
			*credentials = append(*credentials, credential)
		}
		return s
	}
}
