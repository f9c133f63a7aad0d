package repositories

import (
	"context"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
)

// ReposRepository abstracts the Databricks Repos API of a single workspace.
type ReposRepository interface {
	// ResolveRepoID returns the ID of the repo mounted exactly at path.
	ResolveRepoID(ctx context.Context, path string) (int64, error)

	// SyncRepo checks the repo out at the given branch or tag and returns the
	// short (7 character) hash of the resulting head commit.
	SyncRepo(ctx context.Context, repoID int64, target entities.RefTarget) (string, error)
}

// ReposRepositoryFactory builds a ReposRepository for a workspace credential.
type ReposRepositoryFactory func(credential entities.Credential) ReposRepository
