package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// requireCredential fails when the workspace account or the access token is missing.
func requireCredential(inputs entities.SyncInputs) error {
	if inputs.Account == "" {
		return fmt.Errorf("%w: account", entities.ErrMissingInput)
	}
	if inputs.AccessToken == "" {
		return fmt.Errorf("%w: access-token", entities.ErrMissingInput)
	}
	return nil
}

// resolveRepoID returns the explicit repo ID when given, otherwise looks the
// repo path up through the API. Missing both fails without any request.
func resolveRepoID(
	ctx context.Context,
	host repositories.TaskHostRepository,
	repos repositories.ReposRepository,
	inputs entities.SyncInputs,
) (int64, error) {
	if inputs.RepoID != "" {
		repoID, err := strconv.ParseInt(inputs.RepoID, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("repo-id must be numeric, got %q", inputs.RepoID)
		}
		host.Info("repo-id found. Using it to sync repo")
		return repoID, nil
	}

	if inputs.RepoPath == "" {
		return 0, entities.ErrMissingRepo
	}

	host.Info("repo-path found. Getting Databricks repo ID")
	return repos.ResolveRepoID(ctx, inputs.RepoPath)
}

// withTimeout bounds ctx by timeout; zero means no deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
