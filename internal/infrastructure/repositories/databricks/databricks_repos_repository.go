package databricks

import (
	"context"
	"errors"
	"net"

	logger "github.com/sirupsen/logrus"

	dbx "github.com/rios0rios0/databricks-sync/internal/databricks"
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

const (
	shortCommitLength = 7

	operationResolve = "get repo id"
	operationSync    = "sync databricks repo"
)

var errMissingHeadCommit = errors.New("response did not include a head_commit_id")

// DatabricksReposRepository implements repositories.ReposRepository on top of the Repos REST API.
type DatabricksReposRepository struct {
	client *dbx.Client
}

// NewReposRepository creates a repository for the workspace named in the credential.
func NewReposRepository(credential entities.Credential) repositories.ReposRepository {
	return NewReposRepositoryWithClient(
		dbx.NewClient(credential.WorkspaceAccount, credential.AccessToken),
	)
}

// NewReposRepositoryWithClient wraps an already configured API client.
func NewReposRepositoryWithClient(client *dbx.Client) *DatabricksReposRepository {
	return &DatabricksReposRepository{client: client}
}

// ResolveRepoID lists the repos under path and returns the ID of the one whose
// path matches exactly. The API filters by prefix, so siblings such as
// /Repos/production/my-repo-old may be part of the listing.
func (it *DatabricksReposRepository) ResolveRepoID(ctx context.Context, path string) (int64, error) {
	logger.Debugf("Listing repos under %q from %s", path, it.client.BaseURL())

	repos, err := it.client.ListRepos(ctx, path)
	if err != nil {
		if isTimeout(ctx, err) {
			return 0, &entities.TimeoutError{Operation: operationResolve, Err: err}
		}
		return 0, &entities.RepoResolutionError{Err: translateError(err)}
	}

	descriptor, found := entities.FindRepoByPath(toDescriptors(repos), path)
	if !found {
		return 0, &entities.RepoResolutionError{Err: &entities.RepoNotFoundError{Path: path}}
	}

	logger.Debugf("Repo %q has ID %d (branch %q)", path, descriptor.ID, descriptor.Branch)
	return descriptor.ID, nil
}

// SyncRepo updates the repo to the target and returns the short head commit.
// An empty target fails before any request is sent.
func (it *DatabricksReposRepository) SyncRepo(
	ctx context.Context,
	repoID int64,
	target entities.RefTarget,
) (string, error) {
	if !target.IsValid() {
		return "", &entities.InvalidSyncArgsError{Branch: target.Branch(), Tag: target.Tag()}
	}

	req := dbx.UpdateRepoRequest{Branch: target.Branch()}
	if target.IsTag() {
		req = dbx.UpdateRepoRequest{Tag: target.Tag()}
	}

	repo, err := it.client.UpdateRepo(ctx, repoID, req)
	if err != nil {
		if isTimeout(ctx, err) {
			return "", &entities.TimeoutError{Operation: operationSync, Err: err}
		}
		return "", &entities.RepoSyncError{Err: translateError(err)}
	}

	if repo.HeadCommitID == "" {
		return "", &entities.RepoSyncError{Err: errMissingHeadCommit}
	}
	return shortCommit(repo.HeadCommitID), nil
}

func shortCommit(commitID string) string {
	if len(commitID) <= shortCommitLength {
		return commitID
	}
	return commitID[:shortCommitLength]
}

func toDescriptors(repos []dbx.Repo) []entities.RepoDescriptor {
	descriptors := make([]entities.RepoDescriptor, 0, len(repos))
	for _, r := range repos {
		descriptors = append(descriptors, entities.RepoDescriptor{
			ID:           r.ID,
			Path:         r.Path,
			URL:          r.URL,
			Provider:     r.Provider,
			Branch:       r.Branch,
			HeadCommitID: r.HeadCommitID,
		})
	}
	return descriptors
}

// translateError maps API answers to the domain error so callers can inspect
// the status without knowing about the client.
func translateError(err error) error {
	var respErr *dbx.ResponseError
	if errors.As(err, &respErr) {
		return &entities.APIError{StatusCode: respErr.StatusCode, Message: respErr.Message}
	}
	return err
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
