package commands

import (
	"context"
	"fmt"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

const (
	outputRepoID = "repo-id"
	outputCommit = "commit"
)

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, inputs entities.SyncInputs) (*entities.SyncResult, error)
}

// SyncCommand orchestrates a single sync:
// parse ref -> resolve repo ID (when only a path is given) -> update the repo -> report the commit.
type SyncCommand struct {
	reposFactory repositories.ReposRepositoryFactory
	host         repositories.TaskHostRepository
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	reposFactory repositories.ReposRepositoryFactory,
	host repositories.TaskHostRepository,
) *SyncCommand {
	return &SyncCommand{
		reposFactory: reposFactory,
		host:         host,
	}
}

// Execute runs the sync described by inputs.
func (it *SyncCommand) Execute(
	ctx context.Context,
	inputs entities.SyncInputs,
) (*entities.SyncResult, error) {
	runLog := logger.WithFields(logger.Fields{
		"run":     newRunID(),
		"account": inputs.Account,
	})
	runLog.Debug("Starting databricks-sync run")

	if err := requireCredential(inputs); err != nil {
		return nil, err
	}
	it.host.SetSecret(inputs.AccessToken)

	target, err := entities.ParseRef(inputs.BranchTag)
	if err != nil {
		return nil, err
	}
	if !entities.IsConventionalRef(inputs.BranchTag) {
		it.host.Warning(fmt.Sprintf("Ref %q is neither a branch nor a tag, syncing it as tag %q", inputs.BranchTag, target.Name()))
	}
	if target.IsRelease() {
		runLog.Debugf("Tag %q is a release version", target.Name())
	}

	ctx, cancel := withTimeout(ctx, inputs.Timeout)
	defer cancel()

	repos := it.reposFactory(inputs.Credential())

	repoID, err := resolveRepoID(ctx, it.host, repos, inputs)
	if err != nil {
		return nil, err
	}
	if outErr := it.host.SetOutput(outputRepoID, strconv.FormatInt(repoID, 10)); outErr != nil {
		runLog.Warnf("Failed to set output %q: %v", outputRepoID, outErr)
	}

	result := &entities.SyncResult{RepoID: repoID, Target: target}
	if inputs.DryRun {
		it.host.Info(fmt.Sprintf("[DRY RUN] Would sync Databricks repo %d with %s", repoID, target.Name()))
		return result, nil
	}

	it.host.Info("Syncing Databricks repo with " + target.Name())
	commit, err := repos.SyncRepo(ctx, repoID, target)
	if err != nil {
		return nil, err
	}
	result.Commit = commit

	it.host.Info("Repo is now synced at commit " + commit)
	if outErr := it.host.SetOutput(outputCommit, commit); outErr != nil {
		runLog.Warnf("Failed to set output %q: %v", outputCommit, outErr)
	}

	runLog.Debugf("Synced repo %d to %s", repoID, target)
	return result, nil
}
