package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// Resolve is the interface for the resolve command.
type Resolve interface {
	Execute(ctx context.Context, inputs entities.SyncInputs) (int64, error)
}

// ResolveCommand looks a repo path up and publishes its ID without syncing.
type ResolveCommand struct {
	reposFactory repositories.ReposRepositoryFactory
	host         repositories.TaskHostRepository
}

// NewResolveCommand creates a new ResolveCommand.
func NewResolveCommand(
	reposFactory repositories.ReposRepositoryFactory,
	host repositories.TaskHostRepository,
) *ResolveCommand {
	return &ResolveCommand{
		reposFactory: reposFactory,
		host:         host,
	}
}

// Execute resolves the repo ID named by the inputs.
func (it *ResolveCommand) Execute(ctx context.Context, inputs entities.SyncInputs) (int64, error) {
	if err := requireCredential(inputs); err != nil {
		return 0, err
	}
	it.host.SetSecret(inputs.AccessToken)

	ctx, cancel := withTimeout(ctx, inputs.Timeout)
	defer cancel()

	repoID, err := resolveRepoID(ctx, it.host, it.reposFactory(inputs.Credential()), inputs)
	if err != nil {
		return 0, err
	}

	it.host.Info(fmt.Sprintf("Databricks repo ID is %d", repoID))
	if err = it.host.SetOutput(outputRepoID, strconv.FormatInt(repoID, 10)); err != nil {
		return 0, err
	}
	return repoID, nil
}
