package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/databricks-sync/internal/domain/repositories"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/repositories/actions"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/repositories/databricks"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The workspace credential is only known at run time, so the Repos API is provided as a factory
	if err := container.Provide(func() domainRepos.ReposRepositoryFactory {
		return databricks.NewReposRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(actions.NewTaskHostRepository); err != nil {
		return err
	}
	if err := container.Provide(git.NewHeadRefRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *actions.ActionsTaskHostRepository) domainRepos.TaskHostRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *git.GitHeadRefRepository) domainRepos.HeadRefRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
