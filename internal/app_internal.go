package internal

import (
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/controllers"
)

// AppInternal holds everything the entry point needs from the container.
type AppInternal struct {
	controllers    *[]entities.Controller
	syncController *controllers.SyncController
	host           repositories.TaskHostRepository
}

// NewAppInternal creates the application context.
func NewAppInternal(
	allControllers *[]entities.Controller,
	syncController *controllers.SyncController,
	host repositories.TaskHostRepository,
) *AppInternal {
	return &AppInternal{
		controllers:    allControllers,
		syncController: syncController,
		host:           host,
	}
}

// GetControllers returns every controller exposed as a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// GetSyncController returns the controller run when no subcommand is given.
func (it *AppInternal) GetSyncController() *controllers.SyncController {
	return it.syncController
}

// Failed reports whether the run was marked as failed.
func (it *AppInternal) Failed() bool {
	return it.host.Failed()
}
