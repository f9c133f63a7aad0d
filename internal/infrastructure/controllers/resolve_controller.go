package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/databricks-sync/internal/domain/commands"
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// ResolveController handles the "resolve" subcommand.
type ResolveController struct {
	command commands.Resolve
	host    repositories.TaskHostRepository
}

// NewResolveController creates a new ResolveController.
func NewResolveController(
	command commands.Resolve,
	host repositories.TaskHostRepository,
) *ResolveController {
	return &ResolveController{command: command, host: host}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolve",
		Short: "Print the ID of a Databricks repo",
		Long: `Look --repo-path up in the workspace and publish its numeric ID
as the "repo-id" output, without syncing anything.`,
	}
}

// Execute resolves the repo ID and reports any failure through the task host.
func (it *ResolveController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inputs, err := collectInputs(cmd, it.host)
	if err != nil {
		it.host.SetFailed(err.Error())
		return
	}

	if _, err = it.command.Execute(ctx, inputs); err != nil {
		it.host.SetFailed(err.Error())
	}
}

// AddFlags has nothing to add: resolve only uses the shared flags.
func (it *ResolveController) AddFlags(_ *cobra.Command) {}
