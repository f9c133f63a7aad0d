package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/databricks-sync/internal/domain/commands"
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

const githubRefEnv = "GITHUB_REF"

// SyncController handles the "sync" subcommand, which is also the default command.
type SyncController struct {
	command commands.Sync
	host    repositories.TaskHostRepository
	headRef repositories.HeadRefRepository
}

// NewSyncController creates a new SyncController.
func NewSyncController(
	command commands.Sync,
	host repositories.TaskHostRepository,
	headRef repositories.HeadRefRepository,
) *SyncController {
	return &SyncController{command: command, host: host, headRef: headRef}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Sync a Databricks repo to a branch or tag",
		Long: `Check a Databricks workspace repo out at the branch or tag named by
--branch-tag (refs/heads/<branch> or refs/tags/<tag>).

The repo is addressed by --repo-id, or by --repo-path which is resolved
to its ID first. When no ref is given, $GITHUB_REF is used, then the
ref checked out in the current directory.`,
	}
}

// Execute runs the sync and reports any failure through the task host.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inputs, err := collectInputs(cmd, it.host)
	if err != nil {
		it.host.SetFailed(err.Error())
		return
	}
	if inputs.BranchTag == "" {
		inputs.BranchTag = it.detectRef()
	}

	if _, err = it.command.Execute(ctx, inputs); err != nil {
		it.host.SetFailed(err.Error())
	}
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(inputBranchTag, "",
		"Ref to sync to: refs/heads/<branch> or refs/tags/<tag>")
	cmd.Flags().Bool(inputDryRun, false,
		"Resolve the repo but do not sync it")
}

// detectRef falls back to the runner's ref, then to the local checkout.
// An empty result is left for the ref parser to reject.
func (it *SyncController) detectRef() string {
	if ref := os.Getenv(githubRefEnv); ref != "" {
		logger.Debugf("Using ref %q from $%s", ref, githubRefEnv)
		return ref
	}

	ref, err := it.headRef.HeadRef(".")
	if err != nil {
		logger.Debugf("Could not detect the checked out ref: %v", err)
		return ""
	}
	logger.Infof("Using checked out ref %q", ref)
	return ref
}
