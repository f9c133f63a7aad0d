package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/databricks-sync/internal"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/controllers"
)

func buildRootCommand(syncController *controllers.SyncController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "databricks-sync",
		Short: "Sync a Databricks workspace repo to a Git branch or tag",
		Long: `A CI step that checks a Databricks workspace repo out at the branch or tag
that triggered the pipeline, using the Databricks Repos API.

Inputs are read from flags, from GitHub Actions step inputs (INPUT_*),
then from an optional config file (databricks-sync.yaml or .toml).

Usage modes:
  databricks-sync                     Sync (same as "databricks-sync sync")
  databricks-sync sync --dry-run      Resolve the repo without syncing it
  databricks-sync resolve             Only print the repo ID`,
		Args: cobra.NoArgs,
		Run: func(command *cobra.Command, args []string) {
			syncController.Execute(command, args)
		},
	}

	controllers.AddInputFlags(cmd)
	syncController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" || os.Getenv("RUNNER_DEBUG") == "1" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetSyncController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'databricks-sync': %s", err)
	}
	if appContext.Failed() {
		os.Exit(1)
	}
}
