package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

const (
	inputAccount     = "account"
	inputAccessToken = "access-token"
	inputBranchTag   = "branch-tag"
	inputRepoPath    = "repo-path"
	inputRepoID      = "repo-id"
	inputTimeout     = "timeout"
	inputDryRun      = "dry-run"

	flagConfig  = "config"
	flagVerbose = "verbose"

	defaultTimeout = 30 * time.Second
)

// AddInputFlags adds the flags shared by every controller to the given Cobra command.
func AddInputFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagConfig, "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String(inputAccount, "",
		"Databricks workspace account, the <account> in https://<account>.cloud.databricks.com")
	cmd.PersistentFlags().String(inputAccessToken, "",
		"Databricks personal access token")
	cmd.PersistentFlags().String(inputRepoPath, "",
		"Workspace path of the repo (e.g. /Repos/production/my-repo)")
	cmd.PersistentFlags().String(inputRepoID, "",
		"Numeric ID of the repo (skips the path lookup)")
	cmd.PersistentFlags().Duration(inputTimeout, defaultTimeout,
		"Deadline for the API calls (0 disables it)")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false,
		"Enable verbose output")
}

// collectInputs merges, in order of precedence, flags, task host inputs and the config file.
func collectInputs(
	cmd *cobra.Command,
	host repositories.TaskHostRepository,
) (entities.SyncInputs, error) {
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return entities.SyncInputs{}, err
	}

	inputs := entities.SyncInputs{
		Account:     pick(cmd, host, inputAccount, settings.Account),
		AccessToken: pick(cmd, host, inputAccessToken, settings.AccessToken),
		BranchTag:   pick(cmd, host, inputBranchTag, settings.BranchTag),
		RepoPath:    pick(cmd, host, inputRepoPath, settings.RepoPath),
		RepoID:      pick(cmd, host, inputRepoID, settings.RepoID),
	}

	if inputs.Timeout, err = pickTimeout(cmd, host, settings); err != nil {
		return entities.SyncInputs{}, err
	}
	if inputs.DryRun, err = pickDryRun(cmd, host); err != nil {
		return entities.SyncInputs{}, err
	}

	return inputs, nil
}

// loadSettings loads the config file given with --config, or the first one
// found in the default locations. No file at all yields empty settings.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file used: %v", err)
			return &entities.Settings{}, nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func pick(
	cmd *cobra.Command,
	host repositories.TaskHostRepository,
	name, fallback string,
) string {
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	if value := host.Input(name); value != "" {
		return value
	}
	return fallback
}

func pickTimeout(
	cmd *cobra.Command,
	host repositories.TaskHostRepository,
	settings *entities.Settings,
) (time.Duration, error) {
	flag := cmd.Flags().Lookup(inputTimeout)
	if flag != nil && flag.Changed {
		return cmd.Flags().GetDuration(inputTimeout)
	}
	if value := host.Input(inputTimeout); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("input %q is not a valid duration: %w", inputTimeout, err)
		}
		return timeout, nil
	}
	if settings.Timeout != "" {
		return settings.TimeoutDuration(), nil
	}
	if flag != nil {
		return cmd.Flags().GetDuration(inputTimeout)
	}
	return defaultTimeout, nil
}

func pickDryRun(cmd *cobra.Command, host repositories.TaskHostRepository) (bool, error) {
	if flag := cmd.Flags().Lookup(inputDryRun); flag != nil && flag.Changed {
		return cmd.Flags().GetBool(inputDryRun)
	}
	value := host.Input(inputDryRun)
	if value == "" {
		return false, nil
	}
	dryRun, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.New("input \"dry-run\" must be true or false")
	}
	return dryRun, nil
}
