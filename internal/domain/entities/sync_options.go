package entities

import "time"

// SyncInputs is the merged view of CLI flags, task host inputs and the config file.
type SyncInputs struct {
	Account     string
	AccessToken string
	BranchTag   string
	RepoPath    string
	RepoID      string
	DryRun      bool
	Timeout     time.Duration
}

// Credential returns the workspace credential carried by the inputs.
func (i SyncInputs) Credential() Credential {
	return Credential{WorkspaceAccount: i.Account, AccessToken: i.AccessToken}
}

// SyncResult describes a completed (or dry-run) sync.
type SyncResult struct {
	RepoID int64
	Target RefTarget
	Commit string // short commit hash, empty on dry runs
}
