package entities

// RepoDescriptor is one entry of the Repos API listing.
type RepoDescriptor struct {
	ID           int64  `json:"id"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Provider     string `json:"provider"`
	Branch       string `json:"branch"`
	HeadCommitID string `json:"head_commit_id"`
}

// Credential identifies a Databricks workspace and the token used against it.
type Credential struct {
	WorkspaceAccount string
	AccessToken      string
}

// String never renders the token.
func (c Credential) String() string {
	return "Credential{WorkspaceAccount: " + c.WorkspaceAccount + "}"
}

// FindRepoByPath returns the first descriptor whose path equals path exactly.
func FindRepoByPath(repos []RepoDescriptor, path string) (RepoDescriptor, bool) {
	for _, repo := range repos {
		if repo.Path == path {
			return repo, true
		}
	}
	return RepoDescriptor{}, false
}
