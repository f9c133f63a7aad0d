//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
)

// RepoDescriptorBuilder helps create test repo descriptors with a fluent interface.
type RepoDescriptorBuilder struct {
	*testkit.BaseBuilder
	id           int64
	path         string
	url          string
	provider     string
	branch       string
	headCommitID string
}

// NewRepoDescriptorBuilder creates a new repo descriptor builder with sensible defaults.
func NewRepoDescriptorBuilder() *RepoDescriptorBuilder {
	return &RepoDescriptorBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		id:           1,
		path:         "/Repos/production/my-repo",
		url:          "https://github.com/my-user/my-repo.git",
		provider:     "gitHub",
		branch:       "main",
		headCommitID: "dbaf792c6358be6e28da73faf478499185d8f7d0",
	}
}

// WithID sets the repo ID.
func (b *RepoDescriptorBuilder) WithID(id int64) *RepoDescriptorBuilder {
	b.id = id
	return b
}

// WithPath sets the workspace path.
func (b *RepoDescriptorBuilder) WithPath(path string) *RepoDescriptorBuilder {
	b.path = path
	return b
}

// WithBranch sets the checked out branch.
func (b *RepoDescriptorBuilder) WithBranch(branch string) *RepoDescriptorBuilder {
	b.branch = branch
	return b
}

// WithHeadCommitID sets the head commit.
func (b *RepoDescriptorBuilder) WithHeadCommitID(commitID string) *RepoDescriptorBuilder {
	b.headCommitID = commitID
	return b
}

// Build creates the descriptor (satisfies testkit.Builder interface).
func (b *RepoDescriptorBuilder) Build() interface{} {
	return b.BuildRepoDescriptor()
}

// BuildRepoDescriptor creates the descriptor with a concrete return type.
func (b *RepoDescriptorBuilder) BuildRepoDescriptor() entities.RepoDescriptor {
	return entities.RepoDescriptor{
		ID:           b.id,
		Path:         b.path,
		URL:          b.url,
		Provider:     b.provider,
		Branch:       b.branch,
		HeadCommitID: b.headCommitID,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoDescriptorBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = 1
	b.path = "/Repos/production/my-repo"
	b.url = "https://github.com/my-user/my-repo.git"
	b.provider = "gitHub"
	b.branch = "main"
	b.headCommitID = "dbaf792c6358be6e28da73faf478499185d8f7d0"
	return b
}

// Clone creates a deep copy of the RepoDescriptorBuilder.
func (b *RepoDescriptorBuilder) Clone() testkit.Builder {
	return &RepoDescriptorBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:           b.id,
		path:         b.path,
		url:          b.url,
		provider:     b.provider,
		branch:       b.branch,
		headCommitID: b.headCommitID,
	}
}
