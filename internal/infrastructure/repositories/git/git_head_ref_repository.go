package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// GitHeadRefRepository implements repositories.HeadRefRepository with go-git.
type GitHeadRefRepository struct{}

var _ repositories.HeadRefRepository = (*GitHeadRefRepository)(nil)

// NewHeadRefRepository creates a new GitHeadRefRepository.
func NewHeadRefRepository() *GitHeadRefRepository {
	return &GitHeadRefRepository{}
}

// HeadRef returns the full name of the ref checked out in dir (or a parent of it).
// A detached HEAD is resolved to a tag pointing at the same commit, which is how
// CI runners check out tag pushes.
func (it *GitHeadRefRepository) HeadRef(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if head.Name().IsBranch() {
		return head.Name().String(), nil
	}

	tag, err := tagAt(repo, head.Hash())
	if err != nil {
		return "", err
	}
	if tag == "" {
		return "", fmt.Errorf("HEAD is detached at %s and no tag points at it", head.Hash().String())
	}
	return tag, nil
}

func tagAt(repo *gogit.Repository, hash plumbing.Hash) (string, error) {
	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	var found string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if annotated, tagErr := repo.TagObject(ref.Hash()); tagErr == nil {
			target = annotated.Target
		} else if !errors.Is(tagErr, plumbing.ErrObjectNotFound) {
			return tagErr
		}

		if target == hash {
			found = ref.Name().String()
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return "", fmt.Errorf("failed to resolve tags: %w", err)
	}
	return found, nil
}
