//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// StubHeadRefRepository implements repositories.HeadRefRepository with a fixed answer.
type StubHeadRefRepository struct {
	Ref       string
	Err       error
	CallCount int
}

var _ repositories.HeadRefRepository = (*StubHeadRefRepository)(nil)

func (s *StubHeadRefRepository) HeadRef(_ string) (string, error) {
	s.CallCount++
	return s.Ref, s.Err
}
