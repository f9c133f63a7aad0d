//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// SpyTaskHostRepository implements repositories.TaskHostRepository as a configurable spy.
type SpyTaskHostRepository struct {
	// --- Input ---
	Inputs map[string]string

	// --- SetOutput ---
	Outputs   map[string]string
	OutputErr error

	// --- SetSecret ---
	Secrets []string

	// --- Info / Warning ---
	InfoMessages    []string
	WarningMessages []string

	// --- SetFailed ---
	FailedMessages []string
}

var _ repositories.TaskHostRepository = (*SpyTaskHostRepository)(nil)

func (s *SpyTaskHostRepository) Input(name string) string {
	return s.Inputs[name]
}

func (s *SpyTaskHostRepository) SetOutput(name, value string) error {
	if s.OutputErr != nil {
		return s.OutputErr
	}
	if s.Outputs == nil {
		s.Outputs = make(map[string]string)
	}
	s.Outputs[name] = value
	return nil
}

func (s *SpyTaskHostRepository) SetSecret(value string) {
	s.Secrets = append(s.Secrets, value)
}

func (s *SpyTaskHostRepository) Info(message string) {
	s.InfoMessages = append(s.InfoMessages, message)
}

func (s *SpyTaskHostRepository) Warning(message string) {
	s.WarningMessages = append(s.WarningMessages, message)
}

func (s *SpyTaskHostRepository) SetFailed(message string) {
	s.FailedMessages = append(s.FailedMessages, message)
}

func (s *SpyTaskHostRepository) Failed() bool {
	return len(s.FailedMessages) > 0
}
