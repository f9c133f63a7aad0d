package actions

import (
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/databricks-sync/internal/domain/repositories"
)

// ActionsTaskHostRepository implements repositories.TaskHostRepository for GitHub Actions.
// Inputs come from INPUT_* variables and outputs go to the $GITHUB_OUTPUT file.
type ActionsTaskHostRepository struct {
	action *githubactions.Action
	failed bool
}

var _ repositories.TaskHostRepository = (*ActionsTaskHostRepository)(nil)

// NewTaskHostRepository creates a task host bound to the process environment and stdout.
func NewTaskHostRepository() *ActionsTaskHostRepository {
	return NewTaskHostRepositoryWith(os.Stdout, os.Getenv)
}

// NewTaskHostRepositoryWith creates a task host with an explicit command stream and environment.
func NewTaskHostRepositoryWith(out io.Writer, getenv func(string) string) *ActionsTaskHostRepository {
	return &ActionsTaskHostRepository{
		action: githubactions.New(
			githubactions.WithWriter(out),
			githubactions.WithGetenv(getenv),
		),
	}
}

// Input returns the trimmed value of the named step input, or "" when unset.
func (it *ActionsTaskHostRepository) Input(name string) string {
	return it.action.GetInput(name)
}

// SetOutput publishes a step output. A failure to write the output file is returned, not raised.
func (it *ActionsTaskHostRepository) SetOutput(name, value string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("failed to set output %q: %v", name, recovered)
		}
	}()

	it.action.SetOutput(name, value)
	return nil
}

// SetSecret masks value in every later log line of the job.
func (it *ActionsTaskHostRepository) SetSecret(value string) {
	if value == "" {
		return
	}
	it.action.AddMask(value)
}

func (it *ActionsTaskHostRepository) Info(message string) {
	logger.Info(message)
}

func (it *ActionsTaskHostRepository) Warning(message string) {
	logger.Warn(message)
	it.action.Warningf("%s", message)
}

// SetFailed annotates the step with the message; the process exits non-zero afterwards.
func (it *ActionsTaskHostRepository) SetFailed(message string) {
	it.failed = true
	logger.Error(message)
	it.action.Errorf("%s", message)
}

func (it *ActionsTaskHostRepository) Failed() bool {
	return it.failed
}
