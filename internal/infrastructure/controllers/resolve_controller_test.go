//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/databricks-sync/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/databricks-sync/test/infrastructure/repositorydoubles"
)

func TestResolveControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the repo path to the command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubResolveCommand{ExecuteRepoID: 3}
		host := &doubles.SpyTaskHostRepository{}
		controller := controllers.NewResolveController(command, host)
		cmd := newCobraCommand(t, controller,
			"--account", "my-instance",
			"--access-token", "my-token",
			"--repo-path", "/Repos/staging/my-repo",
		)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "/Repos/staging/my-repo", command.LastInputs.RepoPath)
		assert.False(t, host.Failed())
	})

	t.Run("should mark the run failed when resolution fails", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubResolveCommand{ExecuteErr: entities.ErrMissingRepo}
		host := &doubles.SpyTaskHostRepository{}
		controller := controllers.NewResolveController(command, host)
		cmd := newCobraCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, []string{"Must supply a repo-id or repo-path!"}, host.FailedMessages)
	})
}
