//go:build unit

package databricks_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbx "github.com/rios0rios0/databricks-sync/internal/databricks"
	"github.com/rios0rios0/databricks-sync/internal/domain/entities"
	"github.com/rios0rios0/databricks-sync/internal/infrastructure/repositories/databricks"
	builders "github.com/rios0rios0/databricks-sync/test/domain/entitybuilders"
)

const testToken = "my-token"

func newTestRepository(t *testing.T, handler http.HandlerFunc) *databricks.DatabricksReposRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := dbx.NewClientWithBaseURL(server.URL, testToken, server.Client())
	return databricks.NewReposRepositoryWithClient(client)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func listingPayload() map[string]interface{} {
	return map[string]interface{}{
		"repos": []entities.RepoDescriptor{
			builders.NewRepoDescriptorBuilder().
				WithID(1).WithPath("/Repos/production/my-repo").WithBranch("main").
				BuildRepoDescriptor(),
			builders.NewRepoDescriptorBuilder().
				WithID(2).WithPath("/Repos/integration/my-repo").WithBranch("integration").
				BuildRepoDescriptor(),
			builders.NewRepoDescriptorBuilder().
				WithID(3).WithPath("/Repos/staging/my-repo").WithBranch("staging").
				BuildRepoDescriptor(),
		},
	}
}

func TestResolveRepoID(t *testing.T) {
	t.Parallel()

	t.Run("should return the ID of the production repo", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Repos/production/my-repo", r.URL.Query().Get("path_prefix"))
			writeJSON(t, w, http.StatusOK, listingPayload())
		})

		// when
		id, err := repo.ResolveRepoID(context.Background(), "/Repos/production/my-repo")

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("should return only the exact match among prefix matches", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, listingPayload())
		})

		// when
		id, err := repo.ResolveRepoID(context.Background(), "/Repos/staging/my-repo")

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("should fail when no repo matches the path", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]interface{}{})
		})

		// when
		_, err := repo.ResolveRepoID(context.Background(), "/Repos/nonexist/my-repo")

		// then
		require.EqualError(t, err, "Failed to get repo id: Repo path /Repos/nonexist/my-repo not found")
		var notFound *entities.RepoNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "/Repos/nonexist/my-repo", notFound.Path)
		var resolution *entities.RepoResolutionError
		assert.ErrorAs(t, err, &resolution)
	})

	t.Run("should send a GET with the fixed headers", func(t *testing.T) {
		t.Parallel()

		// given
		var captured *http.Request
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r
			writeJSON(t, w, http.StatusOK, listingPayload())
		})

		// when
		_, err := repo.ResolveRepoID(context.Background(), "/Repos/production/my-repo")

		// then
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, http.MethodGet, captured.Method)
		assert.Equal(t, "/api/2.0/repos", captured.URL.Path)
		assert.Equal(t, "Bearer "+testToken, captured.Header.Get("Authorization"))
		assert.Equal(t, "application/json", captured.Header.Get("Accept"))
		assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	})

	t.Run("should surface the status and server message", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusForbidden, map[string]string{
				"error_code": "PERMISSION_DENIED",
				"message":    "Invalid access token",
			})
		})

		// when
		_, err := repo.ResolveRepoID(context.Background(), "/Repos/production/my-repo")

		// then
		require.EqualError(t, err, "Failed to get repo id: 403 Invalid access token")
		var apiErr *entities.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("should report a lookup timeout distinctly", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// when
		_, err := repo.ResolveRepoID(ctx, "/Repos/production/my-repo")

		// then
		var timeoutErr *entities.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, "get repo id", timeoutErr.Operation)
		var resolutionErr *entities.RepoResolutionError
		assert.NotErrorAs(t, err, &resolutionErr)
	})
}

func TestSyncRepo(t *testing.T) {
	t.Parallel()

	const (
		repoID      = int64(1)
		fullCommit  = "d742706479c54028478a672ff4296d4d437bdd2a"
		shortCommit = "d742706"
	)

	syncPayload := map[string]interface{}{
		"id":             1,
		"url":            "https://github.com/my-user/my-repo.git",
		"provider":       "gitHub",
		"branch":         "master",
		"head_commit_id": fullCommit,
	}

	t.Run("should sync using a branch", func(t *testing.T) {
		t.Parallel()

		// given
		var body string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body = string(raw)
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/2.0/repos/1", r.URL.Path)
			writeJSON(t, w, http.StatusOK, syncPayload)
		})

		// when
		commit, err := repo.SyncRepo(context.Background(), repoID, entities.Branch("main"))

		// then
		require.NoError(t, err)
		assert.Equal(t, shortCommit, commit)
		assert.JSONEq(t, `{"branch":"main"}`, body)
	})

	t.Run("should sync using a tag", func(t *testing.T) {
		t.Parallel()

		// given
		var body string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body = string(raw)
			writeJSON(t, w, http.StatusOK, syncPayload)
		})

		// when
		commit, err := repo.SyncRepo(context.Background(), repoID, entities.Tag("v1.0.0"))

		// then
		require.NoError(t, err)
		assert.Equal(t, shortCommit, commit)
		assert.JSONEq(t, `{"tag":"v1.0.0"}`, body)
	})

	t.Run("should fail without calling the API when no branch or tag is given", func(t *testing.T) {
		t.Parallel()

		// given
		var calls atomic.Int32
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeJSON(t, w, http.StatusOK, syncPayload)
		})

		// when
		_, err := repo.SyncRepo(context.Background(), repoID, entities.RefTarget{})

		// then
		require.EqualError(t, err, "Must supply a branch or tag! Got branch null, tag null")
		var invalid *entities.InvalidSyncArgsError
		assert.ErrorAs(t, err, &invalid)
		assert.Zero(t, calls.Load())
	})

	t.Run("should surface a missing repo", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, map[string]string{
				"error_code": "RESOURCE_DOES_NOT_EXIST",
				"message":    "Repo could not be found",
			})
		})

		// when
		_, err := repo.SyncRepo(context.Background(), repoID, entities.Branch("main"))

		// then
		require.EqualError(t, err, "Failed to sync databricks repo: 404 Repo could not be found")
		var syncErr *entities.RepoSyncError
		assert.ErrorAs(t, err, &syncErr)
	})

	t.Run("should fall back to the status text when the error body is not JSON", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>upstream down</html>"))
		})

		// when
		_, err := repo.SyncRepo(context.Background(), repoID, entities.Branch("main"))

		// then
		require.EqualError(t, err, "Failed to sync databricks repo: 502 Bad Gateway")
	})

	t.Run("should fail when the response has no head commit", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]interface{}{"id": 1})
		})

		// when
		_, err := repo.SyncRepo(context.Background(), repoID, entities.Branch("main"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to sync databricks repo:")
		assert.Contains(t, err.Error(), "head_commit_id")
	})

	t.Run("should send the fixed headers", func(t *testing.T) {
		t.Parallel()

		// given
		var captured http.Header
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			captured = r.Header.Clone()
			writeJSON(t, w, http.StatusOK, syncPayload)
		})

		// when
		_, err := repo.SyncRepo(context.Background(), repoID, entities.Branch("main"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+testToken, captured.Get("Authorization"))
		assert.Equal(t, "application/json", captured.Get("Accept"))
		assert.Equal(t, "application/json", captured.Get("Content-Type"))
	})

	t.Run("should report a timeout distinctly", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// when
		_, err := repo.SyncRepo(ctx, repoID, entities.Branch("main"))

		// then
		var timeoutErr *entities.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		var syncErr *entities.RepoSyncError
		assert.NotErrorAs(t, err, &syncErr)
	})

	t.Run("should wait for a slow workspace when the context has no deadline", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writeJSON(t, w, http.StatusOK, syncPayload)
		}))
		t.Cleanup(server.Close)
		repo := databricks.NewReposRepositoryWithClient(dbx.NewClientWithBaseURL(server.URL, testToken, nil))

		// when
		commit, err := repo.SyncRepo(context.Background(), repoID, entities.Branch("main"))

		// then
		require.NoError(t, err)
		assert.Equal(t, shortCommit, commit)
	})

	t.Run("should honour a context deadline longer than the response time", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writeJSON(t, w, http.StatusOK, syncPayload)
		}))
		t.Cleanup(server.Close)
		repo := databricks.NewReposRepositoryWithClient(dbx.NewClientWithBaseURL(server.URL, testToken, nil))
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		// when
		commit, err := repo.SyncRepo(ctx, repoID, entities.Branch("main"))

		// then
		require.NoError(t, err)
		assert.Equal(t, shortCommit, commit)
	})
}
