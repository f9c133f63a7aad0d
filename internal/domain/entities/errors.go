package entities

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMissingRepo is returned when neither a repo ID nor a repo path was supplied.
	ErrMissingRepo = errors.New("Must supply a repo-id or repo-path!") //nolint:staticcheck // message shown verbatim in CI

	// ErrMissingInput is returned when a required input is empty.
	ErrMissingInput = errors.New("Input required and not supplied") //nolint:staticcheck // message shown verbatim in CI
)

// MalformedRefError is returned when a ref string is not of the form refs/<kind>/<name>.
type MalformedRefError struct {
	Ref string
}

func (e *MalformedRefError) Error() string {
	return "Failed to parse branch/tag from " + e.Ref
}

// InvalidSyncArgsError is returned when a sync is requested with zero or two of branch/tag.
type InvalidSyncArgsError struct {
	Branch *string
	Tag    *string
}

func (e *InvalidSyncArgsError) Error() string {
	return fmt.Sprintf(
		"Must supply a branch or tag! Got branch %s, tag %s",
		describeOptional(e.Branch), describeOptional(e.Tag),
	)
}

func describeOptional(value *string) string {
	if value == nil {
		return "null"
	}
	return *value
}

// RepoNotFoundError is returned when the listing contains no repo with the exact path.
type RepoNotFoundError struct {
	Path string
}

func (e *RepoNotFoundError) Error() string {
	return fmt.Sprintf("Repo path %s not found", e.Path)
}

// APIError is a non-2xx answer from the Repos API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return strconv.Itoa(e.StatusCode) + " " + e.Message
}

// RepoResolutionError wraps every failure of a repo path lookup.
type RepoResolutionError struct {
	Err error
}

func (e *RepoResolutionError) Error() string {
	return fmt.Sprintf("Failed to get repo id: %v", e.Err)
}

func (e *RepoResolutionError) Unwrap() error { return e.Err }

// RepoSyncError wraps every failure of a sync request.
type RepoSyncError struct {
	Err error
}

func (e *RepoSyncError) Error() string {
	return fmt.Sprintf("Failed to sync databricks repo: %v", e.Err)
}

func (e *RepoSyncError) Unwrap() error { return e.Err }

// TimeoutError is returned instead of RepoResolutionError or RepoSyncError
// when the request did not complete before its deadline.
type TimeoutError struct {
	Operation string
	Err       error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Timed out while trying to %s: %v", e.Operation, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
