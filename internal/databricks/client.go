package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const reposAPIPath = "/api/2.0/repos"

// Client represents a Databricks Repos API client
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new client for the workspace https://<account>.cloud.databricks.com
func NewClient(account, token string) *Client {
	workspaceURL := fmt.Sprintf("https://%s.cloud.databricks.com", strings.TrimSpace(account))
	return NewClientWithBaseURL(workspaceURL, token, nil)
}

// NewClientWithBaseURL creates a client against an explicit workspace URL.
// The HTTP client carries no timeout of its own: request deadlines come from the context.
func NewClientWithBaseURL(workspaceURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(workspaceURL, "/") + reposAPIPath,
		token:      token,
		httpClient: httpClient,
	}
}

// BaseURL returns the Repos API endpoint every request is issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Repo represents a Databricks repo as returned by the Repos API
type Repo struct {
	ID           int64  `json:"id"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Provider     string `json:"provider"`
	Branch       string `json:"branch"`
	HeadCommitID string `json:"head_commit_id"`
}

// UpdateRepoRequest is the body of a repo update. Exactly one field is set.
type UpdateRepoRequest struct {
	Branch *string `json:"branch,omitempty"`
	Tag    *string `json:"tag,omitempty"`
}

// ResponseError is returned for every non-2xx answer
type ResponseError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *ResponseError) Error() string {
	return strconv.Itoa(e.StatusCode) + " " + e.Message
}

// ListRepos returns the repos whose path starts with pathPrefix
func (c *Client) ListRepos(ctx context.Context, pathPrefix string) ([]Repo, error) {
	query := url.Values{"path_prefix": []string{pathPrefix}}

	var result struct {
		Repos []Repo `json:"repos"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "?"+query.Encode(), nil, &result); err != nil {
		return nil, err
	}

	if result.Repos == nil {
		return []Repo{}, nil
	}
	return result.Repos, nil
}

// UpdateRepo checks out the given branch or tag and returns the updated repo
func (c *Client) UpdateRepo(ctx context.Context, repoID int64, req UpdateRepoRequest) (*Repo, error) {
	endpoint := "/" + strconv.FormatInt(repoID, 10)

	var repo Repo
	if err := c.doRequest(ctx, http.MethodPatch, endpoint, req, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newResponseError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// newResponseError decodes the error body on a best-effort basis.
func newResponseError(statusCode int, body []byte) *ResponseError {
	var payload struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &ResponseError{
		StatusCode: statusCode,
		ErrorCode:  payload.ErrorCode,
		Message:    message,
	}
}
