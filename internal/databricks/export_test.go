package databricks

import "net/http"

// HTTPClient exposes the underlying HTTP client for testing.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}
