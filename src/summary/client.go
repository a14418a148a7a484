// Package summary fetches aggregate spending totals from the external
// reports API.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"finsight-server/src/models"
)

// Client calls the external summary service, forwarding the caller's own
// bearer credential unchanged.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// FetchSummary retrieves the current period's aggregate spend for the
// caller identified by token.
func (c *Client) FetchSummary(ctx context.Context, token string) (*models.SpendingSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/reports/summary", nil)
	if err != nil {
		return nil, fmt.Errorf("build summary request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("summary service returned status %d", resp.StatusCode)
	}

	var s models.SpendingSummary
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}
	return &s, nil
}
