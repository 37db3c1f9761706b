package placeholder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// maxErrorBody caps how much of a failed response ends up in the error.
const maxErrorBody = 256

// Client is a thin HTTP wrapper for a JSONPlaceholder-style API.
// It handles base URL construction and response status checks.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client. A zero timeout means requests never time out.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request against a path relative to the base URL.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.get(ctx, c.baseURL+path)
}

// GetURL performs a GET request against an absolute URL.
func (c *Client) GetURL(ctx context.Context, rawURL string) ([]byte, error) {
	return c.get(ctx, rawURL)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := ansi.Truncate(strings.TrimSpace(string(data)), maxErrorBody, "")
		return nil, fmt.Errorf("GET %s returned %d: %s", url, resp.StatusCode, body)
	}

	return data, nil
}
