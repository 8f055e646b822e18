// Package vectorclient is the HTTP client for the narrative-index sidecar,
// which serves similarity search over known false narratives.
package vectorclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/northwatch/harmscan/internal/scoretransport"
)

// ErrUnavailable indicates the narrative-index sidecar is unreachable.
var ErrUnavailable = errors.New("narrative index service unavailable")

// Client is an HTTP client for the narrative-index sidecar.
type Client struct {
	baseURL    string
	topK       int
	httpClient *http.Client
}

// Match is one indexed narrative with its similarity to the query.
type Match struct {
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

type searchRequest struct {
	Text string `json:"text"`
	TopK int    `json:"top_k"`
}

type searchResponse struct {
	Matches []Match `json:"matches"`
}

// NewClient creates a new narrative-index client.
func NewClient(baseURL string, topK int, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		topK:       topK,
		httpClient: scoretransport.NewHTTPClient(timeout),
	}
}

// Search returns the indexed narratives most similar to text.
func (c *Client) Search(ctx context.Context, text string) ([]Match, error) {
	req := searchRequest{Text: text, TopK: c.topK}
	var result searchResponse
	if err := scoretransport.DoPost(ctx, c.httpClient, c.baseURL, "/search", &req, &result); err != nil {
		if errors.Is(err, scoretransport.ErrUnreachable) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("search: %w", err)
	}
	return result.Matches, nil
}

// Health checks if the narrative-index sidecar is healthy.
func (c *Client) Health(ctx context.Context) error {
	reachable, _, _, err := scoretransport.DoHealth(ctx, c.httpClient, c.baseURL)
	if err != nil {
		if !reachable {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	return nil
}
