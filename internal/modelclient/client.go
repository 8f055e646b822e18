// Package modelclient is the HTTP client for the harm-model sidecar.
package modelclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/northwatch/harmscan/internal/scoretransport"
)

// ErrUnavailable indicates the harm-model sidecar is unreachable.
var ErrUnavailable = errors.New("harm model service unavailable")

// Client is an HTTP client for the harm-model sidecar.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// PredictResponse is the response body from /predict.
type PredictResponse struct {
	HarmScore  float64 `json:"harm_score"`
	Confidence float64 `json:"confidence"`
}

type predictRequest struct {
	Text string `json:"text"`
}

// NewClient creates a new harm-model client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: scoretransport.NewHTTPClient(timeout),
	}
}

// Predict requests a harm probability for text.
func (c *Client) Predict(ctx context.Context, text string) (*PredictResponse, error) {
	req := predictRequest{Text: text}
	var result PredictResponse
	if err := scoretransport.DoPost(ctx, c.httpClient, c.baseURL, "/predict", &req, &result); err != nil {
		if errors.Is(err, scoretransport.ErrUnreachable) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("predict: %w", err)
	}
	return &result, nil
}

// Health checks if the harm-model sidecar is healthy.
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
