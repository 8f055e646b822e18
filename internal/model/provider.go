// Package model wraps the harm-model sidecar client with rate limiting and
// a circuit breaker, presenting it as a scoring backend for analysis.
package model

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/northwatch/harmscan/internal/analysis"
	"github.com/northwatch/harmscan/internal/logging"
	"github.com/northwatch/harmscan/internal/modelclient"
)

// Provider satisfies analysis.ModelProvider. All runtime prediction
// failures surface as analysis.ErrInference so scoring degrades per
// request instead of failing; the breaker keeps a dead sidecar from
// eating a timeout on every call.
type Provider struct {
	client  *modelclient.Client
	breaker *Breaker
	limiter *rate.Limiter
	logger  logging.Logger
}

// NewProvider wraps a harm-model client. rps bounds outbound prediction
// calls; burst equals rps.
func NewProvider(client *modelclient.Client, rps int, logger logging.Logger) *Provider {
	if rps <= 0 {
		rps = 100
	}

	breaker := NewBreaker(BreakerConfig{
		OnStateChange: func(from, to BreakerState) {
			logger.Warn("Model breaker state changed",
				logging.String("from", from.String()),
				logging.String("to", to.String()))
		},
	})

	return &Provider{
		client:  client,
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		logger:  logger,
	}
}

// Predict returns the model's harm probability for text.
func (p *Provider) Predict(ctx context.Context, text string) (float64, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limit wait: %w", analysis.ErrInference, err)
	}

	var score float64
	err := p.breaker.Execute(func() error {
		resp, predictErr := p.client.Predict(ctx, text)
		if predictErr != nil {
			return predictErr
		}
		score = resp.HarmScore
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", analysis.ErrInference, err)
	}

	return score, nil
}

// Health probes the sidecar directly, bypassing the breaker.
func (p *Provider) Health(ctx context.Context) error {
	if err := p.client.Health(ctx); err != nil {
		return fmt.Errorf("%w: %w", analysis.ErrBackendUnavailable, err)
	}
	return nil
}
