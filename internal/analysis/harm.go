package analysis

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/northwatch/harmscan/internal/domain"
	"github.com/northwatch/harmscan/internal/logging"
)

// Sentinel errors for the scoring backend.
var (
	// ErrBackendUnavailable means the model backend could not be reached at
	// all. Once seen, the scorer stays in degraded mode.
	ErrBackendUnavailable = errors.New("model backend unavailable")
	// ErrInference means a single prediction failed; later requests may
	// still succeed.
	ErrInference = errors.New("model inference failed")
)

// Catch-all scores used when scoring fails in an unexpected way.
const (
	fallbackScoreWithPatterns = 0.3
	fallbackScoreNoPatterns   = 0.1
)

// ModelProvider produces harm probabilities from a learned model.
type ModelProvider interface {
	Predict(ctx context.Context, text string) (float64, error)
	Health(ctx context.Context) error
}

// HarmScorer fuses pattern detection with an optional model backend.
// When the backend is disabled or unreachable it degrades to pattern-only
// scoring rather than failing the request.
type HarmScorer struct {
	provider ModelProvider
	logger   logging.Logger
	enabled  bool

	// backendDown latches once the backend is known unreachable.
	backendDown atomic.Bool
}

// NewHarmScorer creates a harm scorer. A nil provider or enabled=false
// yields a permanently degraded scorer.
func NewHarmScorer(provider ModelProvider, logger logging.Logger, enabled bool) *HarmScorer {
	s := &HarmScorer{
		provider: provider,
		logger:   logger,
		enabled:  enabled,
	}
	if provider == nil || !enabled {
		s.backendDown.Store(true)
	}
	return s
}

// Probe checks the backend once at startup and latches degraded mode if it
// is unreachable. Safe to skip; the first Predict failure degrades too.
func (s *HarmScorer) Probe(ctx context.Context) {
	if s.provider == nil || !s.enabled {
		return
	}
	if err := s.provider.Health(ctx); err != nil {
		s.backendDown.Store(true)
		s.logger.Warn("Model backend unreachable, using pattern-only scoring",
			logging.Error(err))
	}
}

// ModelAvailable reports whether the model backend is currently in use.
func (s *HarmScorer) ModelAvailable() bool {
	return !s.backendDown.Load()
}

// Score produces a harm assessment for text. The result is always usable;
// backend failures surface as Degraded=true with reduced confidence, never
// as an error.
func (s *HarmScorer) Score(ctx context.Context, text string) domain.HarmAssessment {
	hits := DetectPatterns(text)

	if s.backendDown.Load() {
		return s.degraded(text, hits, ConfidenceDegraded)
	}

	modelScore, err := s.provider.Predict(ctx, text)
	switch {
	case err == nil:
		score, confidence := FuseWithModel(modelScore, hits)
		return domain.HarmAssessment{
			HarmScore:  score,
			HarmIndex:  domain.HarmIndexForScore(score),
			RiskLevel:  domain.RiskLevelForScore(score),
			Confidence: confidence,
			Patterns:   hits,
			ModelUsed:  true,
		}

	case errors.Is(err, ErrBackendUnavailable):
		s.backendDown.Store(true)
		s.logger.Warn("Model backend went away, latching pattern-only scoring",
			logging.Error(err))
		return s.degraded(text, hits, ConfidenceDegraded)

	case errors.Is(err, ErrInference):
		s.logger.Warn("Model inference failed for request",
			logging.Error(err))
		return s.degraded(text, hits, ConfidenceInference)

	default:
		s.logger.Error("Unexpected scoring error", logging.Error(err))
		score := fallbackScoreNoPatterns
		if len(hits) > 0 {
			score = fallbackScoreWithPatterns
		}
		return domain.HarmAssessment{
			HarmScore:  score,
			HarmIndex:  domain.HarmIndexForScore(score),
			RiskLevel:  domain.RiskLevelForScore(score),
			Confidence: ConfidenceFallback,
			Patterns:   hits,
			Degraded:   true,
		}
	}
}

func (s *HarmScorer) degraded(text string, hits []domain.PatternHit, confidence float64) domain.HarmAssessment {
	score := FuseDegraded(text, hits)
	return domain.HarmAssessment{
		HarmScore:  score,
		HarmIndex:  domain.HarmIndexForScore(score),
		RiskLevel:  domain.RiskLevelForScore(score),
		Confidence: confidence,
		Patterns:   hits,
		Degraded:   true,
	}
}
