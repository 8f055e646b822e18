//nolint:testpackage // Testing internal scoring requires same package access
package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/northwatch/harmscan/internal/domain"
	"github.com/northwatch/harmscan/internal/logging"
)

type stubProvider struct {
	score      float64
	predictErr error
	healthErr  error
	calls      int
}

func (s *stubProvider) Predict(_ context.Context, _ string) (float64, error) {
	s.calls++
	if s.predictErr != nil {
		return 0, s.predictErr
	}
	return s.score, nil
}

func (s *stubProvider) Health(_ context.Context) error {
	return s.healthErr
}

func TestHarmScorer_ModelPath(t *testing.T) {
	provider := &stubProvider{score: 0.8}
	scorer := NewHarmScorer(provider, logging.NewNop(), true)

	result := scorer.Score(context.Background(), "they are hiding the truth")

	if result.Degraded {
		t.Error("expected non-degraded result")
	}
	if !result.ModelUsed {
		t.Error("expected ModelUsed")
	}
	if len(result.Patterns) == 0 {
		t.Error("expected pattern hits")
	}

	wantScore, wantConf := FuseWithModel(0.8, result.Patterns)
	if !almostEqual(result.HarmScore, wantScore) {
		t.Errorf("expected score %f, got %f", wantScore, result.HarmScore)
	}
	if !almostEqual(result.Confidence, wantConf) {
		t.Errorf("expected confidence %f, got %f", wantConf, result.Confidence)
	}
}

func TestHarmScorer_DisabledIsDegraded(t *testing.T) {
	scorer := NewHarmScorer(nil, logging.NewNop(), false)

	result := scorer.Score(context.Background(), "urgent warning share now")

	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Confidence != ConfidenceDegraded {
		t.Errorf("expected confidence %f, got %f", ConfidenceDegraded, result.Confidence)
	}
	if result.ModelUsed {
		t.Error("expected ModelUsed=false")
	}
}

func TestHarmScorer_InferenceFailure(t *testing.T) {
	provider := &stubProvider{predictErr: fmt.Errorf("%w: timeout", ErrInference)}
	scorer := NewHarmScorer(provider, logging.NewNop(), true)

	result := scorer.Score(context.Background(), "urgent warning")

	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Confidence != ConfidenceInference {
		t.Errorf("expected confidence %f, got %f", ConfidenceInference, result.Confidence)
	}

	// Inference failures do not latch; the next request tries again.
	if !scorer.ModelAvailable() {
		t.Error("expected model still available after inference failure")
	}
}

func TestHarmScorer_BackendUnavailableLatches(t *testing.T) {
	provider := &stubProvider{predictErr: fmt.Errorf("%w: refused", ErrBackendUnavailable)}
	scorer := NewHarmScorer(provider, logging.NewNop(), true)

	first := scorer.Score(context.Background(), "some text")
	if !first.Degraded || first.Confidence != ConfidenceDegraded {
		t.Fatalf("expected latched degraded result, got %+v", first)
	}

	// Second request must not touch the provider again.
	callsAfterFirst := provider.calls
	scorer.Score(context.Background(), "other text")
	if provider.calls != callsAfterFirst {
		t.Errorf("expected no further provider calls, got %d", provider.calls-callsAfterFirst)
	}
}

func TestHarmScorer_ProbeLatchesOnFailure(t *testing.T) {
	provider := &stubProvider{healthErr: errors.New("connection refused")}
	scorer := NewHarmScorer(provider, logging.NewNop(), true)

	scorer.Probe(context.Background())

	if scorer.ModelAvailable() {
		t.Fatal("expected probe failure to latch degraded mode")
	}

	result := scorer.Score(context.Background(), "some text")
	if result.Confidence != ConfidenceDegraded {
		t.Errorf("expected confidence %f, got %f", ConfidenceDegraded, result.Confidence)
	}
	if provider.calls != 0 {
		t.Errorf("expected no predict calls, got %d", provider.calls)
	}
}

func TestHarmScorer_UnexpectedErrorFallback(t *testing.T) {
	provider := &stubProvider{predictErr: errors.New("panic in decoder")}
	scorer := NewHarmScorer(provider, logging.NewNop(), true)

	withPatterns := scorer.Score(context.Background(), "urgent warning share this")
	if withPatterns.HarmScore != 0.3 {
		t.Errorf("expected fallback score 0.3, got %f", withPatterns.HarmScore)
	}
	if withPatterns.Confidence != ConfidenceFallback {
		t.Errorf("expected confidence %f, got %f", ConfidenceFallback, withPatterns.Confidence)
	}

	clean := scorer.Score(context.Background(), "pleasant afternoon")
	if clean.HarmScore != 0.1 {
		t.Errorf("expected fallback score 0.1, got %f", clean.HarmScore)
	}
}

func TestHarmScorer_DegradedConspiracyText(t *testing.T) {
	scorer := NewHarmScorer(nil, logging.NewNop(), false)

	result := scorer.Score(context.Background(),
		"They are hiding the truth, share this now before it's too late!")

	categories := map[string]bool{}
	for _, h := range result.Patterns {
		categories[h.Category] = true
	}
	for _, want := range []string{"conspiracy", "cta", "urgency"} {
		if !categories[want] {
			t.Errorf("expected %s hit, got %v", want, categories)
		}
	}

	if result.HarmScore <= 0 {
		t.Errorf("expected positive score, got %f", result.HarmScore)
	}
	if result.Confidence != ConfidenceDegraded {
		t.Errorf("expected confidence %f, got %f", ConfidenceDegraded, result.Confidence)
	}

	want := FuseDegraded("They are hiding the truth, share this now before it's too late!",
		result.Patterns)
	if !almostEqual(result.HarmScore, want) {
		t.Errorf("expected score %f, got %f", want, result.HarmScore)
	}
}

func TestHarmScorer_RiskLevels(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{0.85, domain.RiskLevelHigh},
		{0.7, domain.RiskLevelHigh},
		{0.5, domain.RiskLevelMedium},
		{0.4, domain.RiskLevelMedium},
		{0.39, domain.RiskLevelLow},
		{0, domain.RiskLevelLow},
	}

	for _, tt := range tests {
		if got := domain.RiskLevelForScore(tt.score); got != tt.want {
			t.Errorf("RiskLevelForScore(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
