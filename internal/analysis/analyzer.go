package analysis

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/northwatch/harmscan/internal/domain"
	"github.com/northwatch/harmscan/internal/logging"
	"github.com/northwatch/harmscan/internal/narrative"
	"github.com/northwatch/harmscan/internal/telemetry"
	"github.com/northwatch/harmscan/internal/trend"
)

// NarrativeIndex searches known false narratives for similar claims.
type NarrativeIndex interface {
	Search(ctx context.Context, text string) ([]NarrativeMatch, error)
}

// HistoryRecorder persists one risk observation per detected category.
type HistoryRecorder interface {
	Record(ctx context.Context, category string, score float64, observedAt time.Time) error
}

// Analyzer runs the full pipeline: harm scoring, intent, emotion, optional
// narrative verification, trend context, and rendered explanation.
type Analyzer struct {
	harm        *HarmScorer
	index       NarrativeIndex
	categorizer *trend.Categorizer
	trends      *trend.Engine
	recorder    HistoryRecorder
	metrics     *telemetry.Metrics
	tracer      trace.Tracer
	logger      logging.Logger
}

// NewAnalyzer wires the analysis pipeline. index and recorder may be nil;
// the corresponding stages are skipped.
func NewAnalyzer(
	harm *HarmScorer,
	index NarrativeIndex,
	categorizer *trend.Categorizer,
	trends *trend.Engine,
	recorder HistoryRecorder,
	provider *telemetry.Provider,
	logger logging.Logger,
) *Analyzer {
	return &Analyzer{
		harm:        harm,
		index:       index,
		categorizer: categorizer,
		trends:      trends,
		recorder:    recorder,
		metrics:     provider.Metrics,
		tracer:      provider.Tracer,
		logger:      logger,
	}
}

// Analyze produces the composite assessment for text. Sidecar and storage
// failures degrade the result rather than failing it; only trend storage
// read errors propagate.
func (a *Analyzer) Analyze(ctx context.Context, text string) (domain.Analysis, error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "analysis.Analyze",
		trace.WithAttributes(attribute.Int("text_length", len(text))))
	defer span.End()

	result := domain.Analysis{
		Harm:       a.harm.Score(ctx, text),
		Intent:     AnalyzeIntent(text),
		Emotion:    DetectEmotion(text),
		AnalyzedAt: time.Now().UTC(),
	}

	result.Verification = a.verify(ctx, text)
	a.addTrendContext(ctx, text, &result)

	result.Explanation = narrative.Explain(result)
	result.Insights = narrative.Insights(result)
	result.Recommendations = narrative.Recommendations(result.Harm.RiskLevel)

	a.roundForPresentation(&result)
	a.observe(text, &result, time.Since(start))

	return result, nil
}

// Verify checks text against the narrative index alone. Returns nil when
// no index is configured or the lookup fails.
func (a *Analyzer) Verify(ctx context.Context, text string) *domain.Verification {
	v := a.verify(ctx, text)
	if v != nil {
		v.MaxSimilarity = domain.Round3(v.MaxSimilarity)
	}
	return v
}

// verify queries the narrative index. A missing or failing index yields a
// nil verification, not an error.
func (a *Analyzer) verify(ctx context.Context, text string) *domain.Verification {
	if a.index == nil {
		return nil
	}

	matches, err := a.index.Search(ctx, text)
	if err != nil {
		a.logSidecarError("narrative-index", err)
		a.metrics.VectorCallsTotal.WithLabelValues("error").Inc()
		return nil
	}
	a.metrics.VectorCallsTotal.WithLabelValues("success").Inc()

	v := CalibrateSimilarity(matches)
	return &v
}

func (a *Analyzer) addTrendContext(ctx context.Context, text string, result *domain.Analysis) {
	result.Categories = a.categorizer.Categorize(text)

	if a.recorder != nil {
		now := time.Now().UTC()
		for _, cat := range result.Categories {
			if err := a.recorder.Record(ctx, cat, result.Harm.HarmScore, now); err != nil {
				a.logger.Warn("Failed to record trend observation",
					logging.String("category", cat),
					logging.Error(err))
			}
		}
	}

	trends, forecast, err := a.trends.AnalyzeAll(ctx, result.Categories)
	if err != nil {
		a.logger.Warn("Trend analysis unavailable", logging.Error(err))
		return
	}

	result.Trends = trends
	result.Forecast = forecast
	result.HistoricalContext = narrative.HistoricalContext(trends)
	result.Incidents = trend.SimilarIncidents(result.Categories)

	for _, t := range trends {
		a.metrics.TrendQueriesTotal.WithLabelValues(t.Category).Inc()
		if t.SpikeDetected {
			a.metrics.SpikesTotal.WithLabelValues(t.Category).Inc()
		}
	}
}

// roundForPresentation rounds floating scores to three decimals at the
// boundary; internal math stays full precision.
func (a *Analyzer) roundForPresentation(result *domain.Analysis) {
	result.Harm.HarmScore = domain.Round3(result.Harm.HarmScore)
	result.Harm.Confidence = domain.Round3(result.Harm.Confidence)
	for i := range result.Harm.Patterns {
		result.Harm.Patterns[i].Score = domain.Round3(result.Harm.Patterns[i].Score)
	}
	if result.Verification != nil {
		result.Verification.MaxSimilarity = domain.Round3(result.Verification.MaxSimilarity)
	}
	result.Intent.DogWhistle.Probability = domain.Round3(result.Intent.DogWhistle.Probability)
	result.Emotion.Confidence = domain.Round3(result.Emotion.Confidence)
	for k, v := range result.Emotion.Scores {
		result.Emotion.Scores[k] = domain.Round3(v)
	}
}

func (a *Analyzer) observe(text string, result *domain.Analysis, duration time.Duration) {
	a.metrics.ObserveAnalysis("analyze", duration)
	a.metrics.HarmScore.Observe(result.Harm.HarmScore)
	a.metrics.RiskLevelTotal.WithLabelValues(string(result.Harm.RiskLevel)).Inc()
	a.metrics.IntentTotal.WithLabelValues(result.Intent.Intent).Inc()
	if result.Harm.Degraded {
		a.metrics.DegradedTotal.Inc()
	}
	for _, hit := range result.Harm.Patterns {
		a.metrics.PatternHitsTotal.WithLabelValues(hit.Category).Inc()
	}

	a.logger.Info("Analysis complete",
		logging.String("text_excerpt", truncateWords(text, textExcerptWordLimit)),
		logging.Float64("harm_score", result.Harm.HarmScore),
		logging.String("risk_level", string(result.Harm.RiskLevel)),
		logging.String("intent", result.Intent.Intent),
		logging.Bool("degraded", result.Harm.Degraded),
		logging.Int("pattern_hits", len(result.Harm.Patterns)),
		logging.Strings("categories", result.Categories),
		logging.Duration("duration", duration),
	)
}
