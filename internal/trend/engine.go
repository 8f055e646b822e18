package trend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/northwatch/harmscan/internal/domain"
	"github.com/northwatch/harmscan/internal/logging"
)

// Window sizes and thresholds for trend analysis.
const (
	recentWindow    = 7
	directionWindow = 3
	olderWindowEnd  = 14

	increasingRatio = 1.1
	decreasingRatio = 0.9

	spikeQuantile = 0.9

	// Values reported for a category with no recorded history.
	emptyHistoryLevel      = 0.3
	emptyHistoryVolatility = 0.1

	forecastLevelThreshold = 0.5
)

// HistoryReader supplies recorded trend points for a category, ordered by
// observation time ascending.
type HistoryReader interface {
	PointsByCategory(ctx context.Context, category string) ([]domain.TrendPoint, error)
}

// Engine computes trend summaries from recorded category history.
type Engine struct {
	history HistoryReader
	logger  logging.Logger
}

// NewEngine creates a trend engine over the given history store.
func NewEngine(history HistoryReader, logger logging.Logger) *Engine {
	return &Engine{
		history: history,
		logger:  logger,
	}
}

// Analyze summarizes the recent trajectory of one category.
func (e *Engine) Analyze(ctx context.Context, category string) (domain.TrendResult, error) {
	points, err := e.history.PointsByCategory(ctx, category)
	if err != nil {
		return domain.TrendResult{}, fmt.Errorf("load history for %s: %w", category, err)
	}

	result := summarize(category, points)
	result.Forecast = Forecast([]domain.TrendResult{result})
	return result, nil
}

// AnalyzeAll summarizes each category and produces one forecast across the
// whole set, mirroring how a multi-category text is assessed.
func (e *Engine) AnalyzeAll(ctx context.Context, categories []string) ([]domain.TrendResult, string, error) {
	results := make([]domain.TrendResult, 0, len(categories))
	for _, cat := range categories {
		points, err := e.history.PointsByCategory(ctx, cat)
		if err != nil {
			return nil, "", fmt.Errorf("load history for %s: %w", cat, err)
		}
		results = append(results, summarize(cat, points))
	}

	forecast := Forecast(results)
	for i := range results {
		results[i].Forecast = forecast
	}
	return results, forecast, nil
}

// summarize computes the trend summary for one category's point history.
// Points must be ordered by observation time ascending.
func summarize(category string, points []domain.TrendPoint) domain.TrendResult {
	if len(points) == 0 {
		return domain.TrendResult{
			Category:     category,
			CurrentLevel: emptyHistoryLevel,
			Direction:    domain.TrendStable,
			Volatility:   emptyHistoryVolatility,
		}
	}

	scores := make([]float64, len(points))
	for i, p := range points {
		scores[i] = p.Score
	}

	recent := scores
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	return domain.TrendResult{
		Category:      category,
		CurrentLevel:  domain.Round3(mean(recent)),
		Direction:     direction(scores, recent),
		Volatility:    domain.Round3(sampleStdDev(recent)),
		SpikeDetected: maxOf(recent) > percentile(scores, spikeQuantile),
	}
}

// direction compares the mean of the last few points against the preceding
// week. With fewer than two recent points, or no preceding week to compare
// against, the trend is stable.
func direction(all, recent []float64) string {
	if len(recent) < 2 {
		return domain.TrendStable
	}

	recentSlice := recent
	if len(recentSlice) > directionWindow {
		recentSlice = recentSlice[len(recentSlice)-directionWindow:]
	}
	recentAvg := mean(recentSlice)

	olderStart := len(all) - olderWindowEnd
	if olderStart < 0 {
		olderStart = 0
	}
	olderEnd := len(all) - recentWindow
	if olderEnd <= olderStart {
		return domain.TrendStable
	}
	olderAvg := mean(all[olderStart:olderEnd])

	switch {
	case recentAvg > olderAvg*increasingRatio:
		return domain.TrendIncreasing
	case recentAvg < olderAvg*decreasingRatio:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// Forecast derives a risk label for the coming period from a set of trend
// summaries. Any spike, or broad upward movement, means High.
func Forecast(trends []domain.TrendResult) string {
	if len(trends) == 0 {
		return domain.ForecastNormal
	}

	increasing := 0
	spikes := 0
	levelTotal := 0.0
	for _, t := range trends {
		if t.Direction == domain.TrendIncreasing {
			increasing++
		}
		if t.SpikeDetected {
			spikes++
		}
		levelTotal += t.CurrentLevel
	}
	avgLevel := levelTotal / float64(len(trends))

	switch {
	case spikes > 0 || increasing >= 2:
		return domain.ForecastHigh
	case increasing == 1 || avgLevel > forecastLevelThreshold:
		return domain.ForecastModerate
	default:
		return domain.ForecastNormal
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// sampleStdDev uses the n-1 denominator; a single point has no spread.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func maxOf(values []float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// percentile computes the q-th quantile with linear interpolation between
// the two nearest ranks.
func percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
