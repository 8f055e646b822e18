// Package api exposes harmscan's analysis pipeline over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/northwatch/harmscan/internal/analysis"
	"github.com/northwatch/harmscan/internal/logging"
	"github.com/northwatch/harmscan/internal/narrative"
	"github.com/northwatch/harmscan/internal/telemetry"
	"github.com/northwatch/harmscan/internal/trend"
)

// Maximum accepted text length in bytes.
const maxTextLength = 10000

// HealthProber checks a sidecar's availability.
type HealthProber interface {
	Health(ctx context.Context) error
}

// Handler handles HTTP requests for the harmscan API.
type Handler struct {
	analyzer    *analysis.Analyzer
	harm        *analysis.HarmScorer
	categorizer *trend.Categorizer
	trends      *trend.Engine
	modelProber HealthProber
	metrics     *telemetry.Metrics
	logger      logging.Logger
}

// NewHandler creates a new API handler. modelProber may be nil when the
// model sidecar is disabled.
func NewHandler(
	analyzer *analysis.Analyzer,
	harm *analysis.HarmScorer,
	categorizer *trend.Categorizer,
	trends *trend.Engine,
	modelProber HealthProber,
	provider *telemetry.Provider,
	logger logging.Logger,
) *Handler {
	return &Handler{
		analyzer:    analyzer,
		harm:        harm,
		categorizer: categorizer,
		trends:      trends,
		modelProber: modelProber,
		metrics:     provider.Metrics,
		logger:      logger,
	}
}

// AnalyzeRequest is the common request body for text analysis endpoints.
type AnalyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) bindText(c *gin.Context) (string, bool) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid analysis request", logging.Error(err))
		badRequest(c, err.Error())
		return "", false
	}
	if len(req.Text) > maxTextLength {
		badRequest(c, "text exceeds maximum length")
		return "", false
	}
	return req.Text, true
}

// Analyze handles POST /api/v1/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), text)
	if err != nil {
		h.logger.Error("Analysis failed", logging.Error(err))
		internalError(c, "analysis failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeHarm handles POST /api/v1/analyze/harm.
func (h *Handler) AnalyzeHarm(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}

	start := time.Now()
	result := h.harm.Score(c.Request.Context(), text)
	h.metrics.ObserveAnalysis("harm", time.Since(start))

	result.HarmScore = round3(result.HarmScore)
	result.Confidence = round3(result.Confidence)
	c.JSON(http.StatusOK, result)
}

// AnalyzeIntent handles POST /api/v1/analyze/intent.
func (h *Handler) AnalyzeIntent(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}

	start := time.Now()
	result := analysis.AnalyzeIntent(text)
	h.metrics.ObserveAnalysis("intent", time.Since(start))

	result.DogWhistle.Probability = round3(result.DogWhistle.Probability)
	c.JSON(http.StatusOK, result)
}

// AnalyzeVerify handles POST /api/v1/analyze/verify.
func (h *Handler) AnalyzeVerify(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}

	start := time.Now()
	result := h.analyzer.Verify(c.Request.Context(), text)
	h.metrics.ObserveAnalysis("verify", time.Since(start))

	if result == nil {
		serviceUnavailable(c, "narrative index unavailable")
		return
	}
	c.JSON(http.StatusOK, result)
}

// TrendsResponse is the response body for trend analysis of a text.
type TrendsResponse struct {
	DetectedCategories []string           `json:"detected_categories"`
	Trends             []trendView        `json:"trends"`
	HistoricalContext  string             `json:"historical_context"`
	RiskForecast       string             `json:"risk_forecast"`
	SimilarIncidents   []incidentView     `json:"similar_incidents"`
}

// AnalyzeTrends handles POST /api/v1/analyze/trends.
func (h *Handler) AnalyzeTrends(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}

	start := time.Now()
	categories := h.categorizer.Categorize(text)
	trends, forecast, err := h.trends.AnalyzeAll(c.Request.Context(), categories)
	h.metrics.ObserveAnalysis("trends", time.Since(start))
	if err != nil {
		h.logger.Error("Trend analysis failed", logging.Error(err))
		internalError(c, "trend analysis failed")
		return
	}

	c.JSON(http.StatusOK, TrendsResponse{
		DetectedCategories: categories,
		Trends:             trendViews(trends),
		HistoricalContext:  narrative.HistoricalContext(trends),
		RiskForecast:       narrative.ForecastText(forecast),
		SimilarIncidents:   incidentViews(trend.SimilarIncidents(categories)),
	})
}

// ExplainResponse is the response body for POST /api/v1/explain.
type ExplainResponse struct {
	Explanation     string   `json:"explanation"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Explain handles POST /api/v1/explain. It runs the full pipeline and
// returns only the rendered narrative.
func (h *Handler) Explain(c *gin.Context) {
	text, ok := h.bindText(c)
	if !ok {
		return
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(c.Request.Context(), text)
	h.metrics.ObserveAnalysis("explain", time.Since(start))
	if err != nil {
		h.logger.Error("Explanation failed", logging.Error(err))
		internalError(c, "explanation failed")
		return
	}

	c.JSON(http.StatusOK, ExplainResponse{
		Explanation:     result.Explanation,
		Insights:        result.Insights,
		Recommendations: result.Recommendations,
	})
}

// TrendByCategory handles GET /api/v1/trends/:category.
func (h *Handler) TrendByCategory(c *gin.Context) {
	category := c.Param("category")
	if !validCategory(category) {
		badRequest(c, "unknown category")
		return
	}

	result, err := h.trends.Analyze(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("Trend lookup failed",
			logging.String("category", category),
			logging.Error(err))
		internalError(c, "trend lookup failed")
		return
	}

	h.metrics.TrendQueriesTotal.WithLabelValues(category).Inc()
	c.JSON(http.StatusOK, result)
}

// ModelHealth handles GET /api/v1/model/health.
func (h *Handler) ModelHealth(c *gin.Context) {
	if h.modelProber == nil {
		c.JSON(http.StatusOK, gin.H{
			"enabled": false,
			"status":  "disabled",
		})
		return
	}

	if err := h.modelProber.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"enabled": true,
			"status":  "unreachable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enabled": true,
		"status":  "healthy",
	})
}

func validCategory(category string) bool {
	if category == trend.CategoryGeneral {
		return true
	}
	for _, name := range trend.Categories() {
		if name == category {
			return true
		}
	}
	return false
}
