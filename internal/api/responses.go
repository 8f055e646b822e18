package api

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/northwatch/harmscan/internal/domain"
)

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Bad request",
		"code":    "BAD_REQUEST",
		"message": message,
	})
}

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"code":    "INTERNAL_ERROR",
		"message": message,
	})
}

func serviceUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":   "Service unavailable",
		"code":    "SERVICE_UNAVAILABLE",
		"message": message,
	})
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// trendView is the wire shape for one trend summary.
type trendView struct {
	Category       string  `json:"category"`
	CurrentLevel   float64 `json:"current_level"`
	TrendDirection string  `json:"trend_direction"`
	Volatility     float64 `json:"volatility"`
	RecentSpike    bool    `json:"recent_spike"`
}

func trendViews(trends []domain.TrendResult) []trendView {
	views := make([]trendView, len(trends))
	for i, t := range trends {
		views[i] = trendView{
			Category:       t.Category,
			CurrentLevel:   t.CurrentLevel,
			TrendDirection: t.Direction,
			Volatility:     t.Volatility,
			RecentSpike:    t.SpikeDetected,
		}
	}
	return views
}

// incidentView is the wire shape for one historical incident.
type incidentView struct {
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Outcome     string `json:"outcome"`
}

func incidentViews(incidents []domain.Incident) []incidentView {
	views := make([]incidentView, len(incidents))
	for i, inc := range incidents {
		views[i] = incidentView{
			Category:    inc.Category,
			Date:        inc.Date,
			Description: inc.Description,
			Outcome:     inc.Outcome,
		}
	}
	return views
}
