package api

import (
	"github.com/gin-gonic/gin"

	"github.com/northwatch/harmscan/internal/httpserver"
	"github.com/northwatch/harmscan/internal/telemetry"
)

// RegisterRoutes attaches all API routes to the router. jwtSecret guards
// the /api/v1 group when non-empty; health and metrics stay open.
func RegisterRoutes(router *gin.Engine, h *Handler, provider *telemetry.Provider, jwtSecret string) {
	router.GET("/metrics", gin.WrapH(provider.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(httpserver.JWTMiddleware(jwtSecret))
	{
		v1.POST("/analyze", h.Analyze)
		v1.POST("/analyze/harm", h.AnalyzeHarm)
		v1.POST("/analyze/intent", h.AnalyzeIntent)
		v1.POST("/analyze/verify", h.AnalyzeVerify)
		v1.POST("/analyze/trends", h.AnalyzeTrends)
		v1.POST("/explain", h.Explain)
		v1.GET("/trends/:category", h.TrendByCategory)
		v1.GET("/model/health", h.ModelHealth)
	}
}
