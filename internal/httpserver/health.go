package httpserver

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus represents the status of a health check.
type HealthStatus string

const (
	// HealthStatusHealthy indicates the service is healthy.
	HealthStatusHealthy HealthStatus = "healthy"
	// HealthStatusDegraded indicates the service is degraded but functional.
	HealthStatusDegraded HealthStatus = "degraded"
	// HealthStatusUnhealthy indicates the service is unhealthy.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the standardized health check response format.
type HealthResponse struct {
	Status  HealthStatus           `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Uptime  string                 `json:"uptime,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult represents the result of an individual health check.
type CheckResult struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Latency string       `json:"latency,omitempty"`
}

// HealthChecker performs a health check and returns the result.
type HealthChecker func() CheckResult

// HealthOptions configures the health endpoints.
type HealthOptions struct {
	ServiceName    string
	ServiceVersion string
	StartTime      time.Time
	Checks         map[string]HealthChecker
}

var healthState = struct {
	sync.Once
	startTime time.Time
}{}

func initStartTime() {
	healthState.Do(func() {
		healthState.startTime = time.Now()
	})
}

// RegisterHealthRoutes adds standardized health endpoints to a router:
//   - GET /health  full health report with dependency checks
//   - HEAD /health lightweight check for load balancers
//   - GET /ready   readiness probe, 503 while any check is unhealthy
func RegisterHealthRoutes(router *gin.Engine, opts HealthOptions) {
	if opts.StartTime.IsZero() {
		initStartTime()
		opts.StartTime = healthState.startTime
	}

	router.GET("/health", healthHandler(opts))
	router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/ready", readyHandler(opts))
}

func healthHandler(opts HealthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := runChecks(opts)

		statusCode := http.StatusOK
		if response.Status == HealthStatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, response)
	}
}

func readyHandler(opts HealthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := runChecks(opts)

		if response.Status == HealthStatusUnhealthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ready": true})
	}
}

func runChecks(opts HealthOptions) HealthResponse {
	response := HealthResponse{
		Status:  HealthStatusHealthy,
		Service: opts.ServiceName,
		Version: opts.ServiceVersion,
		Uptime:  formatUptime(time.Since(opts.StartTime)),
	}

	if len(opts.Checks) == 0 {
		return response
	}

	response.Checks = make(map[string]CheckResult, len(opts.Checks))
	for name, checker := range opts.Checks {
		result := checker()
		response.Checks[name] = result

		if result.Status == HealthStatusUnhealthy {
			response.Status = HealthStatusUnhealthy
		} else if result.Status == HealthStatusDegraded && response.Status == HealthStatusHealthy {
			response.Status = HealthStatusDegraded
		}
	}

	return response
}

// formatUptime formats a duration as a human-readable string.
func formatUptime(d time.Duration) string {
	const hoursPerDay = 24

	days := int(d.Hours()) / hoursPerDay
	hours := int(d.Hours()) % hoursPerDay
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// DatabaseHealthChecker creates a health checker for database connectivity.
func DatabaseHealthChecker(pingFunc func() error) HealthChecker {
	return func() CheckResult {
		start := time.Now()
		err := pingFunc()
		latency := time.Since(start)

		if err != nil {
			return CheckResult{
				Status:  HealthStatusUnhealthy,
				Message: "Database connection failed",
				Latency: latency.String(),
			}
		}

		return CheckResult{
			Status:  HealthStatusHealthy,
			Message: "Database connection OK",
			Latency: latency.String(),
		}
	}
}

// SidecarHealthChecker creates a health checker for an optional scoring
// sidecar. A failing sidecar degrades the service rather than taking it
// down, because pattern-only analysis still works.
func SidecarHealthChecker(name string, pingFunc func() error) HealthChecker {
	return func() CheckResult {
		start := time.Now()
		err := pingFunc()
		latency := time.Since(start)

		if err != nil {
			return CheckResult{
				Status:  HealthStatusDegraded,
				Message: name + " unavailable",
				Latency: latency.String(),
			}
		}

		return CheckResult{
			Status:  HealthStatusHealthy,
			Message: name + " OK",
			Latency: latency.String(),
		}
	}
}
