package analysis

import (
	"strings"

	"github.com/northwatch/harmscan/internal/logging"
)

const textExcerptWordLimit = 10

// truncateWords returns the first n words of s, appending "..." if truncated.
func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ") + "..."
}

// classifyErrorType categorizes a sidecar error message for dashboard filtering.
func classifyErrorType(errMsg string) string {
	lower := strings.ToLower(errMsg)
	switch {
	case strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout"):
		return "timeout"
	case strings.Contains(lower, "returned 5"):
		return "5xx"
	case strings.Contains(lower, "returned 4"):
		return "4xx"
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "dial tcp") ||
		strings.Contains(lower, "no such host"):
		return "connection"
	case strings.Contains(lower, "decode") || strings.Contains(lower, "unmarshal") ||
		strings.Contains(lower, "eof"):
		return "decode"
	default:
		return "unknown"
	}
}

// logSidecarError emits a structured Warn log for a failed sidecar call.
func (a *Analyzer) logSidecarError(sidecar string, err error) {
	a.logger.Warn("Sidecar call failed",
		logging.String("sidecar", sidecar),
		logging.String("error_type", classifyErrorType(err.Error())),
		logging.String("error_detail", err.Error()),
	)
}
