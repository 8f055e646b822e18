package domain

import "time"

// Trend directions for a category over the recent window.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Forecast risk labels for the coming period.
const (
	ForecastHigh     = "High"
	ForecastModerate = "Moderate"
	ForecastNormal   = "Normal"
)

// TrendPoint is one observation in a category's risk history.
type TrendPoint struct {
	ID         int64     `db:"id"          json:"-"`
	Category   string    `db:"category"    json:"category"`
	Score      float64   `db:"score"       json:"score"`
	ObservedAt time.Time `db:"observed_at" json:"observed_at"`
}

// TrendResult summarizes a category's recent risk trajectory.
type TrendResult struct {
	Category      string  `json:"category"`
	CurrentLevel  float64 `json:"current_level"`
	Direction     string  `json:"direction"`
	Volatility    float64 `json:"volatility"`
	SpikeDetected bool    `json:"spike_detected"`
	Forecast      string  `json:"forecast"`
}

// Incident is a documented past event tied to a misinformation category,
// used to give trend output historical context.
type Incident struct {
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Outcome     string `json:"outcome"`
}
