// Package domain defines the core types shared across harmscan's
// analysis, trend, and API layers.
package domain

import (
	"math"
	"time"
)

// RiskLevel buckets a harm score for presentation.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "High"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelLow    RiskLevel = "Low"
)

// Risk level thresholds over the fused harm score.
const (
	riskHighThreshold   = 0.7
	riskMediumThreshold = 0.4
)

// Intent labels ordered from most to least severe.
const (
	IntentInciting       = "Inciting"
	IntentAlarmist       = "Alarmist"
	IntentActionOriented = "Action-oriented"
	IntentPersuasive     = "Persuasive"
	IntentInformational  = "Informational"
)

// Similarity bands for narrative verification.
const (
	SimilarityHigh   = "High"
	SimilarityMedium = "Medium"
	SimilarityLow    = "Low"
)

// PatternHit is one harm category that matched in the analyzed text.
type PatternHit struct {
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Weight   float64  `json:"weight"`
	Matched  []string `json:"matched_keywords"`
}

// HarmAssessment is the fused harm score for a piece of text.
type HarmAssessment struct {
	HarmScore  float64      `json:"harm_score"`
	HarmIndex  int          `json:"harm_index"`
	RiskLevel  RiskLevel    `json:"risk_level"`
	Confidence float64      `json:"confidence"`
	Patterns   []PatternHit `json:"patterns,omitempty"`
	ModelUsed  bool         `json:"model_used"`
	Degraded   bool         `json:"degraded"`
}

// Verification is the result of checking text against known narratives.
type Verification struct {
	SimilarityLevel string   `json:"similarity_level"`
	MaxSimilarity   float64  `json:"max_similarity"`
	Contradictory   bool     `json:"contradictory"`
	Evidence        []string `json:"evidence,omitempty"`
}

// CTAResult reports call-to-action phrases found in text.
type CTAResult struct {
	HasCTA   bool     `json:"has_cta"`
	Explicit []string `json:"explicit,omitempty"`
	Implicit []string `json:"implicit,omitempty"`
}

// DogWhistleResult reports coded-language patterns found in text.
type DogWhistleResult struct {
	Detected    bool     `json:"detected"`
	Probability float64  `json:"probability"`
	Matches     []string `json:"matches,omitempty"`
}

// IntentAssessment classifies the communicative intent of text.
type IntentAssessment struct {
	Intent     string           `json:"intent"`
	Toxicity   float64          `json:"toxicity"`
	CTA        CTAResult        `json:"cta"`
	DogWhistle DogWhistleResult `json:"dog_whistle"`
}

// EmotionAssessment is the dominant emotion detected in text.
type EmotionAssessment struct {
	Emotion    string             `json:"emotion"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
}

// Analysis is the full composite result returned by the analyze endpoint.
type Analysis struct {
	Harm              HarmAssessment    `json:"harm"`
	Intent            IntentAssessment  `json:"intent"`
	Verification      *Verification     `json:"verification,omitempty"`
	Emotion           EmotionAssessment `json:"emotion"`
	Categories        []string          `json:"categories"`
	Trends            []TrendResult     `json:"trends,omitempty"`
	Forecast          string            `json:"forecast,omitempty"`
	HistoricalContext string            `json:"historical_context,omitempty"`
	Incidents         []Incident        `json:"similar_incidents,omitempty"`
	Explanation       string            `json:"explanation,omitempty"`
	Insights          []string          `json:"insights,omitempty"`
	Recommendations   []string          `json:"recommendations,omitempty"`
	AnalyzedAt        time.Time         `json:"analyzed_at"`
}

// RiskLevelForScore buckets a fused harm score.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score >= riskHighThreshold:
		return RiskLevelHigh
	case score >= riskMediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// HarmIndexForScore scales a harm score to a 0-100 index.
func HarmIndexForScore(score float64) int {
	return int(math.Round(Clamp01(score) * 100))
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round3 rounds v to three decimal places for presentation.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
