package analysis

import (
	"strings"

	"github.com/northwatch/harmscan/internal/domain"
)

// Fusion constants.
const (
	modelWeight   = 0.7
	patternWeight = 0.3

	longTextWordCount = 50
	longTextBoost     = 1.15

	highRiskPatternScore = 0.5
	highRiskPatternCount = 3
	highRiskBoost        = 1.2

	modelCertaintyWeight  = 0.6
	patternPresenceWeight = 0.4
	patternsPresentConf   = 0.8
	patternsAbsentConf    = 0.5
)

// Degraded-path confidence levels.
const (
	ConfidenceDegraded  = 0.75
	ConfidenceInference = 0.6
	ConfidenceFallback  = 0.5
)

// patternAverage returns the mean of the pattern hit scores, 0 when empty.
func patternAverage(hits []domain.PatternHit) float64 {
	if len(hits) == 0 {
		return 0
	}
	total := 0.0
	for _, h := range hits {
		total += h.Score
	}
	return total / float64(len(hits))
}

// FuseDegraded computes a harm score from patterns alone. Long texts and
// multiple high-risk categories amplify the base score; every step clamps
// to [0, 1].
func FuseDegraded(text string, hits []domain.PatternHit) float64 {
	score := domain.Clamp01(patternAverage(hits))

	if len(strings.Fields(text)) > longTextWordCount {
		score = domain.Clamp01(score * longTextBoost)
	}

	highRisk := 0
	for _, h := range hits {
		if h.Score > highRiskPatternScore {
			highRisk++
		}
	}
	if highRisk >= highRiskPatternCount {
		score = domain.Clamp01(score * highRiskBoost)
	}

	return score
}

// FuseWithModel combines the model's score with the pattern average. With no
// pattern hits the model score stands alone. Confidence blends the model's
// distance from the decision boundary with pattern presence.
func FuseWithModel(modelScore float64, hits []domain.PatternHit) (score, confidence float64) {
	if len(hits) > 0 {
		score = domain.Clamp01(modelScore*modelWeight + patternAverage(hits)*patternWeight)
	} else {
		score = domain.Clamp01(modelScore)
	}

	modelCertainty := abs(modelScore-0.5) * 2
	patternConf := patternsAbsentConf
	if len(hits) > 0 {
		patternConf = patternsPresentConf
	}
	confidence = domain.Clamp01(modelCertainty*modelCertaintyWeight + patternConf*patternPresenceWeight)

	return score, confidence
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
