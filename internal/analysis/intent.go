package analysis

import (
	"strings"

	"github.com/northwatch/harmscan/internal/domain"
)

// DetectCTA finds explicit and implicit call-to-action phrases in text.
func DetectCTA(text string) domain.CTAResult {
	textLower := strings.ToLower(text)

	var result domain.CTAResult
	for _, p := range explicitCTAPatterns {
		if m := p.FindString(textLower); m != "" {
			result.Explicit = append(result.Explicit, m)
		}
	}
	for _, p := range implicitCTAPatterns {
		if m := p.FindString(textLower); m != "" {
			result.Implicit = append(result.Implicit, m)
		}
	}

	result.HasCTA = len(result.Explicit) > 0 || len(result.Implicit) > 0
	return result
}

// DetectDogWhistle scores coded-language use. Probability is the fraction of
// indicator patterns that matched.
func DetectDogWhistle(text string) domain.DogWhistleResult {
	textLower := strings.ToLower(text)

	var matches []string
	for _, p := range dogWhistlePatterns {
		if m := p.FindString(textLower); m != "" {
			matches = append(matches, m)
		}
	}

	probability := domain.Clamp01(float64(len(matches)) / float64(len(dogWhistlePatterns)))
	return domain.DogWhistleResult{
		Detected:    len(matches) > 0,
		Probability: probability,
		Matches:     matches,
	}
}

// FallbackToxicity is a keyword heuristic used when no toxicity model is
// wired in. Any hit yields a high fixed score.
func FallbackToxicity(text string) float64 {
	textLower := strings.ToLower(text)
	for _, w := range toxicityFallbackKeywords {
		if strings.Contains(textLower, w) {
			return toxicityFallbackScore
		}
	}
	return 0
}

// ClassifyIntentType applies the intent decision ladder, most severe label
// first. The first rule that fires wins.
func ClassifyIntentType(text string, toxicity float64, hasCTA bool) string {
	textLower := strings.ToLower(text)

	if countKeywords(textLower, incitingKeywords) >= incitingKeywordMin || toxicity > incitingToxicityMin {
		return domain.IntentInciting
	}
	if countKeywords(textLower, alarmistKeywords) >= alarmistKeywordMin || toxicity > alarmistToxicityMin {
		return domain.IntentAlarmist
	}
	if hasCTA {
		return domain.IntentActionOriented
	}
	for _, w := range persuasiveKeywords {
		if strings.Contains(textLower, w) {
			return domain.IntentPersuasive
		}
	}
	return domain.IntentInformational
}

// AnalyzeIntent runs the full intent pipeline on text using the fallback
// toxicity heuristic.
func AnalyzeIntent(text string) domain.IntentAssessment {
	cta := DetectCTA(text)
	dogWhistle := DetectDogWhistle(text)
	toxicity := FallbackToxicity(text)

	return domain.IntentAssessment{
		Intent:     ClassifyIntentType(text, toxicity, cta.HasCTA),
		Toxicity:   toxicity,
		CTA:        cta,
		DogWhistle: dogWhistle,
	}
}

func countKeywords(textLower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			count++
		}
	}
	return count
}
