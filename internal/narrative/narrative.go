// Package narrative renders analysis results as human-readable text:
// explanations, key insights, recommendations, and trend context.
package narrative

import (
	"fmt"
	"strings"

	"github.com/northwatch/harmscan/internal/domain"
)

// Thresholds for narrative emphasis.
const (
	chargedEmotionThreshold   = 0.5
	intenseEmotionThreshold   = 0.6
	dogWhistleThreshold       = 0.5
	strongSimilarityThreshold = 0.7
	mildSimilarityThreshold   = 0.4
)

// Explain builds a sectioned explanation of a full analysis result.
func Explain(a domain.Analysis) string {
	var b strings.Builder

	writeOpening(&b, a.Harm)
	writeEmotionSection(&b, a.Emotion)
	writeIntentSection(&b, a.Intent)
	if a.Verification != nil {
		writeVerificationSection(&b, *a.Verification)
	}

	return b.String()
}

func writeOpening(b *strings.Builder, harm domain.HarmAssessment) {
	switch harm.RiskLevel {
	case domain.RiskLevelHigh:
		fmt.Fprintf(b, "**High Risk Alert** (Harm Index: %d/100)\n\n", harm.HarmIndex)
		b.WriteString("This statement shows significant potential for harmful impact. ")
	case domain.RiskLevelMedium:
		fmt.Fprintf(b, "**Moderate Risk** (Harm Index: %d/100)\n\n", harm.HarmIndex)
		b.WriteString("This statement contains concerning elements that warrant attention. ")
	default:
		fmt.Fprintf(b, "**Low Risk** (Harm Index: %d/100)\n\n", harm.HarmIndex)
		b.WriteString("This statement appears relatively benign with minimal harm indicators. ")
	}
}

func writeEmotionSection(b *strings.Builder, emotion domain.EmotionAssessment) {
	b.WriteString("\n\n**Emotional Profile:**\n")
	if emotion.Confidence > chargedEmotionThreshold {
		fmt.Fprintf(b, "The statement is heavily charged with **%s** (%d%%), ",
			emotion.Emotion, int(emotion.Confidence*100))
		b.WriteString("which can amplify its psychological impact and spread potential.")
		return
	}
	fmt.Fprintf(b, "The emotional tone is relatively balanced, with mild **%s** undertones.",
		emotion.Emotion)
}

func writeIntentSection(b *strings.Builder, intent domain.IntentAssessment) {
	b.WriteString("\n\n**Intent Classification:**\n")
	fmt.Fprintf(b, "Classified as **%s**. ", intent.Intent)

	if len(intent.CTA.Explicit) > 0 {
		b.WriteString("Contains explicit calls-to-action urging immediate sharing or response. ")
	} else if len(intent.CTA.Implicit) > 0 {
		b.WriteString("Includes subtle prompts encouraging action or dissemination. ")
	}

	if intent.DogWhistle.Probability > dogWhistleThreshold {
		b.WriteString("Potential coded language or dog-whistles detected.")
	}
}

func writeVerificationSection(b *strings.Builder, v domain.Verification) {
	b.WriteString("\n\n**Fact-Check Context:**\n")

	switch {
	case v.MaxSimilarity > strongSimilarityThreshold:
		fmt.Fprintf(b, "Shows **high similarity** (%d%%) to known false narratives. ",
			int(v.MaxSimilarity*100))
	case v.MaxSimilarity > mildSimilarityThreshold:
		fmt.Fprintf(b, "Shows **moderate similarity** (%d%%) to debunked claims. ",
			int(v.MaxSimilarity*100))
	default:
		b.WriteString("No strong matches to known misinformation patterns. ")
	}

	if v.Contradictory {
		b.WriteString("Verified sources contradict or do not support this claim.")
	}
}

// Insights lists the notable signals from an analysis, one line each.
func Insights(a domain.Analysis) []string {
	var insights []string

	if a.Emotion.Scores["anger"] > intenseEmotionThreshold || a.Emotion.Scores["fear"] > intenseEmotionThreshold {
		insights = append(insights, "High emotional intensity detected - increases virality potential")
	}

	if len(a.Intent.CTA.Explicit) > 0 {
		insights = append(insights, "Contains urgent call-to-action - may drive rapid spread")
	}
	if a.Intent.DogWhistle.Probability > dogWhistleThreshold {
		insights = append(insights, "Coded language detected - may target specific audiences")
	}

	if a.Verification != nil {
		if a.Verification.MaxSimilarity > strongSimilarityThreshold {
			insights = append(insights, "Strong match to known misinformation patterns")
		}
		if a.Verification.Contradictory {
			insights = append(insights, "Contradicted by verified fact-checking sources")
		}
	}

	if a.Harm.RiskLevel == domain.RiskLevelHigh {
		insights = append(insights, "Potential for real-world behavioral impact")
	}

	return insights
}

// Recommendations suggests reader actions for a risk level.
func Recommendations(level domain.RiskLevel) []string {
	switch level {
	case domain.RiskLevelHigh:
		return []string{
			"Verify with multiple trusted sources before sharing",
			"Consider the potential consequences of spreading this claim",
			"Engage critically - ask for evidence and sources",
		}
	case domain.RiskLevelMedium:
		return []string{
			"Cross-check with fact-checking organizations",
			"Look for original sources and context",
			"Pause before sharing - verify first",
		}
	default:
		return []string{
			"Appears relatively safe, but always verify important claims",
			"Stay informed from diverse, credible sources",
		}
	}
}

// HistoricalContext summarizes trend results as prose, one paragraph per
// category.
func HistoricalContext(trends []domain.TrendResult) string {
	if len(trends) == 0 {
		return "No significant historical patterns detected for this type of content."
	}

	parts := make([]string, 0, len(trends))
	for _, t := range trends {
		name := categoryTitle(t.Category)
		switch {
		case t.Direction == domain.TrendIncreasing:
			parts = append(parts, fmt.Sprintf(
				"**%s**: Currently trending upward (level: %d%%). "+
					"This type of misinformation has seen increased activity in recent days.",
				name, int(t.CurrentLevel*100)))
		case t.SpikeDetected:
			parts = append(parts, fmt.Sprintf(
				"**%s**: Recent spike detected. Similar claims have shown elevated harm levels recently.",
				name))
		default:
			parts = append(parts, fmt.Sprintf(
				"**%s**: Baseline activity (level: %d%%). Trend is %s.",
				name, int(t.CurrentLevel*100), t.Direction))
		}
	}

	return strings.Join(parts, "\n\n")
}

// ForecastText expands a forecast label into advisory prose.
func ForecastText(forecast string) string {
	switch forecast {
	case domain.ForecastHigh:
		return "**High Risk Period**: Multiple indicators suggest elevated misinformation activity. " +
			"Similar claims are likely to spread rapidly in current environment."
	case domain.ForecastModerate:
		return "**Moderate Risk**: Some upward trends detected. " +
			"Monitor for escalation and verify claims carefully."
	default:
		return "**Normal Risk Level**: No significant trend anomalies. " +
			"Standard verification practices recommended."
	}
}

// categoryTitle turns snake_case category names into title case.
func categoryTitle(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
