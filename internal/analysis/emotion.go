package analysis

import (
	"strings"

	"github.com/northwatch/harmscan/internal/domain"
)

// Emotion categories tracked by the keyword heuristic.
const (
	EmotionAnger   = "anger"
	EmotionFear    = "fear"
	EmotionJoy     = "joy"
	EmotionSadness = "sadness"
	EmotionNeutral = "neutral"
)

// Baseline scores with neutral dominant; a keyword hit lifts its emotion
// and suppresses neutral.
const (
	emotionBaseMinor   = 0.1
	emotionBaseJoy     = 0.2
	emotionBaseNeutral = 0.5
	emotionTriggered   = 0.7
	emotionSuppressed  = 0.1
)

var emotionKeywords = map[string][]string{
	EmotionAnger:   {"poison", "kill", "hate", "stupid", "anger"},
	EmotionFear:    {"scared", "fear", "deadly", "warning"},
	EmotionJoy:     {"happy", "great", "good", "joy"},
	EmotionSadness: {"sad", "cry", "tragedy"},
}

// DetectEmotion estimates the dominant emotion of text with a keyword
// heuristic. Scores are normalized to sum to 1; confidence is the dominant
// emotion's normalized score.
func DetectEmotion(text string) domain.EmotionAssessment {
	textLower := strings.ToLower(text)

	scores := map[string]float64{
		EmotionAnger:   emotionBaseMinor,
		EmotionFear:    emotionBaseMinor,
		EmotionJoy:     emotionBaseJoy,
		EmotionSadness: emotionBaseMinor,
		EmotionNeutral: emotionBaseNeutral,
	}

	for emotion, keywords := range emotionKeywords {
		for _, kw := range keywords {
			if strings.Contains(textLower, kw) {
				scores[emotion] = emotionTriggered
				scores[EmotionNeutral] = emotionSuppressed
				break
			}
		}
	}

	total := 0.0
	for _, v := range scores {
		total += v
	}
	if total > 0 {
		for k := range scores {
			scores[k] /= total
		}
	}

	dominant := EmotionNeutral
	best := -1.0
	// Fixed iteration order so ties resolve deterministically.
	for _, emotion := range []string{EmotionAnger, EmotionFear, EmotionJoy, EmotionSadness, EmotionNeutral} {
		if scores[emotion] > best {
			best = scores[emotion]
			dominant = emotion
		}
	}

	return domain.EmotionAssessment{
		Emotion:    dominant,
		Confidence: best,
		Scores:     scores,
	}
}
