//nolint:testpackage // Testing internal heuristics requires same package access
package analysis

import (
	"math"
	"testing"
)

func TestDetectEmotion_NeutralBaseline(t *testing.T) {
	result := DetectEmotion("The library opens on weekdays.")

	if result.Emotion != EmotionNeutral {
		t.Errorf("expected neutral, got %s", result.Emotion)
	}
}

func TestDetectEmotion_Triggers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"anger", "I hate everything about this", EmotionAnger},
		{"fear", "A deadly warning was issued", EmotionFear},
		{"joy", "What a great and happy day", EmotionJoy},
		{"sadness", "The tragedy made everyone cry", EmotionSadness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectEmotion(tt.text)
			if result.Emotion != tt.want {
				t.Errorf("expected %s, got %s (scores %v)", tt.want, result.Emotion, result.Scores)
			}
			if result.Confidence <= result.Scores[EmotionNeutral] {
				t.Error("expected dominant emotion to beat neutral")
			}
		})
	}
}

func TestDetectEmotion_ScoresNormalized(t *testing.T) {
	result := DetectEmotion("poison and warnings everywhere")

	total := 0.0
	for _, v := range result.Scores {
		total += v
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("expected scores to sum to 1, got %f", total)
	}
}
