//nolint:testpackage // Testing internal rendering requires same package access
package narrative

import (
	"strings"
	"testing"

	"github.com/northwatch/harmscan/internal/domain"
)

func sampleAnalysis(level domain.RiskLevel) domain.Analysis {
	return domain.Analysis{
		Harm: domain.HarmAssessment{
			RiskLevel: level,
			HarmIndex: 72,
		},
		Emotion: domain.EmotionAssessment{
			Emotion:    "fear",
			Confidence: 0.6,
			Scores:     map[string]float64{"fear": 0.6, "neutral": 0.1},
		},
		Intent: domain.IntentAssessment{
			Intent: domain.IntentAlarmist,
			CTA:    domain.CTAResult{HasCTA: true, Explicit: []string{"share this"}},
			DogWhistle: domain.DogWhistleResult{
				Detected:    true,
				Probability: 0.625,
			},
		},
		Verification: &domain.Verification{
			SimilarityLevel: domain.SimilarityHigh,
			MaxSimilarity:   0.85,
			Contradictory:   true,
		},
	}
}

func TestExplain_Sections(t *testing.T) {
	text := Explain(sampleAnalysis(domain.RiskLevelHigh))

	for _, want := range []string{
		"High Risk Alert",
		"Harm Index: 72/100",
		"Emotional Profile",
		"heavily charged with **fear**",
		"Intent Classification",
		"Classified as **Alarmist**",
		"explicit calls-to-action",
		"coded language or dog-whistles",
		"Fact-Check Context",
		"high similarity",
		"contradict",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected explanation to contain %q\n%s", want, text)
		}
	}
}

func TestExplain_LowRiskWithoutVerification(t *testing.T) {
	a := sampleAnalysis(domain.RiskLevelLow)
	a.Verification = nil
	a.Emotion = domain.EmotionAssessment{Emotion: "neutral", Confidence: 0.4}
	a.Intent = domain.IntentAssessment{Intent: domain.IntentInformational}

	text := Explain(a)

	if !strings.Contains(text, "Low Risk") {
		t.Error("expected low risk opening")
	}
	if strings.Contains(text, "Fact-Check Context") {
		t.Error("expected no fact-check section without verification")
	}
	if !strings.Contains(text, "relatively balanced") {
		t.Error("expected balanced emotion phrasing")
	}
}

func TestInsights(t *testing.T) {
	insights := Insights(sampleAnalysis(domain.RiskLevelHigh))

	joined := strings.Join(insights, "\n")
	for _, want := range []string{
		"High emotional intensity",
		"call-to-action",
		"Coded language",
		"Strong match",
		"Contradicted",
		"behavioral impact",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected insight containing %q, got %v", want, insights)
		}
	}
}

func TestInsights_QuietAnalysis(t *testing.T) {
	a := domain.Analysis{
		Harm:    domain.HarmAssessment{RiskLevel: domain.RiskLevelLow},
		Emotion: domain.EmotionAssessment{Scores: map[string]float64{"neutral": 0.8}},
		Intent:  domain.IntentAssessment{Intent: domain.IntentInformational},
	}

	if insights := Insights(a); len(insights) != 0 {
		t.Errorf("expected no insights, got %v", insights)
	}
}

func TestRecommendations_PerLevel(t *testing.T) {
	if got := Recommendations(domain.RiskLevelHigh); len(got) != 3 {
		t.Errorf("expected 3 high-risk recommendations, got %d", len(got))
	}
	if got := Recommendations(domain.RiskLevelMedium); len(got) != 3 {
		t.Errorf("expected 3 medium-risk recommendations, got %d", len(got))
	}
	if got := Recommendations(domain.RiskLevelLow); len(got) != 2 {
		t.Errorf("expected 2 low-risk recommendations, got %d", len(got))
	}
}

func TestHistoricalContext(t *testing.T) {
	if got := HistoricalContext(nil); !strings.Contains(got, "No significant historical patterns") {
		t.Errorf("unexpected empty context: %s", got)
	}

	trends := []domain.TrendResult{
		{Category: "vaccine_misinfo", Direction: domain.TrendIncreasing, CurrentLevel: 0.45},
		{Category: "conspiracy", Direction: domain.TrendStable, SpikeDetected: true},
		{Category: "social_misinfo", Direction: domain.TrendDecreasing, CurrentLevel: 0.12},
	}
	got := HistoricalContext(trends)

	if !strings.Contains(got, "**Vaccine Misinfo**: Currently trending upward (level: 45%)") {
		t.Errorf("missing increasing section:\n%s", got)
	}
	if !strings.Contains(got, "**Conspiracy**: Recent spike detected") {
		t.Errorf("missing spike section:\n%s", got)
	}
	if !strings.Contains(got, "**Social Misinfo**: Baseline activity (level: 12%). Trend is decreasing.") {
		t.Errorf("missing baseline section:\n%s", got)
	}
}

func TestForecastText(t *testing.T) {
	if got := ForecastText(domain.ForecastHigh); !strings.Contains(got, "High Risk Period") {
		t.Errorf("unexpected high forecast: %s", got)
	}
	if got := ForecastText(domain.ForecastModerate); !strings.Contains(got, "Moderate Risk") {
		t.Errorf("unexpected moderate forecast: %s", got)
	}
	if got := ForecastText(domain.ForecastNormal); !strings.Contains(got, "Normal Risk Level") {
		t.Errorf("unexpected normal forecast: %s", got)
	}
}
