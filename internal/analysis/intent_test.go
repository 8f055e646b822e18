//nolint:testpackage // Testing internal rules requires same package access
package analysis

import (
	"testing"

	"github.com/northwatch/harmscan/internal/domain"
)

func TestDetectCTA_Explicit(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"share this", "Please share this with your friends"},
		{"boycott", "We will boycott the store"},
		{"take action", "It is time to take action"},
		{"must act", "You must act before the vote"},
		{"do not trust", "Do not trust the officials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectCTA(tt.text)
			if len(result.Explicit) == 0 {
				t.Errorf("expected explicit CTA in %q", tt.text)
			}
			if !result.HasCTA {
				t.Error("expected HasCTA")
			}
		})
	}
}

func TestDetectCTA_Implicit(t *testing.T) {
	result := DetectCTA("Everyone should look into this before it's too late")

	if len(result.Explicit) != 0 {
		t.Errorf("expected no explicit CTA, got %v", result.Explicit)
	}
	if len(result.Implicit) == 0 {
		t.Error("expected implicit CTA")
	}
	if !result.HasCTA {
		t.Error("expected HasCTA")
	}
}

func TestDetectCTA_None(t *testing.T) {
	result := DetectCTA("The museum opens at nine in the morning.")

	if result.HasCTA {
		t.Errorf("expected no CTA, got %+v", result)
	}
}

func TestDetectDogWhistle(t *testing.T) {
	result := DetectDogWhistle("They are hiding it. Do your own research, the mainstream media keeps lying.")

	if !result.Detected {
		t.Fatal("expected dog whistle detection")
	}
	// they...hiding, do your own research, mainstream media...lying: 3 of 8.
	if !almostEqual(result.Probability, 3.0/8.0) {
		t.Errorf("expected probability %f, got %f", 3.0/8.0, result.Probability)
	}
}

func TestDetectDogWhistle_None(t *testing.T) {
	result := DetectDogWhistle("The bakery sells fresh bread daily.")

	if result.Detected || result.Probability != 0 {
		t.Errorf("expected no detection, got %+v", result)
	}
}

func TestFallbackToxicity(t *testing.T) {
	if got := FallbackToxicity("I hate this"); got != toxicityFallbackScore {
		t.Errorf("expected %f, got %f", toxicityFallbackScore, got)
	}
	if got := FallbackToxicity("lovely day outside"); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestClassifyIntentType_Ladder(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		toxicity float64
		hasCTA   bool
		want     string
	}{
		{"two inciting keywords", "attack them and burn it down", 0, false, domain.IntentInciting},
		{"high toxicity", "whatever", 0.85, false, domain.IntentInciting},
		{"two alarmist keywords", "urgent crisis unfolding", 0, false, domain.IntentAlarmist},
		{"moderate toxicity", "whatever", 0.65, false, domain.IntentAlarmist},
		{"cta only", "check this out", 0, true, domain.IntentActionOriented},
		{"persuasive", "you could argue we need to reconsider", 0, false, domain.IntentPersuasive},
		{"informational", "the report was published today", 0, false, domain.IntentInformational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIntentType(tt.text, tt.toxicity, tt.hasCTA)
			if got != tt.want {
				t.Errorf("ClassifyIntentType(%q, %f, %v) = %s, want %s",
					tt.text, tt.toxicity, tt.hasCTA, got, tt.want)
			}
		})
	}
}

func TestClassifyIntentType_IncitingBeatsCTA(t *testing.T) {
	// Inciting outranks everything even when a CTA is present.
	got := ClassifyIntentType("fight back and destroy it, share this", 0, true)
	if got != domain.IntentInciting {
		t.Errorf("expected Inciting, got %s", got)
	}
}

func TestAnalyzeIntent_FullPipeline(t *testing.T) {
	result := AnalyzeIntent("I hate them. Share this now before it's too late!")

	// "hate" trips the toxicity fallback at 0.9, which outranks the CTA.
	if result.Intent != domain.IntentInciting {
		t.Errorf("expected Inciting, got %s", result.Intent)
	}
	if result.Toxicity != toxicityFallbackScore {
		t.Errorf("expected toxicity %f, got %f", toxicityFallbackScore, result.Toxicity)
	}
	if !result.CTA.HasCTA {
		t.Error("expected CTA detection")
	}
}
