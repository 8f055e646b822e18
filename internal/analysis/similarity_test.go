//nolint:testpackage // Testing internal calibration requires same package access
package analysis

import (
	"testing"

	"github.com/northwatch/harmscan/internal/domain"
)

func TestCalibrateSimilarity_Empty(t *testing.T) {
	v := CalibrateSimilarity(nil)

	if v.SimilarityLevel != domain.SimilarityLow {
		t.Errorf("expected Low, got %s", v.SimilarityLevel)
	}
	if v.MaxSimilarity != 0 {
		t.Errorf("expected 0, got %f", v.MaxSimilarity)
	}
	if v.Contradictory {
		t.Error("expected no contradiction")
	}
	if len(v.Evidence) != 0 {
		t.Errorf("expected no evidence, got %v", v.Evidence)
	}
}

func TestCalibrateSimilarity_Bands(t *testing.T) {
	tests := []struct {
		name          string
		max           float64
		wantLevel     string
		contradictory bool
	}{
		{"high", 0.85, domain.SimilarityHigh, true},
		{"medium", 0.6, domain.SimilarityMedium, true},
		{"low", 0.3, domain.SimilarityLow, false},
		{"boundary high stays medium", 0.8, domain.SimilarityMedium, true},
		{"boundary medium stays low", 0.5, domain.SimilarityLow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CalibrateSimilarity([]NarrativeMatch{{Text: "claim", Similarity: tt.max}})
			if v.SimilarityLevel != tt.wantLevel {
				t.Errorf("expected %s, got %s", tt.wantLevel, v.SimilarityLevel)
			}
			if v.Contradictory != tt.contradictory {
				t.Errorf("expected contradictory=%v", tt.contradictory)
			}
		})
	}
}

func TestCalibrateSimilarity_MaxOfMatches(t *testing.T) {
	v := CalibrateSimilarity([]NarrativeMatch{
		{Text: "first", Similarity: 0.4},
		{Text: "second", Similarity: 0.9},
		{Text: "third", Similarity: 0.2},
	})

	if !almostEqual(v.MaxSimilarity, 0.9) {
		t.Errorf("expected max 0.9, got %f", v.MaxSimilarity)
	}
	if v.SimilarityLevel != domain.SimilarityHigh {
		t.Errorf("expected High, got %s", v.SimilarityLevel)
	}
}

func TestCalibrateSimilarity_EvidenceCapped(t *testing.T) {
	v := CalibrateSimilarity([]NarrativeMatch{
		{Text: "a", Similarity: 0.9},
		{Text: "b", Similarity: 0.8},
		{Text: "c", Similarity: 0.7},
	})

	if len(v.Evidence) != 2 {
		t.Fatalf("expected 2 evidence texts, got %d", len(v.Evidence))
	}
	if v.Evidence[0] != "a" || v.Evidence[1] != "b" {
		t.Errorf("expected evidence [a b], got %v", v.Evidence)
	}
}
