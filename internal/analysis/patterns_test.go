//nolint:testpackage // Testing internal scoring requires same package access
package analysis

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDetectPatterns_NoMatches(t *testing.T) {
	hits := DetectPatterns("The weather was pleasant this afternoon.")
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %d", len(hits))
	}
}

func TestDetectPatterns_SingleKeyword(t *testing.T) {
	hits := DetectPatterns("He threatened to murder someone.")

	var violence *struct {
		score   float64
		matched []string
	}
	for _, h := range hits {
		if h.Category == "violence" {
			violence = &struct {
				score   float64
				matched []string
			}{h.Score, h.Matched}
		}
	}
	if violence == nil {
		t.Fatal("expected violence category hit")
	}

	// 1 of 14 keywords, weight 1.5
	want := 1.0 / 14.0 * 1.5
	if !almostEqual(violence.score, want) {
		t.Errorf("expected score %f, got %f", want, violence.score)
	}
	if len(violence.matched) != 1 || violence.matched[0] != "murder" {
		t.Errorf("expected matched [murder], got %v", violence.matched)
	}
}

func TestDetectPatterns_CaseInsensitive(t *testing.T) {
	hits := DetectPatterns("KILL THEM ALL")

	found := false
	for _, h := range hits {
		if h.Category == "violence" {
			found = true
		}
	}
	if !found {
		t.Error("expected violence hit for uppercase text")
	}
}

func TestDetectPatterns_ScoreClamped(t *testing.T) {
	// All 10 hate_speech keywords: 10/10 * 1.6 would be 1.6 unclamped.
	text := "hate enemy traitor betrayal against us them vs us inferior superior pure contaminated"
	hits := DetectPatterns(text)

	for _, h := range hits {
		if h.Category != "hate_speech" {
			continue
		}
		if h.Score != 1.0 {
			t.Errorf("expected clamped score 1.0, got %f", h.Score)
		}
		return
	}
	t.Fatal("expected hate_speech hit")
}

func TestDetectPatterns_StableOrder(t *testing.T) {
	// Hits violence, cta, and fear; output must follow table order.
	text := "attack now, share this, everyone should panic"
	hits := DetectPatterns(text)

	var order []string
	for _, h := range hits {
		order = append(order, h.Category)
	}

	wantBefore := map[string]string{
		"violence": "cta",
		"cta":      "fear",
	}
	for first, second := range wantBefore {
		fi := indexOf(order, first)
		si := indexOf(order, second)
		if fi == -1 || si == -1 {
			t.Fatalf("expected both %s and %s in %v", first, second, order)
		}
		if fi > si {
			t.Errorf("expected %s before %s, got %v", first, second, order)
		}
	}
}

func TestDetectPatterns_SubstringContainment(t *testing.T) {
	// "now" appears inside "knowledge"; containment matching counts it.
	hits := DetectPatterns("knowledge is power")

	found := false
	for _, h := range hits {
		if h.Category == "urgency" {
			for _, m := range h.Matched {
				if m == "now" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("expected urgency hit via substring containment")
	}
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}

func TestDetectPatterns_AllCategoriesRepresented(t *testing.T) {
	text := strings.Join([]string{
		"kill", "vaccine", "conspiracy", "urgent", "share",
		"panic", "hate", "fake news",
	}, " ")

	hits := DetectPatterns(text)
	if len(hits) != len(harmPatternTable) {
		t.Errorf("expected %d categories, got %d", len(harmPatternTable), len(hits))
	}
}
