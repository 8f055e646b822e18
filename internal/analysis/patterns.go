package analysis

import (
	"strings"

	"github.com/northwatch/harmscan/internal/domain"
)

// harmCategory is one row of the harm pattern table. Weight amplifies the
// matched-fraction score; the result is clamped to 1.0.
type harmCategory struct {
	name     string
	weight   float64
	keywords []string
}

// harmPatternTable is evaluated in order so results are stable across runs.
var harmPatternTable = []harmCategory{
	{
		name:   "violence",
		weight: 1.5,
		keywords: []string{
			"kill", "attack", "destroy", "burn", "fight", "harm", "hurt", "revenge",
			"murder", "assault", "beat", "strike", "eliminate", "annihilate",
		},
	},
	{
		name:   "medical_misinfo",
		weight: 1.3,
		keywords: []string{
			"poison", "vaccine", "cure", "treatment", "deadly", "toxic", "dangerous",
			"medicine", "drug", "disease", "virus", "bacteria", "infection",
		},
	},
	{
		name:   "conspiracy",
		weight: 1.2,
		keywords: []string{
			"they", "hiding", "control", "plan", "secret", "truth", "cover-up",
			"agenda", "manipulation", "scheme", "plot", "conspiracy",
		},
	},
	{
		name:   "urgency",
		weight: 1.1,
		keywords: []string{
			"urgent", "now", "immediately", "before", "late", "hurry", "quick",
			"asap", "emergency", "critical", "act now",
		},
	},
	{
		name:   "cta",
		weight: 1.4,
		keywords: []string{
			"share", "forward", "spread", "tell", "warn", "alert", "boycott",
			"repost", "circulate", "distribute", "pass on",
		},
	},
	{
		name:   "fear",
		weight: 1.2,
		keywords: []string{
			"scared", "fear", "afraid", "terror", "panic", "worry", "threat",
			"danger", "risk", "unsafe", "vulnerable",
		},
	},
	{
		name:   "hate_speech",
		weight: 1.6,
		keywords: []string{
			"hate", "enemy", "traitor", "betrayal", "against us", "them vs us",
			"inferior", "superior", "pure", "contaminated",
		},
	},
	{
		name:   "misinformation_markers",
		weight: 1.3,
		keywords: []string{
			"fake news", "mainstream media", "they don't want you to know",
			"censored", "banned", "suppressed", "hidden truth",
		},
	},
}

// DetectPatterns scans text against the harm pattern table and returns one
// hit per category with at least one keyword match. The per-category score
// is the matched fraction of the keyword list scaled by the category weight,
// clamped to 1.0. Matching is case-insensitive substring containment.
func DetectPatterns(text string) []domain.PatternHit {
	textLower := strings.ToLower(text)

	var hits []domain.PatternHit
	for _, cat := range harmPatternTable {
		var matched []string
		for _, kw := range cat.keywords {
			if strings.Contains(textLower, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		baseScore := float64(len(matched)) / float64(len(cat.keywords))
		hits = append(hits, domain.PatternHit{
			Category: cat.name,
			Score:    domain.Clamp01(baseScore * cat.weight),
			Weight:   cat.weight,
			Matched:  matched,
		})
	}

	return hits
}
