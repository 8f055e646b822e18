// Package trend tracks per-category misinformation risk over time:
// categorization, trend analysis over a rolling window, and historical
// incident lookup.
package trend

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// CategoryGeneral is returned when no tracked category matches.
const CategoryGeneral = "general"

// trackedCategory binds a category name to its trigger keywords.
type trackedCategory struct {
	name     string
	keywords []string
}

// Ordered so detection output is stable across runs.
var trackedCategories = []trackedCategory{
	{"vaccine_misinfo", []string{"vaccine", "vaccination", "immunization", "shot", "jab"}},
	{"health_misinfo", []string{"cure", "treatment", "medicine", "poison", "toxic", "deadly"}},
	{"conspiracy", []string{"they", "control", "plan", "secret", "hiding", "truth"}},
	{"political_misinfo", []string{"election", "vote", "rigged", "fraud", "manipulation"}},
	{"social_misinfo", []string{"community", "group", "people", "attack", "threat"}},
}

// Categorizer maps text to tracked misinformation categories with a single
// Aho-Corasick pass over all category keywords.
type Categorizer struct {
	matcher *ahocorasick.Matcher
	// keyword index -> category index
	owner []int
}

// NewCategorizer builds the combined keyword trie.
func NewCategorizer() *Categorizer {
	var keywords []string
	var owner []int
	for catIdx, cat := range trackedCategories {
		for _, kw := range cat.keywords {
			keywords = append(keywords, kw)
			owner = append(owner, catIdx)
		}
	}

	return &Categorizer{
		matcher: ahocorasick.NewStringMatcher(keywords),
		owner:   owner,
	}
}

// Categorize returns the tracked categories whose keywords appear in text,
// in table order. With no hits it returns ["general"].
func (c *Categorizer) Categorize(text string) []string {
	hits := c.matcher.Match([]byte(strings.ToLower(text)))

	seen := make(map[int]bool)
	for _, kwIdx := range hits {
		seen[c.owner[kwIdx]] = true
	}

	var detected []string
	for catIdx, cat := range trackedCategories {
		if seen[catIdx] {
			detected = append(detected, cat.name)
		}
	}

	if len(detected) == 0 {
		return []string{CategoryGeneral}
	}
	return detected
}

// Categories lists all tracked category names.
func Categories() []string {
	names := make([]string, len(trackedCategories))
	for i, cat := range trackedCategories {
		names[i] = cat.name
	}
	return names
}
