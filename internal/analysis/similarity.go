package analysis

import (
	"github.com/northwatch/harmscan/internal/domain"
)

// Similarity bands over the maximum match against known false narratives.
const (
	similarityHighThreshold   = 0.8
	similarityMediumThreshold = 0.5
)

// Maximum number of matched narrative texts returned as evidence.
const maxEvidence = 2

// NarrativeMatch is one known narrative with its similarity to the
// analyzed text, as returned by the vector index.
type NarrativeMatch struct {
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

// CalibrateSimilarity converts raw vector matches into a verification
// verdict. The maximum similarity drives the band; anything above the
// medium threshold means contradictory sources exist. No matches yields
// Low with similarity 0.
func CalibrateSimilarity(matches []NarrativeMatch) domain.Verification {
	maxSim := 0.0
	for _, m := range matches {
		if m.Similarity > maxSim {
			maxSim = m.Similarity
		}
	}

	level := domain.SimilarityLow
	contradictory := false
	switch {
	case maxSim > similarityHighThreshold:
		level = domain.SimilarityHigh
		contradictory = true
	case maxSim > similarityMediumThreshold:
		level = domain.SimilarityMedium
		contradictory = true
	}

	var evidence []string
	for i, m := range matches {
		if i >= maxEvidence {
			break
		}
		evidence = append(evidence, m.Text)
	}

	return domain.Verification{
		SimilarityLevel: level,
		MaxSimilarity:   maxSim,
		Contradictory:   contradictory,
		Evidence:        evidence,
	}
}
