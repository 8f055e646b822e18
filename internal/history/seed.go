package history

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/northwatch/harmscan/internal/domain"
)

// Synthetic baseline and spread per tracked category. The generated curve
// is a slow sine wave around the baseline plus gaussian noise, so trend
// directions and spikes both occur in seeded data.
var seedProfiles = []struct {
	category   string
	baseline   float64
	volatility float64
}{
	{"vaccine_misinfo", 0.3, 0.2},
	{"health_misinfo", 0.25, 0.15},
	{"conspiracy", 0.2, 0.25},
	{"political_misinfo", 0.15, 0.3},
	{"social_misinfo", 0.1, 0.2},
}

const (
	seedWavePeriod    = 15.0
	seedWaveAmplitude = 0.1
	seedNoiseScale    = 0.1
)

// SeedIfEmpty populates the store with a deterministic synthetic history
// when it holds no observations, so fresh deployments produce meaningful
// trends from the first request.
func (s *Store) SeedIfEmpty(ctx context.Context, days int, randSeed int64) (bool, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	rng := rand.New(rand.NewSource(randSeed))
	end := time.Now().UTC().Truncate(24 * time.Hour)

	for _, profile := range seedProfiles {
		for day := 0; day <= days; day++ {
			trend := profile.baseline + math.Sin(float64(day)/seedWavePeriod)*seedWaveAmplitude
			noise := rng.NormFloat64() * profile.volatility * seedNoiseScale
			score := domain.Clamp01(trend + noise)

			observedAt := end.AddDate(0, 0, day-days)
			if err := s.Record(ctx, profile.category, score, observedAt); err != nil {
				return false, fmt.Errorf("seed %s day %d: %w", profile.category, day, err)
			}
		}
	}

	return true, nil
}
