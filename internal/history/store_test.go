//nolint:testpackage // Testing internal store requires same package access
package history

import (
	"context"
	"testing"
	"time"

	"github.com/northwatch/harmscan/internal/config"
	"github.com/northwatch/harmscan/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(config.DatabaseConfig{
		Driver:          "sqlite3",
		DSN:             ":memory:",
		MaxConnections:  1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndRead(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if err := store.Record(ctx, "conspiracy", 0.4, base); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := store.Record(ctx, "conspiracy", 0.6, base.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := store.Record(ctx, "vaccine_misinfo", 0.2, base); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	points, err := store.PointsByCategory(ctx, "conspiracy")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Score != 0.4 || points[1].Score != 0.6 {
		t.Errorf("expected ascending order by time, got %+v", points)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 total, got %d", count)
	}
}

func TestStore_PointsByCategory_Empty(t *testing.T) {
	store := openTestStore(t)

	points, err := store.PointsByCategory(context.Background(), "conspiracy")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("expected no points, got %d", len(points))
	}
}

func TestStore_SeedIfEmpty(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	seeded, err := store.SeedIfEmpty(ctx, 90, 20240101)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !seeded {
		t.Fatal("expected seeding on empty store")
	}

	// 5 categories, 91 observations each (inclusive of both endpoints).
	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 5*91 {
		t.Errorf("expected %d observations, got %d", 5*91, count)
	}

	// Seeding again is a no-op.
	seeded, err = store.SeedIfEmpty(ctx, 90, 20240101)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if seeded {
		t.Error("expected no reseeding of a populated store")
	}

	points, err := store.PointsByCategory(ctx, "conspiracy")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	for _, p := range points {
		if p.Score < 0 || p.Score > 1 {
			t.Errorf("seeded score out of range: %f", p.Score)
		}
	}
}

func TestStore_SeedDeterministic(t *testing.T) {
	ctx := context.Background()

	read := func() []domain.TrendPoint {
		store := openTestStore(t)
		if _, err := store.SeedIfEmpty(ctx, 30, 42); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		points, err := store.PointsByCategory(ctx, "vaccine_misinfo")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		return points
	}

	first := read()
	second := read()

	if len(first) != len(second) {
		t.Fatalf("expected equal lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Score != second[i].Score {
			t.Errorf("point %d differs: %f vs %f", i, first[i].Score, second[i].Score)
		}
	}
}
