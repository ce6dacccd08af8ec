package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "chronopro.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return s
}

func response(c chrono.Chronotype, d chrono.Diet, at time.Time) *storage.Response {
	r := storage.NewResponse(chrono.Profile{
		Chronotype:   c,
		TrainingTime: chrono.TrainingAfternoon,
		Frequency:    chrono.FrequencyModerate,
		Diet:         d,
		Experience:   chrono.ExperienceIntermediate,
		Supplements:  []string{"creatina", "whey"},
		Goal:         chrono.GoalBoth,
	})
	r.CreatedAt = at
	return r
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ua := "Mozilla/5.0"
	r := response(chrono.ChronoEvening, chrono.DietKeto, time.Time{})
	r.IPHash = "abcdef0123456789"
	r.UserAgent = &ua
	r.Plan = json.RawMessage(`{"hydration":3.5}`)

	if err := s.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if r.ID == "" || r.CreatedAt.IsZero() {
		t.Fatalf("Save should assign id and timestamp: %+v", r)
	}

	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Chronotype != chrono.ChronoEvening || got.Diet != chrono.DietKeto {
		t.Errorf("got %+v", got)
	}
	if len(got.Supplements) != 2 || got.Supplements[1] != "whey" {
		t.Errorf("supplements = %v", got.Supplements)
	}
	if got.UserAgent == nil || *got.UserAgent != ua {
		t.Errorf("user agent = %v", got.UserAgent)
	}
	if string(got.Plan) != `{"hydration":3.5}` {
		t.Errorf("plan = %s", got.Plan)
	}
	if got.IPHash != r.IPHash {
		t.Errorf("ip hash = %q", got.IPHash)
	}
}

func TestSaveWithoutOptionalFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	r := response(chrono.ChronoMorning, chrono.DietVegan, time.Time{})
	r.Supplements = nil
	if err := s.Save(ctx, r); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.UserAgent != nil || got.Plan != nil {
		t.Errorf("optional fields should be null: %+v", got)
	}
	if got.Supplements == nil || len(got.Supplements) != 0 {
		t.Errorf("supplements = %#v, want empty", got.Supplements)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListPaginationAndFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if err := s.Save(ctx, response(chrono.ChronoMorning, chrono.DietOmnivore, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := s.Save(ctx, response(chrono.ChronoEvening, chrono.DietVegan, base.Add(time.Duration(10+i)*time.Hour))); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name      string
		opts      storage.ListOptions
		wantLen   int
		wantTotal int
	}{
		{"first page", storage.ListOptions{Page: 1, Limit: 3}, 3, 8},
		{"last page", storage.ListOptions{Page: 3, Limit: 3}, 2, 8},
		{"past the end", storage.ListOptions{Page: 9, Limit: 3}, 0, 8},
		{"chronotype filter", storage.ListOptions{Chronotype: chrono.ChronoEvening}, 3, 3},
		{"diet filter", storage.ListOptions{Diet: chrono.DietOmnivore, Limit: 2}, 2, 5},
		{"both filters", storage.ListOptions{Chronotype: chrono.ChronoEvening, Diet: chrono.DietOmnivore}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := s.List(ctx, tt.opts)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tt.wantLen || total != tt.wantTotal {
				t.Errorf("len = %d total = %d, want %d/%d", len(got), total, tt.wantLen, tt.wantTotal)
			}
		})
	}

	got, _, err := s.List(ctx, storage.ListOptions{Limit: 8})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("responses not newest first at %d", i)
		}
	}
	if got[0].Chronotype != chrono.ChronoEvening {
		t.Errorf("newest response should be evening, got %s", got[0].Chronotype)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	saves := []*storage.Response{
		response(chrono.ChronoMorning, chrono.DietVegan, now.Add(-2*time.Hour)),
		response(chrono.ChronoMorning, chrono.DietOmnivore, now.Add(-48*time.Hour)),
		response(chrono.ChronoEvening, chrono.DietVegan, now.Add(-time.Minute)),
	}
	for _, r := range saves {
		if err := s.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.Stats(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Last24h != 2 {
		t.Errorf("total/last24h = %d/%d", stats.Total, stats.Last24h)
	}
	if stats.ByChronotype["morning"] != 2 || stats.ByChronotype["evening"] != 1 {
		t.Errorf("byChronotype = %v", stats.ByChronotype)
	}
	if v, ok := stats.ByChronotype["intermediate"]; !ok || v != 0 {
		t.Errorf("intermediate should be reported as 0: %v", stats.ByChronotype)
	}
	if stats.ByDiet["vegan"] != 2 || stats.ByDiet["omnivore"] != 1 {
		t.Errorf("byDiet = %v", stats.ByDiet)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := newTestStore(t)
	stats, err := s.Stats(context.Background(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 0 || stats.Last24h != 0 || len(stats.ByDiet) != 0 || len(stats.ByChronotype) != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDeleteBefore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	old := response(chrono.ChronoMorning, chrono.DietVegan, now.AddDate(0, 0, -40))
	recent := response(chrono.ChronoMorning, chrono.DietVegan, now.AddDate(0, 0, -1))
	for _, r := range []*storage.Response{old, recent} {
		if err := s.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.DeleteBefore(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}
	if _, err := s.Get(ctx, old.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("old response still present: %v", err)
	}
	if _, err := s.Get(ctx, recent.ID); err != nil {
		t.Errorf("recent response gone: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
