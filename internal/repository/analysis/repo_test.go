package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/resumerank/internal/domain"
)

const testPrefix = "resumerank:"

func TestRepo_SaveAndGet(t *testing.T) {
	store := newMockStore()
	repo := New(store, testPrefix, 0)
	ctx := context.Background()

	want := makeReport("r1", 1700000000000)
	if err := repo.Save(ctx, &want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if got.ID() != "r1" {
		t.Errorf("expected ID r1, got %s", got.ID())
	}
	if got.CreatedAt() != 1700000000000 {
		t.Errorf("expected created_at preserved, got %d", got.CreatedAt())
	}
	if len(got.Candidates()) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got.Candidates()))
	}
	c := got.Candidates()[0]
	if c.Name() != "alice" || c.Rank() != 1 || c.Similarity() != 0.8123 {
		t.Errorf("candidate round-trip mismatch: %s rank=%d sim=%v", c.Name(), c.Rank(), c.Similarity())
	}
	if len(c.Skills()) != 2 {
		t.Errorf("expected 2 skills, got %v", c.Skills())
	}
	q := c.Quality()
	if q.Score() != 7.0 || q.Label() != "Good" {
		t.Errorf("quality round-trip mismatch: %v %q", q.Score(), q.Label())
	}
	if len(got.Duplicates()) != 1 {
		t.Errorf("expected 1 duplicate pair, got %d", len(got.Duplicates()))
	}
	if len(got.Recommendations()) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(got.Recommendations()))
	}
	sum := got.Summary()
	if sum.Candidates() != 2 || sum.TopScore() != 0.8123 {
		t.Errorf("summary round-trip mismatch: %+v", sum)
	}
}

func TestRepo_SaveUsesTTLWhenConfigured(t *testing.T) {
	store := newMockStore()
	ttlCalled := false
	store.setFunc = func(context.Context, string, []byte) error {
		t.Fatal("expected SetWithTTL, got Set")
		return nil
	}
	repo := New(&ttlRecorder{mockStore: store, called: &ttlCalled}, testPrefix, time.Hour)

	report := makeReport("r1", 1)
	if err := repo.Save(context.Background(), &report); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !ttlCalled {
		t.Fatal("expected SetWithTTL to be called")
	}
}

// ttlRecorder wraps mockStore to observe SetWithTTL calls.
type ttlRecorder struct {
	*mockStore
	called *bool
}

func (r *ttlRecorder) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	*r.called = true
	r.mockStore.data[key] = value
	return nil
}

func TestRepo_GetMissing(t *testing.T) {
	repo := New(newMockStore(), testPrefix, 0)

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrAnalysisNotFound) {
		t.Fatalf("expected ErrAnalysisNotFound, got %v", err)
	}
}

func TestRepo_ListNewestFirst(t *testing.T) {
	store := newMockStore()
	repo := New(store, testPrefix, 0)
	ctx := context.Background()

	for _, fixture := range []struct {
		id string
		ts int64
	}{
		{"old", 1000},
		{"new", 3000},
		{"mid", 2000},
	} {
		rep := makeReport(fixture.id, fixture.ts)
		if err := repo.Save(ctx, &rep); err != nil {
			t.Fatalf("save %s failed: %v", fixture.id, err)
		}
	}

	reports, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	wantOrder := []string{"new", "mid", "old"}
	for i, want := range wantOrder {
		if reports[i].ID() != want {
			t.Errorf("position %d: expected %s, got %s", i, want, reports[i].ID())
		}
	}
}

func TestRepo_ListEmpty(t *testing.T) {
	repo := New(newMockStore(), testPrefix, 0)

	reports, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected no reports, got %d", len(reports))
	}
}

func TestRepo_ListSkipsExpiredKeys(t *testing.T) {
	store := newMockStore()
	repo := New(store, testPrefix, 0)
	ctx := context.Background()

	rep := makeReport("kept", 1000)
	if err := repo.Save(ctx, &rep); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	// Key visible in the scan but gone by the read (TTL race).
	store.scanFunc = func(ctx context.Context, pattern string) ([]string, error) {
		return []string{testPrefix + "analysis:kept", testPrefix + "analysis:expired"}, nil
	}

	reports, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reports) != 1 || reports[0].ID() != "kept" {
		t.Fatalf("expected only the surviving report, got %v", reports)
	}
}

func TestRepo_Delete(t *testing.T) {
	store := newMockStore()
	repo := New(store, testPrefix, 0)
	ctx := context.Background()

	rep := makeReport("r1", 1)
	if err := repo.Save(ctx, &rep); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.Get(ctx, "r1"); !errors.Is(err, domain.ErrAnalysisNotFound) {
		t.Fatalf("expected report gone, got %v", err)
	}
}

func TestRepo_DeleteMissing(t *testing.T) {
	repo := New(newMockStore(), testPrefix, 0)

	err := repo.Delete(context.Background(), "nope")
	if !errors.Is(err, domain.ErrAnalysisNotFound) {
		t.Fatalf("expected ErrAnalysisNotFound, got %v", err)
	}
}
