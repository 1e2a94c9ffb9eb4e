package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/kailas-cloud/resumerank/internal/db"
	domanalysis "github.com/kailas-cloud/resumerank/internal/domain/analysis"
)

// mockStore is an in-memory store with optional function-field overrides.
type mockStore struct {
	data map[string][]byte

	getFunc  func(ctx context.Context, key string) ([]byte, error)
	setFunc  func(ctx context.Context, key string, value []byte) error
	scanFunc func(ctx context.Context, pattern string) ([]string, error)
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value)
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, _ time.Duration) error {
	return m.Set(ctx, key, value)
}

func (m *mockStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFunc != nil {
		return m.scanFunc(ctx, pattern)
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// makeReport builds a small report fixture.
func makeReport(id string, createdAt int64) domanalysis.Report {
	quality := domanalysis.NewQuality(7.0, "Good",
		[]domanalysis.SectionCheck{domanalysis.NewSectionCheck("Education", true, 2.0)},
		[]string{},
	)
	candidates := []domanalysis.Candidate{
		domanalysis.NewCandidate(1, "alice", 0.8123, []string{"Go", "Python"}, quality),
		domanalysis.NewCandidate(2, "bob", 0.4, []string{}, quality),
	}
	return domanalysis.NewReport(
		id, createdAt,
		candidates,
		[]domanalysis.DuplicatePair{domanalysis.NewDuplicatePair("alice", "bob", 0.95)},
		candidates[:1],
		domanalysis.NewSummary(2, 0.8123, 0.6062, 2, 7.0),
	)
}
