package chi

import (
	"context"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/resumerank/internal/domain"
	domanalysis "github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/extract"
	"github.com/kailas-cloud/resumerank/internal/nlp"
	healthuc "github.com/kailas-cloud/resumerank/internal/usecase/health"
	qualityuc "github.com/kailas-cloud/resumerank/internal/usecase/quality"
	rankinguc "github.com/kailas-cloud/resumerank/internal/usecase/ranking"
	similarityuc "github.com/kailas-cloud/resumerank/internal/usecase/similarity"
	skillsuc "github.com/kailas-cloud/resumerank/internal/usecase/skills"
)

// mockReportStore is an in-memory ReportStore.
type mockReportStore struct {
	reports map[string]domanalysis.Report

	listFunc func(ctx context.Context) ([]domanalysis.Report, error)
}

func newMockReportStore() *mockReportStore {
	return &mockReportStore{reports: make(map[string]domanalysis.Report)}
}

func (m *mockReportStore) Get(_ context.Context, id string) (domanalysis.Report, error) {
	rep, ok := m.reports[id]
	if !ok {
		return domanalysis.Report{}, domain.ErrAnalysisNotFound
	}
	return rep, nil
}

func (m *mockReportStore) List(ctx context.Context) ([]domanalysis.Report, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	out := make([]domanalysis.Report, 0, len(m.reports))
	for _, rep := range m.reports {
		out = append(out, rep)
	}
	return out, nil
}

func (m *mockReportStore) Delete(_ context.Context, id string) error {
	if _, ok := m.reports[id]; !ok {
		return domain.ErrAnalysisNotFound
	}
	delete(m.reports, id)
	return nil
}

// makeStoredReport builds a minimal report fixture for read-side tests.
func makeStoredReport(id string) domanalysis.Report {
	quality := domanalysis.NewQuality(8.0, "Excellent", []domanalysis.SectionCheck{}, []string{})
	candidates := []domanalysis.Candidate{
		domanalysis.NewCandidate(1, "alice", 0.75, []string{"Python"}, quality),
	}
	return domanalysis.NewReport(
		id, 1700000000000,
		candidates,
		[]domanalysis.DuplicatePair{},
		candidates,
		domanalysis.NewSummary(1, 0.75, 0.75, 1, 8.0),
	)
}

// newTestHandler wires the full in-process pipeline behind the HTTP API.
// Persistence is disabled; report reads go through the given store.
func newTestHandler(reports *mockReportStore, limits Limits) http.Handler {
	scorer := similarityuc.New(nlp.NewNormalizer())
	ranking := rankinguc.New(scorer, skillsuc.New(), qualityuc.New(), nil)
	server := NewServer(ranking, reports, extract.New(), healthuc.New(nil), limits, zap.NewNop())

	r := gochi.NewRouter()
	server.Routes(r)
	return r
}
