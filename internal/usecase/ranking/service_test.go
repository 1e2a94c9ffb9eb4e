package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/resumerank/internal/domain"
	"github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/domain/resume"
	"github.com/kailas-cloud/resumerank/internal/usecase/similarity"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func mustResumes(t *testing.T, names ...string) []resume.Resume {
	t.Helper()
	out := make([]resume.Resume, len(names))
	for i, name := range names {
		r, err := resume.New(name, "text of "+name)
		if err != nil {
			t.Fatalf("failed to build resume %s: %v", name, err)
		}
		out[i] = r
	}
	return out
}

// scoreByName returns a scorer that maps resume names to fixed scores.
func scoreByName(scores map[string]float64) *mockScorer {
	return &mockScorer{
		scoreFunc: func(_ context.Context, _ string, resumes []resume.Resume) []float64 {
			out := make([]float64, len(resumes))
			for i := range resumes {
				out[i] = scores[resumes[i].Name()]
			}
			return out
		},
	}
}

func qualityByName(scores map[string]float64) *mockQuality {
	return &mockQuality{
		analyzeFunc: func(text string) analysis.Quality {
			// text is "text of <name>"
			return analysis.NewQuality(scores[text[len("text of "):]], "Good", nil, nil)
		},
	}
}

func TestRankCandidates_SortsBySimilarityDescending(t *testing.T) {
	scorer := scoreByName(map[string]float64{"low": 0.1, "high": 0.9, "mid": 0.5})
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil)

	ranked := svc.RankCandidates(context.Background(), "jd", mustResumes(t, "low", "high", "mid"))

	wantOrder := []string{"high", "mid", "low"}
	for i, want := range wantOrder {
		if ranked[i].Name() != want {
			t.Errorf("position %d: expected %s, got %s", i, want, ranked[i].Name())
		}
	}
}

func TestRankCandidates_SequentialRanks(t *testing.T) {
	scorer := scoreByName(map[string]float64{"a": 0.5, "b": 0.5, "c": 0.5})
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil)

	ranked := svc.RankCandidates(context.Background(), "jd", mustResumes(t, "a", "b", "c"))

	// Exact ties still get distinct sequential ranks.
	for i := range ranked {
		if ranked[i].Rank() != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, ranked[i].Rank())
		}
	}
}

func TestRankCandidates_QualityBreaksTies(t *testing.T) {
	scorer := scoreByName(map[string]float64{"weak": 0.5, "strong": 0.5})
	quality := qualityByName(map[string]float64{"weak": 3.0, "strong": 9.0})
	svc := New(scorer, &mockSkills{}, quality, nil)

	ranked := svc.RankCandidates(context.Background(), "jd", mustResumes(t, "weak", "strong"))

	if ranked[0].Name() != "strong" {
		t.Fatalf("expected quality tie-break to promote strong, got %s first", ranked[0].Name())
	}
}

func TestRankCandidates_StableOnFullTies(t *testing.T) {
	scorer := scoreByName(map[string]float64{"first": 0.5, "second": 0.5})
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil)

	ranked := svc.RankCandidates(context.Background(), "jd", mustResumes(t, "first", "second"))

	if ranked[0].Name() != "first" || ranked[1].Name() != "second" {
		t.Fatalf("expected input order preserved on full tie, got %s, %s",
			ranked[0].Name(), ranked[1].Name())
	}
}

func TestRankCandidates_EmptyInput(t *testing.T) {
	svc := New(&mockScorer{}, &mockSkills{}, &mockQuality{}, nil)

	ranked := svc.RankCandidates(context.Background(), "jd", nil)
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %v", ranked)
	}
}

func TestTopRecommendations_Clamping(t *testing.T) {
	svc := New(&mockScorer{}, &mockSkills{}, &mockQuality{}, nil)
	ranked := make([]analysis.Candidate, 3)
	for i := range ranked {
		ranked[i] = analysis.NewCandidate(i+1, fmt.Sprintf("c%d", i), 0, nil,
			analysis.NewQuality(0, "", nil, nil))
	}

	cases := []struct {
		topN int
		want int
	}{
		{0, 0},
		{2, 2},
		{3, 3},
		{10, 3},
		{-1, 0},
	}
	for _, tc := range cases {
		got := svc.TopRecommendations(ranked, tc.topN)
		if len(got) != tc.want {
			t.Errorf("topN=%d: expected %d rows, got %d", tc.topN, tc.want, len(got))
		}
	}
}

func TestAnalyze_ValidatesInput(t *testing.T) {
	svc := New(&mockScorer{}, &mockSkills{}, &mockQuality{}, nil)

	t.Run("missing job description", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), Request{Resumes: mustResumes(t, "a")})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("missing resumes", func(t *testing.T) {
		_, err := svc.Analyze(context.Background(), Request{JobDescription: "jd"})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestAnalyze_BuildsReport(t *testing.T) {
	scorer := scoreByName(map[string]float64{"a": 0.8, "b": 0.4, "c": 0.1})
	scorer.duplicatesFunc = func(
		_ context.Context, _ []resume.Resume, threshold float64,
	) ([]analysis.DuplicatePair, error) {
		if threshold != similarity.DefaultDuplicateThreshold {
			return nil, fmt.Errorf("unexpected threshold %v", threshold)
		}
		return []analysis.DuplicatePair{analysis.NewDuplicatePair("a", "b", 0.95)}, nil
	}
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil).WithTopN(2)

	report, err := svc.Analyze(context.Background(), Request{
		JobDescription: "jd",
		Resumes:        mustResumes(t, "a", "b", "c"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ID() == "" {
		t.Error("expected non-empty report ID")
	}
	if report.CreatedAt() == 0 {
		t.Error("expected non-zero creation time")
	}
	if len(report.Candidates()) != 3 {
		t.Errorf("expected 3 candidates, got %d", len(report.Candidates()))
	}
	if len(report.Recommendations()) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(report.Recommendations()))
	}
	if len(report.Duplicates()) != 1 {
		t.Errorf("expected 1 duplicate pair, got %d", len(report.Duplicates()))
	}

	sum := report.Summary()
	if sum.Candidates() != 3 {
		t.Errorf("expected summary candidates 3, got %d", sum.Candidates())
	}
	if sum.TopScore() != 0.8 {
		t.Errorf("expected top score 0.8, got %v", sum.TopScore())
	}
	// 0.8 and 0.4 clear the strong match cutoff, 0.1 does not.
	if sum.StrongMatches() != 2 {
		t.Errorf("expected 2 strong matches, got %d", sum.StrongMatches())
	}
	wantAvg := (0.8 + 0.4 + 0.1) / 3
	if diff := sum.AverageScore() - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected average score %v, got %v", wantAvg, sum.AverageScore())
	}
}

func TestAnalyze_RequestOverridesDefaults(t *testing.T) {
	var gotThreshold float64
	scorer := &mockScorer{
		duplicatesFunc: func(
			_ context.Context, _ []resume.Resume, threshold float64,
		) ([]analysis.DuplicatePair, error) {
			gotThreshold = threshold
			return []analysis.DuplicatePair{}, nil
		},
	}
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil)

	report, err := svc.Analyze(context.Background(), Request{
		JobDescription:     "jd",
		Resumes:            mustResumes(t, "a", "b", "c", "d"),
		DuplicateThreshold: floatPtr(0.75),
		TopN:               intPtr(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotThreshold != 0.75 {
		t.Errorf("expected threshold 0.75 passed through, got %v", gotThreshold)
	}
	if len(report.Recommendations()) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(report.Recommendations()))
	}
}

func TestAnalyze_ExplicitZeroOverrides(t *testing.T) {
	t.Run("threshold zero flags every pair", func(t *testing.T) {
		var gotThreshold float64
		scorer := &mockScorer{
			duplicatesFunc: func(
				_ context.Context, _ []resume.Resume, threshold float64,
			) ([]analysis.DuplicatePair, error) {
				gotThreshold = threshold
				return []analysis.DuplicatePair{}, nil
			},
		}
		svc := New(scorer, &mockSkills{}, &mockQuality{}, nil)

		_, err := svc.Analyze(context.Background(), Request{
			JobDescription:     "jd",
			Resumes:            mustResumes(t, "a", "b"),
			DuplicateThreshold: floatPtr(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotThreshold != 0 {
			t.Errorf("expected explicit threshold 0 passed through, got %v", gotThreshold)
		}
	})

	t.Run("top n zero disables recommendations", func(t *testing.T) {
		svc := New(&mockScorer{}, &mockSkills{}, &mockQuality{}, nil)

		report, err := svc.Analyze(context.Background(), Request{
			JobDescription: "jd",
			Resumes:        mustResumes(t, "a", "b", "c"),
			TopN:           intPtr(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Recommendations()) != 0 {
			t.Errorf("expected no recommendations, got %d", len(report.Recommendations()))
		}
	})
}

func TestWithDuplicateThreshold_SetsDefault(t *testing.T) {
	var gotThreshold float64
	scorer := &mockScorer{
		duplicatesFunc: func(
			_ context.Context, _ []resume.Resume, threshold float64,
		) ([]analysis.DuplicatePair, error) {
			gotThreshold = threshold
			return []analysis.DuplicatePair{}, nil
		},
	}
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil).WithDuplicateThreshold(0.6)

	_, err := svc.Analyze(context.Background(), Request{
		JobDescription: "jd",
		Resumes:        mustResumes(t, "a", "b"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotThreshold != 0.6 {
		t.Errorf("expected configured threshold 0.6, got %v", gotThreshold)
	}

	svc.WithDuplicateThreshold(1.5)
	_, err = svc.Analyze(context.Background(), Request{
		JobDescription: "jd",
		Resumes:        mustResumes(t, "a", "b"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotThreshold != 0.6 {
		t.Errorf("expected out-of-range value ignored, got %v", gotThreshold)
	}
}

func TestAnalyze_SavesReport(t *testing.T) {
	repo := &mockRepo{}
	svc := New(&mockScorer{}, &mockSkills{}, &mockQuality{}, repo)

	report, err := svc.Analyze(context.Background(), Request{
		JobDescription: "jd",
		Resumes:        mustResumes(t, "a"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved report, got %d", len(repo.saved))
	}
	if repo.saved[0].ID() != report.ID() {
		t.Errorf("saved report ID %s != returned %s", repo.saved[0].ID(), report.ID())
	}
}

func TestAnalyze_SaveFailurePropagates(t *testing.T) {
	repo := &mockRepo{
		saveFunc: func(context.Context, *analysis.Report) error {
			return errors.New("store down")
		},
	}
	svc := New(&mockScorer{}, &mockSkills{}, &mockQuality{}, repo)

	_, err := svc.Analyze(context.Background(), Request{
		JobDescription: "jd",
		Resumes:        mustResumes(t, "a"),
	})
	if err == nil {
		t.Fatal("expected error when save fails")
	}
}

func TestAnalyze_DuplicateDetectionFailurePropagates(t *testing.T) {
	scorer := &mockScorer{
		duplicatesFunc: func(
			context.Context, []resume.Resume, float64,
		) ([]analysis.DuplicatePair, error) {
			return nil, fmt.Errorf("%w: bad threshold", domain.ErrInvalidArgument)
		},
	}
	svc := New(scorer, &mockSkills{}, &mockQuality{}, nil)

	_, err := svc.Analyze(context.Background(), Request{
		JobDescription: "jd",
		Resumes:        mustResumes(t, "a", "b"),
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected wrapped ErrInvalidArgument, got %v", err)
	}
}
