package ranking

import (
	"context"

	"github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/domain/resume"
)

// mockScorer implements Scorer with function fields.
type mockScorer struct {
	scoreFunc      func(ctx context.Context, jd string, resumes []resume.Resume) []float64
	duplicatesFunc func(ctx context.Context, resumes []resume.Resume, threshold float64) ([]analysis.DuplicatePair, error)
}

func (m *mockScorer) ScoreAgainstJob(ctx context.Context, jd string, resumes []resume.Resume) []float64 {
	if m.scoreFunc != nil {
		return m.scoreFunc(ctx, jd, resumes)
	}
	return make([]float64, len(resumes))
}

func (m *mockScorer) DetectDuplicates(
	ctx context.Context, resumes []resume.Resume, threshold float64,
) ([]analysis.DuplicatePair, error) {
	if m.duplicatesFunc != nil {
		return m.duplicatesFunc(ctx, resumes, threshold)
	}
	return []analysis.DuplicatePair{}, nil
}

// mockSkills implements SkillExtractor.
type mockSkills struct {
	extractFunc func(text string) []string
}

func (m *mockSkills) Extract(text string) []string {
	if m.extractFunc != nil {
		return m.extractFunc(text)
	}
	return []string{}
}

// mockQuality implements QualityAnalyzer.
type mockQuality struct {
	analyzeFunc func(text string) analysis.Quality
}

func (m *mockQuality) Analyze(text string) analysis.Quality {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(text)
	}
	return analysis.NewQuality(0, "Needs Work", []analysis.SectionCheck{}, []string{})
}

// mockRepo implements Repository and records saved reports.
type mockRepo struct {
	saveFunc func(ctx context.Context, report *analysis.Report) error
	saved    []*analysis.Report
}

func (m *mockRepo) Save(ctx context.Context, report *analysis.Report) error {
	m.saved = append(m.saved, report)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, report)
	}
	return nil
}
