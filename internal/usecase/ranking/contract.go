package ranking

import (
	"context"

	"github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/domain/resume"
)

// Scorer computes similarity scores over request-scoped vector spaces.
type Scorer interface {
	ScoreAgainstJob(ctx context.Context, jobDescription string, resumes []resume.Resume) []float64
	DetectDuplicates(ctx context.Context, resumes []resume.Resume, threshold float64) ([]analysis.DuplicatePair, error)
}

// SkillExtractor finds taxonomy skills in raw resume text.
type SkillExtractor interface {
	Extract(text string) []string
}

// QualityAnalyzer scores resume structural completeness on raw text.
type QualityAnalyzer interface {
	Analyze(text string) analysis.Quality
}

// Repository persists finished analysis reports. Optional: a nil repository
// disables persistence.
type Repository interface {
	Save(ctx context.Context, report *analysis.Report) error
}
