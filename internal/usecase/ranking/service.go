// Package ranking orchestrates the analysis pipeline: similarity scoring,
// skill extraction and quality analysis merged into one ranked result set.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/resumerank/internal/domain"
	"github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/domain/resume"
	"github.com/kailas-cloud/resumerank/internal/logger"
	"github.com/kailas-cloud/resumerank/internal/metrics"
	"github.com/kailas-cloud/resumerank/internal/usecase/similarity"
)

// DefaultTopN is the number of recommended candidates when unspecified.
const DefaultTopN = 3

// strongMatchCutoff is the similarity above which a candidate counts as a
// good match in the summary.
const strongMatchCutoff = 0.30

// Request carries the inputs of one analysis call. DuplicateThreshold and
// TopN override the service defaults only when non-nil: zero is a valid
// explicit value (threshold 0 flags every pair, top N 0 disables
// recommendations), so "unset" must stay distinguishable from it.
type Request struct {
	JobDescription     string
	Resumes            []resume.Resume
	DuplicateThreshold *float64
	TopN               *int
}

// Service runs the full analysis pipeline.
type Service struct {
	scorer             Scorer
	skills             SkillExtractor
	quality            QualityAnalyzer
	repo               Repository
	topN               int
	duplicateThreshold float64
}

// New creates a ranking service. repo may be nil to disable persistence.
func New(scorer Scorer, skills SkillExtractor, quality QualityAnalyzer, repo Repository) *Service {
	return &Service{
		scorer:             scorer,
		skills:             skills,
		quality:            quality,
		repo:               repo,
		topN:               DefaultTopN,
		duplicateThreshold: similarity.DefaultDuplicateThreshold,
	}
}

// WithTopN overrides the default recommendation count.
func (s *Service) WithTopN(n int) *Service {
	if n > 0 {
		s.topN = n
	}
	return s
}

// WithDuplicateThreshold overrides the default duplicate threshold.
// Values outside [0, 1] are ignored.
func (s *Service) WithDuplicateThreshold(t float64) *Service {
	if t >= 0 && t <= 1 {
		s.duplicateThreshold = t
	}
	return s
}

// RankCandidates scores every resume against the job description, extracts
// skills and quality from the raw texts, and returns rows sorted by
// similarity descending with quality score as tie-break. Remaining ties keep
// input order (stable sort). Ranks are sequential 1..N by sorted position:
// exact score ties still receive distinct ranks.
//
// An empty resume list returns an empty slice, not an error.
func (s *Service) RankCandidates(
	ctx context.Context, jobDescription string, resumes []resume.Resume,
) []analysis.Candidate {
	rows := make([]analysis.Candidate, 0, len(resumes))
	if len(resumes) == 0 {
		return rows
	}

	scores := s.scorer.ScoreAgainstJob(ctx, jobDescription, resumes)
	for i := range resumes {
		rows = append(rows, analysis.NewCandidate(
			0,
			resumes[i].Name(),
			scores[i],
			s.skills.Extract(resumes[i].Text()),
			s.quality.Analyze(resumes[i].Text()),
		))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Similarity() != rows[j].Similarity() {
			return rows[i].Similarity() > rows[j].Similarity()
		}
		qi, qj := rows[i].Quality(), rows[j].Quality()
		return qi.Score() > qj.Score()
	})

	for i := range rows {
		rows[i] = rows[i].WithRank(i + 1)
	}
	return rows
}

// TopRecommendations returns the first topN ranked rows. The input is
// already rank-ordered, so this is a prefix take with topN clamped to
// [0, len(ranked)].
func (s *Service) TopRecommendations(ranked []analysis.Candidate, topN int) []analysis.Candidate {
	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	return ranked[:topN]
}

// Analyze runs ranking and duplicate detection for one request and
// assembles the report. The job description and resume list must be
// non-empty; everything downstream tolerates degenerate input.
func (s *Service) Analyze(ctx context.Context, req Request) (analysis.Report, error) {
	if req.JobDescription == "" {
		return analysis.Report{}, fmt.Errorf("%w: job description is required", domain.ErrInvalidArgument)
	}
	if len(req.Resumes) == 0 {
		return analysis.Report{}, fmt.Errorf("%w: at least one resume is required", domain.ErrInvalidArgument)
	}

	threshold := s.duplicateThreshold
	if req.DuplicateThreshold != nil {
		threshold = *req.DuplicateThreshold
	}
	topN := s.topN
	if req.TopN != nil {
		topN = *req.TopN
	}

	start := time.Now()

	ranked := s.RankCandidates(ctx, req.JobDescription, req.Resumes)

	duplicates, err := s.scorer.DetectDuplicates(ctx, req.Resumes, threshold)
	if err != nil {
		return analysis.Report{}, fmt.Errorf("detect duplicates: %w", err)
	}

	report := analysis.NewReport(
		uuid.NewString(),
		time.Now().UnixMilli(),
		ranked,
		duplicates,
		s.TopRecommendations(ranked, topN),
		summarize(ranked),
	)

	if s.repo != nil {
		if err := s.repo.Save(ctx, &report); err != nil {
			return analysis.Report{}, fmt.Errorf("save report: %w", err)
		}
	}

	metrics.ObserveAnalysis(time.Since(start), len(ranked), len(duplicates))
	logger.FromContext(ctx).Info("analysis finished",
		zap.String("report_id", report.ID()),
		zap.Int("candidates", len(ranked)),
		zap.Int("duplicate_pairs", len(duplicates)),
		zap.Duration("took", time.Since(start)),
	)
	return report, nil
}

// summarize derives headline metrics from the ranked rows.
func summarize(ranked []analysis.Candidate) analysis.Summary {
	if len(ranked) == 0 {
		return analysis.NewSummary(0, 0, 0, 0, 0)
	}

	var sumScore, sumQuality, top float64
	strong := 0
	for i := range ranked {
		score := ranked[i].Similarity()
		sumScore += score
		if score > top {
			top = score
		}
		if score >= strongMatchCutoff {
			strong++
		}
		q := ranked[i].Quality()
		sumQuality += q.Score()
	}

	n := float64(len(ranked))
	return analysis.NewSummary(len(ranked), top, sumScore/n, strong, sumQuality/n)
}
