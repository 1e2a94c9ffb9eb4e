// Package similarity scores resumes against a job description and against
// each other via corpus-scoped TF-IDF cosine similarity.
package similarity

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/kailas-cloud/resumerank/internal/domain"
	"github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/domain/resume"
	"github.com/kailas-cloud/resumerank/internal/logger"
	"github.com/kailas-cloud/resumerank/internal/nlp/tfidf"
)

// DefaultDuplicateThreshold flags resume pairs at or above this similarity.
const DefaultDuplicateThreshold = 0.90

// Service builds request-scoped vector spaces and computes cosine scores.
// It holds only immutable configuration; every call constructs and discards
// its own corpus, so concurrent requests never share IDF state.
type Service struct {
	norm          Normalizer
	maxVocabulary int
}

// New creates a similarity service.
func New(norm Normalizer) *Service {
	return &Service{norm: norm, maxVocabulary: tfidf.DefaultMaxFeatures}
}

// WithMaxVocabulary overrides the vocabulary cap.
func (s *Service) WithMaxVocabulary(n int) *Service {
	if n > 0 {
		s.maxVocabulary = n
	}
	return s
}

// ScoreAgainstJob returns one similarity score per resume, in input order,
// rounded to 4 decimal places. The corpus is [job description] ++ resumes
// with the job description at index 0; its vector space exists only for
// this call.
func (s *Service) ScoreAgainstJob(
	ctx context.Context, jobDescription string, resumes []resume.Resume,
) []float64 {
	scores := make([]float64, len(resumes))
	if len(resumes) == 0 {
		return scores
	}

	docs := make([]string, 0, len(resumes)+1)
	docs = append(docs, s.norm.Normalize(jobDescription))
	for i := range resumes {
		docs = append(docs, s.norm.Normalize(resumes[i].Text()))
	}

	corpus := tfidf.NewCorpus(docs, s.maxVocabulary)
	jd := corpus.Vector(0)
	for i := range resumes {
		scores[i] = round4(tfidf.Cosine(jd, corpus.Vector(i+1)))
	}

	logger.FromContext(ctx).Debug("scored resumes against job description",
		zap.Int("resumes", len(resumes)),
	)
	return scores
}

// DetectDuplicates compares every unordered resume pair and returns those
// at or above threshold, one entry per pair (i < j), similarity rounded to
// 4 decimal places. The corpus is built from resumes alone: mixing in the
// job description would shift IDF weights and change pairwise scores.
//
// Fewer than 2 resumes yields an empty result, not an error.
func (s *Service) DetectDuplicates(
	ctx context.Context, resumes []resume.Resume, threshold float64,
) ([]analysis.DuplicatePair, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: threshold must be in [0, 1], got %v",
			domain.ErrInvalidArgument, threshold)
	}
	if len(resumes) < 2 {
		return []analysis.DuplicatePair{}, nil
	}

	docs := make([]string, len(resumes))
	for i := range resumes {
		docs[i] = s.norm.Normalize(resumes[i].Text())
	}
	corpus := tfidf.NewCorpus(docs, s.maxVocabulary)

	pairs := make([]analysis.DuplicatePair, 0)
	for i := 0; i < len(resumes); i++ {
		for j := i + 1; j < len(resumes); j++ {
			sim := round4(tfidf.Cosine(corpus.Vector(i), corpus.Vector(j)))
			if sim >= threshold {
				pairs = append(pairs, analysis.NewDuplicatePair(
					resumes[i].Name(), resumes[j].Name(), sim,
				))
			}
		}
	}

	logger.FromContext(ctx).Debug("duplicate detection finished",
		zap.Int("resumes", len(resumes)),
		zap.Int("pairs", len(pairs)),
		zap.Float64("threshold", threshold),
	)
	return pairs, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
