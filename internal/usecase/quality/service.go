// Package quality scores resume structural completeness against a weighted
// section checklist.
package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/kailas-cloud/resumerank/internal/domain/analysis"
)

// Label thresholds on the 0-10 quality score.
const (
	labelExcellent = "Excellent"
	labelGood      = "Good"
	labelAverage   = "Average"
	labelNeedsWork = "Needs Work"
)

// Service evaluates resume completeness. It holds only the immutable
// checklist and is safe for concurrent use.
type Service struct{}

// New creates a quality analysis service.
func New() *Service { return &Service{} }

// Analyze checks raw (non-normalized) resume text for the presence of each
// checklist section and returns the weighted score in [0, 10] rounded to one
// decimal, a per-section breakdown, and a feedback line per missing section.
// Raw text is required because section headers lose their casing and
// punctuation context during normalization.
//
// Empty input yields score 0.0, an empty breakdown and a single feedback
// entry.
func (s *Service) Analyze(text string) analysis.Quality {
	if text == "" {
		return analysis.NewQuality(
			0.0, Label(0.0), []analysis.SectionCheck{}, []string{"No text found in resume."},
		)
	}

	lower := strings.ToLower(text)

	var totalWeight, earned float64
	breakdown := make([]analysis.SectionCheck, 0, len(checklist))
	feedback := make([]string, 0)

	for _, sec := range checklist {
		totalWeight += sec.weight

		found := false
		for _, p := range sec.patterns {
			if p.MatchString(lower) {
				found = true
				break
			}
		}

		if found {
			earned += sec.weight
		} else {
			feedback = append(feedback,
				fmt.Sprintf("Add a %q section to improve your resume score.", sec.name))
		}
		breakdown = append(breakdown, analysis.NewSectionCheck(sec.name, found, sec.weight))
	}

	score := round1(earned / totalWeight * 10)
	return analysis.NewQuality(score, Label(score), breakdown, feedback)
}

// Label maps a quality score to its human-readable label.
// Total over [0, 10]: >=8 Excellent, >=6 Good, >=4 Average, else Needs Work.
func Label(score float64) string {
	switch {
	case score >= 8.0:
		return labelExcellent
	case score >= 6.0:
		return labelGood
	case score >= 4.0:
		return labelAverage
	default:
		return labelNeedsWork
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
