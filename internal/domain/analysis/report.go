package analysis

// DuplicatePair flags two resumes whose mutual similarity crossed the
// duplicate threshold. Emitted once per unordered pair, never (A, A).
type DuplicatePair struct {
	candidateA string
	candidateB string
	similarity float64
}

// NewDuplicatePair creates a duplicate pair record.
func NewDuplicatePair(candidateA, candidateB string, similarity float64) DuplicatePair {
	return DuplicatePair{candidateA: candidateA, candidateB: candidateB, similarity: similarity}
}

// CandidateA returns the first candidate of the pair (lower input index).
func (p *DuplicatePair) CandidateA() string { return p.candidateA }

// CandidateB returns the second candidate of the pair.
func (p *DuplicatePair) CandidateB() string { return p.candidateB }

// Similarity returns the resume-to-resume cosine similarity.
func (p *DuplicatePair) Similarity() float64 { return p.similarity }

// Summary aggregates headline metrics over one analysis.
type Summary struct {
	candidates     int
	topScore       float64
	averageScore   float64
	strongMatches  int
	averageQuality float64
}

// NewSummary creates an analysis summary.
func NewSummary(candidates int, topScore, averageScore float64, strongMatches int, averageQuality float64) Summary {
	return Summary{
		candidates:     candidates,
		topScore:       topScore,
		averageScore:   averageScore,
		strongMatches:  strongMatches,
		averageQuality: averageQuality,
	}
}

// Candidates returns the number of analyzed resumes.
func (s *Summary) Candidates() int { return s.candidates }

// TopScore returns the best similarity score.
func (s *Summary) TopScore() float64 { return s.topScore }

// AverageScore returns the mean similarity score.
func (s *Summary) AverageScore() float64 { return s.averageScore }

// StrongMatches returns the number of candidates at or above the strong-match cutoff.
func (s *Summary) StrongMatches() int { return s.strongMatches }

// AverageQuality returns the mean quality score.
func (s *Summary) AverageQuality() float64 { return s.averageQuality }

// Report is the complete outcome of one analysis request.
// Everything inside is derived from that request alone; vector spaces and
// vocabularies are discarded before the report is built.
type Report struct {
	id              string
	createdAt       int64 // unix milliseconds
	candidates      []Candidate
	duplicates      []DuplicatePair
	recommendations []Candidate
	summary         Summary
}

// NewReport creates an analysis report.
func NewReport(
	id string, createdAt int64,
	candidates []Candidate, duplicates []DuplicatePair,
	recommendations []Candidate, summary Summary,
) Report {
	return Report{
		id:              id,
		createdAt:       createdAt,
		candidates:      candidates,
		duplicates:      duplicates,
		recommendations: recommendations,
		summary:         summary,
	}
}

// ID returns the report identifier.
func (r *Report) ID() string { return r.id }

// CreatedAt returns the creation time in unix milliseconds.
func (r *Report) CreatedAt() int64 { return r.createdAt }

// Candidates returns all ranked rows, best match first.
func (r *Report) Candidates() []Candidate { return r.candidates }

// Duplicates returns flagged duplicate pairs.
func (r *Report) Duplicates() []DuplicatePair { return r.duplicates }

// Recommendations returns the top-N ranked rows.
func (r *Report) Recommendations() []Candidate { return r.recommendations }

// Summary returns the headline metrics.
func (r *Report) Summary() Summary { return r.summary }
