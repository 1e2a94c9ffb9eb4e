package analysis

// SectionCheck is one row of the resume quality checklist.
type SectionCheck struct {
	section string
	found   bool
	weight  float64
}

// NewSectionCheck creates a checklist row.
func NewSectionCheck(section string, found bool, weight float64) SectionCheck {
	return SectionCheck{section: section, found: found, weight: weight}
}

// Section returns the checklist section name.
func (c *SectionCheck) Section() string { return c.section }

// Found reports whether the section was detected.
func (c *SectionCheck) Found() bool { return c.found }

// Weight returns the section weight.
func (c *SectionCheck) Weight() float64 { return c.weight }

// Quality is the structural completeness assessment of one resume.
type Quality struct {
	score     float64
	label     string
	breakdown []SectionCheck
	feedback  []string
}

// NewQuality creates a quality assessment.
func NewQuality(score float64, label string, breakdown []SectionCheck, feedback []string) Quality {
	return Quality{score: score, label: label, breakdown: breakdown, feedback: feedback}
}

// Score returns the completeness score in [0, 10].
func (q *Quality) Score() float64 { return q.score }

// Label returns the human-readable quality label.
func (q *Quality) Label() string { return q.label }

// Breakdown returns the per-section checklist outcome in checklist order.
func (q *Quality) Breakdown() []SectionCheck { return q.breakdown }

// Feedback returns improvement recommendations for missing sections.
func (q *Quality) Feedback() []string { return q.feedback }

// Candidate is one ranked row of an analysis.
type Candidate struct {
	rank       int
	name       string
	similarity float64
	skills     []string
	quality    Quality
}

// NewCandidate creates a ranked candidate row.
func NewCandidate(rank int, name string, similarity float64, skills []string, quality Quality) Candidate {
	return Candidate{rank: rank, name: name, similarity: similarity, skills: skills, quality: quality}
}

// Rank returns the 1-based position (1 = best match).
func (c *Candidate) Rank() int { return c.rank }

// Name returns the candidate identifier.
func (c *Candidate) Name() string { return c.name }

// Similarity returns the cosine similarity against the job description in [0, 1].
func (c *Candidate) Similarity() float64 { return c.similarity }

// Skills returns the extracted skills, alphabetically sorted and title-cased.
func (c *Candidate) Skills() []string { return c.skills }

// SkillCount returns the number of extracted skills.
func (c *Candidate) SkillCount() int { return len(c.skills) }

// Quality returns the structural quality assessment.
func (c *Candidate) Quality() Quality { return c.quality }

// WithRank returns a copy with the given rank assigned.
func (c *Candidate) WithRank(rank int) Candidate {
	return Candidate{
		rank: rank, name: c.name, similarity: c.similarity,
		skills: c.skills, quality: c.quality,
	}
}
