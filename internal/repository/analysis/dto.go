package analysis

import (
	domanalysis "github.com/kailas-cloud/resumerank/internal/domain/analysis"
)

// Storage DTOs. The domain value objects keep their fields unexported, so
// reports are flattened here for JSON persistence and rebuilt on read.

type sectionCheckDTO struct {
	Section string  `json:"section"`
	Found   bool    `json:"found"`
	Weight  float64 `json:"weight"`
}

type qualityDTO struct {
	Score     float64           `json:"score"`
	Label     string            `json:"label"`
	Breakdown []sectionCheckDTO `json:"breakdown"`
	Feedback  []string          `json:"feedback"`
}

type candidateDTO struct {
	Rank       int        `json:"rank"`
	Name       string     `json:"name"`
	Similarity float64    `json:"similarity"`
	Skills     []string   `json:"skills"`
	Quality    qualityDTO `json:"quality"`
}

type duplicateDTO struct {
	CandidateA string  `json:"candidate_a"`
	CandidateB string  `json:"candidate_b"`
	Similarity float64 `json:"similarity"`
}

type summaryDTO struct {
	Candidates     int     `json:"candidates"`
	TopScore       float64 `json:"top_score"`
	AverageScore   float64 `json:"average_score"`
	StrongMatches  int     `json:"strong_matches"`
	AverageQuality float64 `json:"average_quality"`
}

type reportDTO struct {
	ID              string         `json:"id"`
	CreatedAt       int64          `json:"created_at"`
	Candidates      []candidateDTO `json:"candidates"`
	Duplicates      []duplicateDTO `json:"duplicates"`
	Recommendations []candidateDTO `json:"recommendations"`
	Summary         summaryDTO     `json:"summary"`
}

func toDTO(r *domanalysis.Report) reportDTO {
	return reportDTO{
		ID:              r.ID(),
		CreatedAt:       r.CreatedAt(),
		Candidates:      candidatesToDTO(r.Candidates()),
		Duplicates:      duplicatesToDTO(r.Duplicates()),
		Recommendations: candidatesToDTO(r.Recommendations()),
		Summary:         summaryToDTO(r.Summary()),
	}
}

func candidatesToDTO(cands []domanalysis.Candidate) []candidateDTO {
	out := make([]candidateDTO, len(cands))
	for i := range cands {
		q := cands[i].Quality()
		out[i] = candidateDTO{
			Rank:       cands[i].Rank(),
			Name:       cands[i].Name(),
			Similarity: cands[i].Similarity(),
			Skills:     cands[i].Skills(),
			Quality:    qualityToDTO(q),
		}
	}
	return out
}

func qualityToDTO(q domanalysis.Quality) qualityDTO {
	breakdown := make([]sectionCheckDTO, len(q.Breakdown()))
	for i, c := range q.Breakdown() {
		breakdown[i] = sectionCheckDTO{Section: c.Section(), Found: c.Found(), Weight: c.Weight()}
	}
	return qualityDTO{
		Score:     q.Score(),
		Label:     q.Label(),
		Breakdown: breakdown,
		Feedback:  q.Feedback(),
	}
}

func duplicatesToDTO(pairs []domanalysis.DuplicatePair) []duplicateDTO {
	out := make([]duplicateDTO, len(pairs))
	for i := range pairs {
		out[i] = duplicateDTO{
			CandidateA: pairs[i].CandidateA(),
			CandidateB: pairs[i].CandidateB(),
			Similarity: pairs[i].Similarity(),
		}
	}
	return out
}

func summaryToDTO(s domanalysis.Summary) summaryDTO {
	return summaryDTO{
		Candidates:     s.Candidates(),
		TopScore:       s.TopScore(),
		AverageScore:   s.AverageScore(),
		StrongMatches:  s.StrongMatches(),
		AverageQuality: s.AverageQuality(),
	}
}

func fromDTO(dto reportDTO) domanalysis.Report {
	return domanalysis.NewReport(
		dto.ID,
		dto.CreatedAt,
		candidatesFromDTO(dto.Candidates),
		duplicatesFromDTO(dto.Duplicates),
		candidatesFromDTO(dto.Recommendations),
		domanalysis.NewSummary(
			dto.Summary.Candidates,
			dto.Summary.TopScore,
			dto.Summary.AverageScore,
			dto.Summary.StrongMatches,
			dto.Summary.AverageQuality,
		),
	)
}

func candidatesFromDTO(dtos []candidateDTO) []domanalysis.Candidate {
	out := make([]domanalysis.Candidate, len(dtos))
	for i, d := range dtos {
		breakdown := make([]domanalysis.SectionCheck, len(d.Quality.Breakdown))
		for j, c := range d.Quality.Breakdown {
			breakdown[j] = domanalysis.NewSectionCheck(c.Section, c.Found, c.Weight)
		}
		quality := domanalysis.NewQuality(d.Quality.Score, d.Quality.Label, breakdown, d.Quality.Feedback)
		out[i] = domanalysis.NewCandidate(d.Rank, d.Name, d.Similarity, d.Skills, quality)
	}
	return out
}

func duplicatesFromDTO(dtos []duplicateDTO) []domanalysis.DuplicatePair {
	out := make([]domanalysis.DuplicatePair, len(dtos))
	for i, d := range dtos {
		out[i] = domanalysis.NewDuplicatePair(d.CandidateA, d.CandidateB, d.Similarity)
	}
	return out
}
