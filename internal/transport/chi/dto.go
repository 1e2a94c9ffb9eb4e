package chi

import (
	"time"

	domanalysis "github.com/kailas-cloud/resumerank/internal/domain/analysis"
)

// Error codes returned in error response bodies.
const (
	codeBadRequest          = "bad_request"
	codeValidationFailed    = "validation_failed"
	codeAnalysisNotFound    = "analysis_not_found"
	codeUnsupportedFileType = "unsupported_file_type"
	codeEmptyDocument       = "empty_document"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type resumePayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type analyzeRequest struct {
	JobDescription     string          `json:"job_description"`
	Resumes            []resumePayload `json:"resumes"`
	DuplicateThreshold *float64        `json:"duplicate_threshold,omitempty"`
	TopN               *int            `json:"top_n,omitempty"`
}

type sectionCheckResponse struct {
	Section string  `json:"section"`
	Found   bool    `json:"found"`
	Weight  float64 `json:"weight"`
}

type qualityResponse struct {
	Score     float64                `json:"score"`
	Label     string                 `json:"label"`
	Breakdown []sectionCheckResponse `json:"breakdown"`
	Feedback  []string               `json:"feedback"`
}

type candidateResponse struct {
	Rank       int             `json:"rank"`
	Name       string          `json:"name"`
	Similarity float64         `json:"similarity"`
	Skills     []string        `json:"skills"`
	SkillCount int             `json:"skill_count"`
	Quality    qualityResponse `json:"quality"`
}

type duplicateResponse struct {
	CandidateA string  `json:"candidate_a"`
	CandidateB string  `json:"candidate_b"`
	Similarity float64 `json:"similarity"`
}

type summaryResponse struct {
	Candidates     int     `json:"candidates"`
	TopScore       float64 `json:"top_score"`
	AverageScore   float64 `json:"average_score"`
	StrongMatches  int     `json:"strong_matches"`
	AverageQuality float64 `json:"average_quality"`
}

type reportResponse struct {
	ID              string              `json:"id"`
	CreatedAt       time.Time           `json:"created_at"`
	Candidates      []candidateResponse `json:"candidates"`
	Duplicates      []duplicateResponse `json:"duplicates"`
	Recommendations []candidateResponse `json:"recommendations"`
	Summary         summaryResponse     `json:"summary"`
}

type reportListResponse struct {
	Items []reportResponse `json:"items"`
	Total int              `json:"total"`
}

type extractResponse struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func reportToResponse(rep *domanalysis.Report) reportResponse {
	return reportResponse{
		ID:              rep.ID(),
		CreatedAt:       time.UnixMilli(rep.CreatedAt()).UTC(),
		Candidates:      candidatesToResponse(rep.Candidates()),
		Duplicates:      duplicatesToResponse(rep.Duplicates()),
		Recommendations: candidatesToResponse(rep.Recommendations()),
		Summary:         summaryToResponse(rep.Summary()),
	}
}

func candidatesToResponse(cands []domanalysis.Candidate) []candidateResponse {
	items := make([]candidateResponse, len(cands))
	for i := range cands {
		items[i] = candidateResponse{
			Rank:       cands[i].Rank(),
			Name:       cands[i].Name(),
			Similarity: cands[i].Similarity(),
			Skills:     cands[i].Skills(),
			SkillCount: cands[i].SkillCount(),
			Quality:    qualityToResponse(cands[i].Quality()),
		}
	}
	return items
}

func qualityToResponse(q domanalysis.Quality) qualityResponse {
	breakdown := make([]sectionCheckResponse, len(q.Breakdown()))
	for i, c := range q.Breakdown() {
		breakdown[i] = sectionCheckResponse{Section: c.Section(), Found: c.Found(), Weight: c.Weight()}
	}
	feedback := q.Feedback()
	if feedback == nil {
		feedback = []string{}
	}
	return qualityResponse{
		Score:     q.Score(),
		Label:     q.Label(),
		Breakdown: breakdown,
		Feedback:  feedback,
	}
}

func duplicatesToResponse(pairs []domanalysis.DuplicatePair) []duplicateResponse {
	items := make([]duplicateResponse, len(pairs))
	for i := range pairs {
		items[i] = duplicateResponse{
			CandidateA: pairs[i].CandidateA(),
			CandidateB: pairs[i].CandidateB(),
			Similarity: pairs[i].Similarity(),
		}
	}
	return items
}

func summaryToResponse(s domanalysis.Summary) summaryResponse {
	return summaryResponse{
		Candidates:     s.Candidates(),
		TopScore:       s.TopScore(),
		AverageScore:   s.AverageScore(),
		StrongMatches:  s.StrongMatches(),
		AverageQuality: s.AverageQuality(),
	}
}
