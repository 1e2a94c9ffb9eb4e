// Package chi exposes the analysis pipeline over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/resumerank/internal/domain"
	domanalysis "github.com/kailas-cloud/resumerank/internal/domain/analysis"
	"github.com/kailas-cloud/resumerank/internal/domain/resume"
	"github.com/kailas-cloud/resumerank/internal/extract"
	healthuc "github.com/kailas-cloud/resumerank/internal/usecase/health"
	rankinguc "github.com/kailas-cloud/resumerank/internal/usecase/ranking"
)

// ReportStore is the read side of report persistence used by the API.
type ReportStore interface {
	Get(ctx context.Context, id string) (domanalysis.Report, error)
	List(ctx context.Context) ([]domanalysis.Report, error)
	Delete(ctx context.Context, id string) error
}

// Extractor converts uploaded files into plain resume text.
type Extractor interface {
	Extract(filename string, data []byte) (extract.Result, error)
}

// Limits bounds request sizes accepted by the API.
type Limits struct {
	MaxResumes     int
	MaxUploadBytes int64
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the analysis API.
type Server struct {
	ranking       *rankinguc.Service
	reports       ReportStore
	extractor     Extractor
	health        *healthuc.Service
	limits        Limits
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	ranking *rankinguc.Service,
	reports ReportStore,
	extractor Extractor,
	health *healthuc.Service,
	limits Limits,
	logger *zap.Logger,
) *Server {
	s := &Server{
		ranking:   ranking,
		reports:   reports,
		extractor: extractor,
		health:    health,
		limits:    limits,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrAnalysisNotFound, http.StatusNotFound, codeAnalysisNotFound),
		sentinelHandler(domain.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, codeUnsupportedFileType),
		sentinelHandler(domain.ErrEmptyDocument, http.StatusUnprocessableEntity, codeEmptyDocument),
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyses", s.CreateAnalysis)
		r.Get("/analyses", s.ListAnalyses)
		r.Get("/analyses/{id}", s.GetAnalysis)
		r.Delete("/analyses/{id}", s.DeleteAnalysis)
		r.Post("/extract", s.ExtractText)
	})
}

// CreateAnalysis handles POST /api/v1/analyses.
func (s *Server) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.JobDescription == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "job_description is required")
		return
	}
	if len(req.Resumes) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "at least one resume is required")
		return
	}
	if s.limits.MaxResumes > 0 && len(req.Resumes) > s.limits.MaxResumes {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("resumes count must be at most %d", s.limits.MaxResumes))
		return
	}
	if req.DuplicateThreshold != nil && (*req.DuplicateThreshold < 0 || *req.DuplicateThreshold > 1) {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "duplicate_threshold must be between 0 and 1")
		return
	}
	if req.TopN != nil && *req.TopN < 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "top_n must not be negative")
		return
	}

	resumes := make([]resume.Resume, 0, len(req.Resumes))
	for i, item := range req.Resumes {
		res, err := resume.New(item.Name, item.Text)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed,
				fmt.Sprintf("resume %d: %s", i, err.Error()))
			return
		}
		resumes = append(resumes, res)
	}

	// Absent fields stay nil so the service defaults apply; explicit zeros
	// (threshold 0, top_n 0) pass through unchanged.
	ucReq := rankinguc.Request{
		JobDescription:     req.JobDescription,
		Resumes:            resumes,
		DuplicateThreshold: req.DuplicateThreshold,
		TopN:               req.TopN,
	}

	report, err := s.ranking.Analyze(r.Context(), ucReq)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/analyses/"+report.ID())
	writeJSON(w, http.StatusCreated, reportToResponse(&report))
}

// ListAnalyses handles GET /api/v1/analyses.
func (s *Server) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	reports, err := s.reports.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]reportResponse, len(reports))
	for i := range reports {
		items[i] = reportToResponse(&reports[i])
	}
	writeJSON(w, http.StatusOK, reportListResponse{Items: items, Total: len(items)})
}

// GetAnalysis handles GET /api/v1/analyses/{id}.
func (s *Server) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := s.reports.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reportToResponse(&report))
}

// DeleteAnalysis handles DELETE /api/v1/analyses/{id}.
func (s *Server) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.reports.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExtractText handles POST /api/v1/extract. Accepts one multipart file
// under the "file" field and returns its plain text.
func (s *Server) ExtractText(w http.ResponseWriter, r *http.Request) {
	if s.limits.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.limits.MaxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "file field is required: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "failed to read file: "+err.Error())
		return
	}

	result, err := s.extractor.Extract(header.Filename, data)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, extractResponse{Name: result.Name, Text: result.Text})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidArgument,
		domain.ErrAnalysisNotFound,
		domain.ErrUnsupportedFileType,
		domain.ErrEmptyDocument,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
