package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/analyzer"
	"github.com/jonathan/career-compass/internal/gap"
	"github.com/jonathan/career-compass/internal/refdata"
	"github.com/jonathan/career-compass/internal/store"
	"github.com/jonathan/career-compass/internal/types"
)

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text"`
	TargetRole string `json:"target_role,omitempty"`
}

// KeywordsRequest is the request body for POST /analyze/keywords.
type KeywordsRequest struct {
	ResumeText string   `json:"resume_text"`
	Keywords   []string `json:"keywords,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := analyzer.ValidateLength(req.ResumeText); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.newAnalyzer(r.Context())
	if err != nil {
		s.referenceDataError(w, err)
		return
	}

	report := a.Analyze(req.ResumeText, analyzer.Options{TargetRole: req.TargetRole})

	if s.store != nil {
		if err := s.store.SaveReport(r.Context(), report); err != nil {
			// Persistence is best-effort; the analysis itself succeeded.
			log.Printf("Failed to persist report %s: %v", report.ID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := analyzer.ValidateLength(req.ResumeText); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.newAnalyzer(r.Context())
	if err != nil {
		s.referenceDataError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, a.MatchKeywords(req.ResumeText, req.Keywords))
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := s.loadTrends(r.Context())
	if err != nil {
		s.referenceDataError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, trends)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Report storage not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Report not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// newAnalyzer resolves the reference snapshot and builds an analyzer
// for one request. Trends and projects are fetched concurrently.
func (s *Server) newAnalyzer(ctx context.Context) (*analyzer.Analyzer, error) {
	var (
		trends   []types.TrendRecord
		projects []types.Project
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trends, err = s.loadTrends(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.loadProjects(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analyzer.New(analyzer.ReferenceData{
		Roles:    gap.DefaultRoleRequirements(),
		Trends:   trends,
		Projects: projects,
	})
}

// loadTrends resolves trend records in priority order: database,
// snapshot file, embedded defaults.
func (s *Server) loadTrends(ctx context.Context) ([]types.TrendRecord, error) {
	if s.store != nil {
		return s.store.GetTrends(ctx)
	}
	if s.trendsPath != "" {
		return refdata.LoadTrendsFile(s.trendsPath)
	}
	return refdata.DefaultTrends(), nil
}

func (s *Server) loadProjects(ctx context.Context) ([]types.Project, error) {
	if s.store != nil {
		return s.store.GetProjects(ctx)
	}
	if s.projectsPath != "" {
		return refdata.LoadProjectsFile(s.projectsPath)
	}
	return refdata.DefaultProjects(), nil
}

// referenceDataError maps reference data failures to 503 so callers can
// retry once the trend snapshot is available again.
func (s *Server) referenceDataError(w http.ResponseWriter, err error) {
	var refErr *analyzer.ReferenceDataError
	var schemaErr *refdata.SchemaError
	if errors.As(err, &refErr) || errors.As(err, &schemaErr) {
		s.errorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.errorResponse(w, http.StatusServiceUnavailable, "Reference data unavailable: "+err.Error())
}
