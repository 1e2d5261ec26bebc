package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// analyzeRequest is the JSON body for POST /analyze.
type analyzeRequest struct {
	Text            string `json:"text"`
	Name            string `json:"name,omitempty"`
	Role            string `json:"role,omitempty"`
	JobText         string `json:"job_text,omitempty"`
	Industry        string `json:"industry,omitempty"`
	Location        string `json:"location,omitempty"`
	TimeframeMonths int    `json:"timeframe_months,omitempty"`
}

func (r analyzeRequest) toAnalyzer() analyzer.Request {
	return analyzer.Request{
		Text:            r.Text,
		Name:            r.Name,
		Role:            r.Role,
		JobText:         r.JobText,
		Industry:        r.Industry,
		Location:        r.Location,
		TimeframeMonths: r.TimeframeMonths,
	}
}

// batchRequest is the JSON body for POST /analyze/batch. Role, industry,
// location, and timeframe apply to every resume in the batch.
type batchRequest struct {
	Resumes []struct {
		Text string `json:"text"`
		Name string `json:"name,omitempty"`
	} `json:"resumes"`
	Role            string `json:"role,omitempty"`
	JobText         string `json:"job_text,omitempty"`
	Industry        string `json:"industry,omitempty"`
	Location        string `json:"location,omitempty"`
	TimeframeMonths int    `json:"timeframe_months,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req.toAnalyzer())
	if err != nil {
		var unknownRole *analyzer.UnknownRoleError
		if errors.As(err, &unknownRole) {
			s.errorResponse(w, http.StatusBadRequest, unknownRole.Error())
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Resumes) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no resumes provided")
		return
	}

	reqs := make([]analyzer.Request, len(req.Resumes))
	for i, resume := range req.Resumes {
		reqs[i] = analyzer.Request{
			Text:            resume.Text,
			Name:            resume.Name,
			Role:            req.Role,
			JobText:         req.JobText,
			Industry:        req.Industry,
			Location:        req.Location,
			TimeframeMonths: req.TimeframeMonths,
		}
	}

	ranked, err := s.analyzer.AnalyzeBatch(r.Context(), reqs, s.workers)
	if err != nil {
		var unknownRole *analyzer.UnknownRoleError
		if errors.As(err, &unknownRole) {
			s.errorResponse(w, http.StatusBadRequest, unknownRole.Error())
			return
		}
		s.logger.Error("batch analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "batch analysis failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"ranked": ranked})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": s.registry.Profiles()})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	role := r.PathValue("role")
	profile, ok := s.registry.Profile(role)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "unknown role: "+role)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": s.registry.Skills()})
}
