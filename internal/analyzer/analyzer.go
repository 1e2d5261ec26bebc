// Package analyzer orchestrates one full resume analysis: extraction,
// matching, scoring, salary prediction, and career advice.
package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/advisor"
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/salary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// UnknownRoleError reports a target role the knowledge base has no
// profile for.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown target role %q", e.Role)
}

// Request is one resume to analyze. Role, JobText, and auto-detection are
// tried in that order to find the job profile to score against.
type Request struct {
	Text            string
	Name            string
	Role            string
	JobText         string
	Industry        string
	Location        string
	TimeframeMonths int
}

// Analyzer runs analyses against one loaded knowledge base. Safe for
// concurrent use.
type Analyzer struct {
	reg    *knowledge.Registry
	logger *zap.Logger
}

func New(reg *knowledge.Registry, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{reg: reg, logger: logger}
}

// Analyze scores one resume. Empty input is not an error: it yields a
// zeroed analysis flagged with the input-empty warning. The only error
// conditions are an unknown explicit role and context cancellation.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*types.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis := &types.Analysis{
		ID:        uuid.NewString(),
		InputName: req.Name,
	}

	profile := parsing.Extract(a.reg, req.Text)
	analysis.Profile = profile

	if profile.TextLength == 0 {
		analysis.Warnings = append(analysis.Warnings, types.WarnInputEmpty)
		analysis.Match = &types.MatchResult{
			Quality:   types.QualityReport{Breakdown: map[string]types.CriterionScore{}},
			Readiness: types.Readiness{Level: "Fair"},
		}
		a.logger.Warn("empty input", zap.String("analysis_id", analysis.ID), zap.String("input", req.Name))
		return analysis, nil
	}
	if len(profile.Skills) == 0 {
		analysis.Warnings = append(analysis.Warnings, types.WarnLowConfidence)
	}

	job, err := a.resolveJob(req, profile, analysis)
	if err != nil {
		return nil, err
	}

	var match *types.MatchResult
	if job != nil {
		match = ranking.Match(a.reg, profile.Skills, job)
	} else {
		match = &types.MatchResult{}
	}
	match.Quality = ranking.EvaluateQuality(profile, req.Text)
	match.ATSScore = ranking.ATSScore(match.Quality, profile, job)
	match.Readiness = ranking.EvaluateReadiness(a.reg, profile, match)
	analysis.Match = match

	est, warnings := salary.Predict(a.reg, profile, salary.Options{
		Industry: req.Industry,
		Location: req.Location,
	})
	analysis.Salary = est
	analysis.Warnings = append(analysis.Warnings, warnings...)

	analysis.Advisor = advisor.Advise(a.reg, profile, match, req.TimeframeMonths)

	a.logger.Info("analysis complete",
		zap.String("analysis_id", analysis.ID),
		zap.String("input", req.Name),
		zap.String("role", match.Role),
		zap.Float64("match_percent", match.MatchPercent),
		zap.Float64("ats_score", match.ATSScore))
	return analysis, nil
}

// resolveJob picks the job profile to score against. An explicit role must
// exist in the registry; a job posting builds an ad-hoc profile; otherwise
// detection runs and may come up empty, which only adds a warning.
func (a *Analyzer) resolveJob(req Request, profile *types.ExtractedProfile, analysis *types.Analysis) (*types.JobProfile, error) {
	if req.Role != "" {
		job, ok := a.reg.Profile(req.Role)
		if !ok {
			return nil, &UnknownRoleError{Role: req.Role}
		}
		return job, nil
	}
	if req.JobText != "" {
		return parsing.BuildProfileFromPosting(a.reg, req.JobText), nil
	}
	if job, ok := parsing.DetectRole(a.reg, profile.Skills); ok {
		return job, nil
	}
	analysis.Warnings = append(analysis.Warnings, types.WarnUnresolvedRole)
	return nil, nil
}
