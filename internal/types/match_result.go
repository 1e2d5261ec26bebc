package types

// CriterionScore is one rubric criterion's result: points earned, the cap for
// the criterion, and a short verdict string.
type CriterionScore struct {
	Points  float64 `json:"points"`
	Max     float64 `json:"max"`
	Verdict string  `json:"verdict"`
}

// QualityReport is the 8-criterion resume quality rubric result. Total is the
// sum of the per-criterion points and never exceeds 100.
type QualityReport struct {
	Total     float64                   `json:"total"`
	Breakdown map[string]CriterionScore `json:"breakdown"`
	Issues    []string                  `json:"issues,omitempty"`
}

// Readiness is the interview readiness assessment.
type Readiness struct {
	Score     float64  `json:"score"`
	Level     string   `json:"level"`
	Strengths []string `json:"strengths,omitempty"`
	Concerns  []string `json:"concerns,omitempty"`
}

// MatchResult is the full scoring output for one (resume, job) pair. It is
// derived, recomputed on every analysis and never mutated after creation.
type MatchResult struct {
	Role             string   `json:"role,omitempty"`
	Matched          []string `json:"matched"`
	MissingCritical  []string `json:"missing_critical,omitempty"`
	MissingRequired  []string `json:"missing_required,omitempty"`
	MissingPreferred []string `json:"missing_preferred,omitempty"`
	// MatchPercent is the importance- and tier-weighted match, in [0, 100].
	MatchPercent float64       `json:"match_percent"`
	ATSScore     float64       `json:"ats_score"`
	Quality      QualityReport `json:"quality"`
	Readiness    Readiness     `json:"readiness"`
}

// Missing returns all missing skills, critical tier first.
func (m *MatchResult) Missing() []string {
	out := make([]string, 0, len(m.MissingCritical)+len(m.MissingRequired)+len(m.MissingPreferred))
	out = append(out, m.MissingCritical...)
	out = append(out, m.MissingRequired...)
	out = append(out, m.MissingPreferred...)
	return out
}
