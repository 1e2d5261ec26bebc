package types

// Warning flags surfaced alongside analysis results. Warnings are
// informational; they never abort an analysis.
type Warning string

const (
	// WarnInputEmpty marks a blank or near-empty resume; all scores floor
	// at zero.
	WarnInputEmpty Warning = "input_empty"
	// WarnLowConfidence marks non-empty text from which no skills could be
	// extracted.
	WarnLowConfidence Warning = "extraction_low_confidence"
	// WarnUnresolvedIndustry marks a fallback to the default industry
	// salary table.
	WarnUnresolvedIndustry Warning = "unresolved_industry"
	// WarnUnresolvedRole marks that no job profile cleared the role
	// detection threshold.
	WarnUnresolvedRole Warning = "unresolved_role"
)

// Analysis is the complete result of analyzing one resume against one job.
type Analysis struct {
	ID        string            `json:"id"`
	Profile   *ExtractedProfile `json:"profile"`
	Match     *MatchResult      `json:"match"`
	Salary    *SalaryEstimate   `json:"salary"`
	Advisor   *AdvisorReport    `json:"advisor"`
	Warnings  []Warning         `json:"warnings,omitempty"`
	InputName string            `json:"input_name,omitempty"`
}

// HasWarning reports whether the analysis carries the given warning.
func (a *Analysis) HasWarning(w Warning) bool {
	for _, got := range a.Warnings {
		if got == w {
			return true
		}
	}
	return false
}
