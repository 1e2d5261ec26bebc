package types

// RequirementTier classifies how strongly a job requires a skill.
type RequirementTier string

const (
	TierCritical  RequirementTier = "critical"
	TierRequired  RequirementTier = "required"
	TierPreferred RequirementTier = "preferred"
)

// TierWeight returns the fixed scoring weight for a tier (critical 3,
// required 2, preferred 1).
func TierWeight(t RequirementTier) float64 {
	switch t {
	case TierCritical:
		return 3
	case TierRequired:
		return 2
	case TierPreferred:
		return 1
	}
	return 0
}

// SalaryBand is a min/avg/max salary range in thousands of USD per year.
type SalaryBand struct {
	Min float64 `json:"min" validate:"min=0"`
	Avg float64 `json:"avg" validate:"min=0"`
	Max float64 `json:"max" validate:"min=0"`
}

// Scale returns the band with every boundary multiplied by factor.
func (b SalaryBand) Scale(factor float64) SalaryBand {
	return SalaryBand{Min: b.Min * factor, Avg: b.Avg * factor, Max: b.Max * factor}
}

// JobProfile describes a target role: its tiered skill requirements, the
// minimum experience expected, and the market salary band. Immutable after
// load.
type JobProfile struct {
	Role          string     `json:"role" validate:"required"`
	Critical      []string   `json:"critical" validate:"required,min=1"`
	Required      []string   `json:"required"`
	Preferred     []string   `json:"preferred,omitempty"`
	MinExperience int        `json:"min_experience" validate:"min=0,max=50"`
	Education     string     `json:"education,omitempty"`
	Salary        SalaryBand `json:"salary"`
}

// SkillsForTier returns the profile's skill list for the given tier.
func (p *JobProfile) SkillsForTier(t RequirementTier) []string {
	switch t {
	case TierCritical:
		return p.Critical
	case TierRequired:
		return p.Required
	case TierPreferred:
		return p.Preferred
	}
	return nil
}

// AllRequired returns critical plus required skills, in declaration order.
func (p *JobProfile) AllRequired() []string {
	out := make([]string, 0, len(p.Critical)+len(p.Required))
	out = append(out, p.Critical...)
	out = append(out, p.Required...)
	return out
}
