package types

// SkillCategory separates hard technology skills from behavioral ones.
type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
)

// Skill is one canonical entry in the skill taxonomy. Aliases map
// alternate spellings ("js", "k8s") back to the canonical name during
// extraction. Importance weights the skill inside a tier when scoring a
// match; SalaryPremium feeds compensation estimates.
type Skill struct {
	Name          string        `json:"name" validate:"required"`
	Category      SkillCategory `json:"category" validate:"required,oneof=technical soft"`
	Group         string        `json:"group,omitempty"`
	Aliases       []string      `json:"aliases,omitempty"`
	Demand        string        `json:"demand,omitempty" validate:"omitempty,oneof=Critical High Medium Low"`
	GrowthRate    float64       `json:"growth_rate,omitempty"`
	Importance    float64       `json:"importance" validate:"min=1,max=2"`
	SalaryPremium float64       `json:"salary_premium,omitempty" validate:"min=0,max=1"`
	LearningWeeks int           `json:"learning_weeks,omitempty" validate:"min=0,max=104"`
	Resources     []string      `json:"resources,omitempty"`
}

// Technical reports whether the skill is a hard technology skill.
func (s *Skill) Technical() bool {
	return s.Category == CategoryTechnical
}

var demandRank = map[string]int{
	"Critical": 3,
	"High":     2,
	"Medium":   1,
	"Low":      0,
}

// DemandRank orders demand labels for sorting, highest first. Unknown or
// empty labels rank lowest.
func DemandRank(demand string) int {
	return demandRank[demand]
}
