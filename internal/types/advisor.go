package types

// SkillGap is one missing skill with learning guidance, ranked by tier then
// market demand.
type SkillGap struct {
	Skill         string          `json:"skill"`
	Tier          RequirementTier `json:"tier"`
	Demand        string          `json:"demand"`
	GrowthRate    float64         `json:"growth_rate"`
	LearningWeeks int             `json:"learning_weeks"`
	Resources     []string        `json:"resources,omitempty"`
}

// RoadmapPhase groups gap skills into one learning phase.
type RoadmapPhase struct {
	Name   string     `json:"name"`
	Weeks  int        `json:"weeks"`
	Skills []SkillGap `json:"skills"`
}

// Roadmap distributes skill gaps across a requested timeframe. Skills that do
// not fit are deferred to Beyond rather than dropped.
type Roadmap struct {
	TimeframeMonths int            `json:"timeframe_months"`
	Phases          []RoadmapPhase `json:"phases"`
	Beyond          []SkillGap     `json:"beyond_timeframe,omitempty"`
}

// Certification is a recommended credential for the target role.
type Certification struct {
	Name      string `json:"name"`
	Relevance string `json:"relevance"`
	Duration  string `json:"duration"`
	Area      string `json:"area,omitempty"`
}

// Milestone is one step on a career progression path.
type Milestone struct {
	Title          string   `json:"title"`
	Timeline       string   `json:"timeline"`
	SalaryIncrease string   `json:"salary_increase"`
	Skills         []string `json:"skills"`
}

// AdvisorReport bundles the career guidance derived from a match result.
type AdvisorReport struct {
	Gaps           []SkillGap      `json:"gaps,omitempty"`
	Roadmap        *Roadmap        `json:"roadmap,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Progression    []Milestone     `json:"progression,omitempty"`
	Suggestions    []string        `json:"suggestions,omitempty"`
}
