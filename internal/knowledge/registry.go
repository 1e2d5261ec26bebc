// Package knowledge loads and indexes the static datasets the analyzer
// depends on: the skill taxonomy, job profiles, industry salary tables,
// certification catalog, and career progression tracks. Data ships embedded
// in the binary; a directory override replaces it wholesale.
package knowledge

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// IndustryTable is one industry's salary data: a band per experience level
// plus optional location multipliers.
type IndustryTable struct {
	Levels    map[string]types.SalaryBand
	Locations map[string]float64
}

// CertCatalog maps skills and roles to recommended certifications.
type CertCatalog struct {
	SkillCerts map[string]types.Certification   `json:"skill_certs"`
	RoleCerts  map[string][]types.Certification `json:"role_certs"`
}

// ProgressionLevel is one rung of a career track. MaxYears bounds the
// experience range the rung applies to; the final rung uses a sentinel high
// value.
type ProgressionLevel struct {
	MaxYears       int      `json:"max_years,omitempty"`
	Title          string   `json:"title"`
	Timeline       string   `json:"timeline"`
	SalaryIncrease string   `json:"salary_increase"`
	Skills         []string `json:"skills"`
}

// Milestone converts the level to its output representation.
func (l ProgressionLevel) Milestone() types.Milestone {
	return types.Milestone{
		Title:          l.Title,
		Timeline:       l.Timeline,
		SalaryIncrease: l.SalaryIncrease,
		Skills:         l.Skills,
	}
}

// ProgressionTrack is a named career ladder selected when the candidate's
// skills overlap its trigger skills.
type ProgressionTrack struct {
	Name     string             `json:"name"`
	Triggers []string           `json:"triggers"`
	Levels   []ProgressionLevel `json:"levels"`
}

// Progression holds all career tracks plus the fallback level used when no
// track matches.
type Progression struct {
	Tracks  []ProgressionTrack `json:"tracks"`
	Default ProgressionLevel   `json:"default"`
}

// Registry is the loaded, validated knowledge base. It is immutable after
// Load and safe for concurrent reads.
type Registry struct {
	skills   []types.Skill
	byName   map[string]*types.Skill
	byAlias  map[string]*types.Skill
	profiles []types.JobProfile
	byRole   map[string]*types.JobProfile
	salaries map[string]IndustryTable
	certs    CertCatalog
	tracks   Progression
}

// Skills returns every skill in canonical file order.
func (r *Registry) Skills() []types.Skill {
	return r.skills
}

// SkillByName looks up a skill by its canonical name, case-insensitively.
func (r *Registry) SkillByName(name string) (*types.Skill, bool) {
	s, ok := r.byName[strings.ToLower(name)]
	return s, ok
}

// Resolve maps a canonical name or a registered alias to its skill.
func (r *Registry) Resolve(nameOrAlias string) (*types.Skill, bool) {
	key := strings.ToLower(nameOrAlias)
	if s, ok := r.byName[key]; ok {
		return s, true
	}
	s, ok := r.byAlias[key]
	return s, ok
}

// Importance returns the skill's importance weight, or 1.0 for skills the
// taxonomy does not know.
func (r *Registry) Importance(name string) float64 {
	if s, ok := r.Resolve(name); ok {
		return s.Importance
	}
	return 1.0
}

// Profiles returns every job profile in canonical file order. Detection
// tie-breaks rely on this ordering being stable.
func (r *Registry) Profiles() []types.JobProfile {
	return r.profiles
}

// Profile looks up a job profile by role name, case-insensitively.
func (r *Registry) Profile(role string) (*types.JobProfile, bool) {
	p, ok := r.byRole[strings.ToLower(role)]
	return p, ok
}

// SalaryTable returns the salary table for an industry.
func (r *Registry) SalaryTable(industry string) (IndustryTable, bool) {
	t, ok := r.salaries[industry]
	return t, ok
}

// Industries lists the industries with salary tables, unordered.
func (r *Registry) Industries() []string {
	out := make([]string, 0, len(r.salaries))
	for name := range r.salaries {
		out = append(out, name)
	}
	return out
}

// Certs returns the certification catalog.
func (r *Registry) Certs() CertCatalog {
	return r.certs
}

// Progression returns the career progression tracks.
func (r *Registry) Progression() Progression {
	return r.tracks
}
