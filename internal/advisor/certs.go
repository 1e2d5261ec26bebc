package advisor

import (
	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minCerts = 3
	maxCerts = 6
)

// RecommendCerts picks certifications for the candidate's skill gaps,
// topped up with the role's default certifications when gaps alone yield
// fewer than minCerts. Duplicates are dropped by name.
func RecommendCerts(reg *knowledge.Registry, gaps []types.SkillGap, role string) []types.Certification {
	catalog := reg.Certs()
	seen := make(map[string]struct{})
	var certs []types.Certification

	add := func(c types.Certification) {
		if len(certs) >= maxCerts {
			return
		}
		if _, dup := seen[c.Name]; dup {
			return
		}
		seen[c.Name] = struct{}{}
		certs = append(certs, c)
	}

	for _, gap := range gaps {
		if c, ok := catalog.SkillCerts[gap.Skill]; ok {
			c.Area = gap.Skill
			add(c)
		}
	}

	if len(certs) < minCerts {
		defaults, ok := catalog.RoleCerts[role]
		if !ok {
			defaults = catalog.RoleCerts["default"]
		}
		for _, c := range defaults {
			add(c)
		}
	}
	return certs
}
