package parsing

import (
	"strings"
)

// CoreSections are the headings resume screeners expect to find. Section
// coverage scores count these three only.
var CoreSections = []string{"experience", "education", "skills"}

var sectionSynonyms = map[string][]string{
	"experience": {"experience", "employment", "work history", "professional background"},
	"education":  {"education", "academic background", "qualifications"},
	"skills":     {"skills", "technical skills", "core competencies", "technologies"},
	"projects":   {"projects", "personal projects", "portfolio"},
	"summary":    {"summary", "objective", "profile", "about me"},
}

// ExtractSections reports which known resume sections appear in the text,
// in the fixed canonical order: core sections first, then projects and
// summary.
func ExtractSections(text string) []string {
	lower := strings.ToLower(text)
	order := append(append([]string{}, CoreSections...), "projects", "summary")

	var found []string
	for _, name := range order {
		for _, syn := range sectionSynonyms[name] {
			if strings.Contains(lower, syn) {
				found = append(found, name)
				break
			}
		}
	}
	return found
}
