package parsing

import (
	"github.com/jonathan/resume-analyzer/internal/knowledge"
)

// ExtractSkills scans text for every skill the registry knows, matching
// canonical names and aliases as whole words. Results carry canonical names
// only, at most once per skill, in registry order.
func ExtractSkills(reg *knowledge.Registry, text string) []string {
	tokens := Tokenize(text)
	set := TokenSet(tokens)

	var found []string
	for _, skill := range reg.Skills() {
		if MatchPhrase(tokens, set, skill.Name) {
			found = append(found, skill.Name)
			continue
		}
		for _, alias := range skill.Aliases {
			if MatchPhrase(tokens, set, alias) {
				found = append(found, skill.Name)
				break
			}
		}
	}
	return found
}
