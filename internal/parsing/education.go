package parsing

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Degree keywords are matched as whole tokens, so "ms" in "MS Computer
// Science" counts but the letters inside another word do not.
var educationKeywords = []struct {
	level types.EducationLevel
	words []string
}{
	{types.EducationDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{types.EducationMaster, []string{"master", "masters", "ms", "m.s", "msc", "m.sc", "mba", "mtech", "m.tech"}},
	{types.EducationBachelor, []string{"bachelor", "bachelors", "bs", "b.s", "bsc", "b.sc", "btech", "b.tech"}},
	{types.EducationAssociate, []string{"associate", "diploma", "a.s", "a.a"}},
}

// ExtractEducation returns the highest degree level mentioned in the text.
func ExtractEducation(text string) types.EducationLevel {
	set := TokenSet(Tokenize(text))
	for _, group := range educationKeywords {
		for _, word := range group.words {
			if _, ok := set[word]; ok {
				return group.level
			}
		}
	}
	return types.EducationNone
}
