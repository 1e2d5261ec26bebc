package parsing

import (
	"regexp"
)

var actionVerbs = []string{
	"led", "managed", "developed", "built", "created", "designed",
	"implemented", "launched", "improved", "increased", "reduced",
	"optimized", "delivered", "architected", "automated", "mentored",
	"established", "streamlined", "migrated", "scaled", "shipped",
	"coordinated", "initiated", "deployed",
}

var quantPattern = regexp.MustCompile(`\d+(?:\.\d+)?%|\$\d[\d,]*(?:\.\d+)?[kmb]?|\b\d+(?:\.\d+)?x\b`)

// CountActionVerbs counts the distinct action verbs present in the text.
// Distinct counting rewards varied writing over repeating one verb.
func CountActionVerbs(text string) int {
	set := TokenSet(Tokenize(text))
	n := 0
	for _, verb := range actionVerbs {
		if _, ok := set[verb]; ok {
			n++
		}
	}
	return n
}

// CountQuantifiedResults counts measurable-impact figures: percentages,
// dollar amounts, and multipliers like "3x".
func CountQuantifiedResults(text string) int {
	return len(quantPattern.FindAllString(text, -1))
}
