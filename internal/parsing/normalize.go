// Package parsing turns free resume and job-posting text into structured
// facts: canonical skills, experience years, education level, contact
// details, and section headings. All matching is token based so that
// substrings never fire ("java" must not match inside "javascript").
package parsing

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r belongs inside a token. '+', '#' and '.' are
// kept so that names like "c++", "c#" and "node.js" survive tokenization.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// Normalize lowercases text and collapses runs of whitespace.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits text into lowercase word tokens. Trailing dots are
// stripped so sentence punctuation does not break matches, while interior
// dots ("node.js") are preserved.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordRune(r)
	})
	out := tokens[:0]
	for _, tok := range tokens {
		tok = strings.TrimRight(tok, ".")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// TokenSet builds a membership set over tokens.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// MatchPhrase reports whether phrase occurs in tokens as a whole-word
// match. Multi-word phrases must appear as a contiguous token run.
func MatchPhrase(tokens []string, set map[string]struct{}, phrase string) bool {
	parts := Tokenize(phrase)
	switch len(parts) {
	case 0:
		return false
	case 1:
		_, ok := set[parts[0]]
		return ok
	}
	for i := 0; i+len(parts) <= len(tokens); i++ {
		hit := true
		for j, part := range parts {
			if tokens[i+j] != part {
				hit = false
				break
			}
		}
		if hit {
			return true
		}
	}
	return false
}
