package parsing

import (
	"regexp"
	"strconv"
	"time"
)

var (
	yearsPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)
	sincePattern = regexp.MustCompile(`(?i)(?:since|from)\s+((?:19|20)\d{2})`)
)

const maxPlausibleYears = 50

// ExtractExperienceYears finds the largest experience claim in the text.
// Both explicit counts ("7 years", "10+ yrs") and start years ("since
// 2018") are recognized; start years are converted against the current
// year and discarded when implausible. Returns nil when nothing matched,
// which is distinct from zero.
func ExtractExperienceYears(text string) *int {
	best := -1

	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}

	now := time.Now().Year()
	for _, m := range sincePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		n := now - start
		if n < 1 || n > 60 {
			continue
		}
		if n > best {
			best = n
		}
	}

	if best < 0 {
		return nil
	}
	if best > maxPlausibleYears {
		best = maxPlausibleYears
	}
	return &best
}
