package parsing

import (
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailPattern   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern   = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	profilePattern = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|github\.com/)[A-Za-z0-9_\-]+`)
)

// ExtractContact pulls the first email, phone number, and LinkedIn or
// GitHub profile link from the text. Fields stay nil when absent so
// downstream scoring can count what was actually found.
func ExtractContact(text string) types.ContactInfo {
	var info types.ContactInfo
	if m := emailPattern.FindString(text); m != "" {
		info.Email = &m
	}
	if m := phonePattern.FindString(text); m != "" {
		info.Phone = &m
	}
	if m := profilePattern.FindString(text); m != "" {
		info.ProfileLink = &m
	}
	return info
}
