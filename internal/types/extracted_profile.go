package types

// EducationLevel is the highest degree detected in a resume.
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

var educationNames = map[EducationLevel]string{
	EducationNone:      "none",
	EducationAssociate: "associate",
	EducationBachelor:  "bachelor",
	EducationMaster:    "master",
	EducationDoctorate: "doctorate",
}

var educationByName = map[string]EducationLevel{
	"none":      EducationNone,
	"associate": EducationAssociate,
	"bachelor":  EducationBachelor,
	"master":    EducationMaster,
	"doctorate": EducationDoctorate,
}

// ParseEducationLevel maps a lowercase level name to its enum value.
// Unknown names map to EducationNone.
func ParseEducationLevel(name string) EducationLevel {
	return educationByName[name]
}

func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return "none"
}

// MarshalText renders the level as its lowercase name for JSON output.
func (l EducationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ContactInfo holds independently validated contact fields. A nil field means
// the field was not found; empty strings are never stored.
type ContactInfo struct {
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ProfileLink *string `json:"profile_link,omitempty"`
}

// Count returns how many contact fields were found.
func (c ContactInfo) Count() int {
	n := 0
	if c.Email != nil {
		n++
	}
	if c.Phone != nil {
		n++
	}
	if c.ProfileLink != nil {
		n++
	}
	return n
}

// ExtractedProfile is everything derived from one resume text. It is built
// during extraction and treated as frozen afterwards.
type ExtractedProfile struct {
	Skills []string `json:"skills"`
	// ExperienceYears is nil when no year-count pattern was found. Nil is
	// distinct from zero experience.
	ExperienceYears *int           `json:"experience_years"`
	Education       EducationLevel `json:"education"`
	Contact         ContactInfo    `json:"contact"`
	Sections        []string       `json:"sections"`
	TextLength      int            `json:"text_length"`
}

// Years returns the detected experience, or 0 when none was found.
func (p *ExtractedProfile) Years() int {
	if p.ExperienceYears == nil {
		return 0
	}
	return *p.ExperienceYears
}

// HasSection reports whether a named section heading was detected.
func (p *ExtractedProfile) HasSection(name string) bool {
	for _, s := range p.Sections {
		if s == name {
			return true
		}
	}
	return false
}
