package ranking

import (
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Rubric caps. The eight criteria sum to exactly 100.
const (
	maxLength         = 15
	maxSkills         = 15
	maxExperience     = 20
	maxEducation      = 15
	maxContact        = 10
	maxSections       = 10
	maxActionVerbs    = 10
	maxQuantification = 5
)

// EvaluateQuality scores resume quality on the eight-criterion rubric.
// Empty input earns zero on every criterion.
func EvaluateQuality(profile *types.ExtractedProfile, text string) types.QualityReport {
	report := types.QualityReport{
		Breakdown: make(map[string]types.CriterionScore, 8),
	}
	add := func(name string, points, max float64, verdict, issue string) {
		report.Breakdown[name] = types.CriterionScore{Points: points, Max: max, Verdict: verdict}
		report.Total += points
		if issue != "" {
			report.Issues = append(report.Issues, issue)
		}
	}

	// Empty input floors every criterion at zero.
	if profile.TextLength == 0 {
		add("length", 0, maxLength, "empty", "resume text is empty")
		add("skills", 0, maxSkills, "empty", "")
		add("experience", 0, maxExperience, "empty", "")
		add("education", 0, maxEducation, "empty", "")
		add("contact", 0, maxContact, "empty", "")
		add("sections", 0, maxSections, "empty", "")
		add("action_verbs", 0, maxActionVerbs, "empty", "")
		add("quantification", 0, maxQuantification, "empty", "")
		return report
	}

	switch n := profile.TextLength; {
	case n >= 800:
		add("length", 15, maxLength, "comprehensive", "")
	case n >= 600:
		add("length", 12, maxLength, "good", "")
	case n >= 400:
		add("length", 8, maxLength, "brief", "")
	default:
		add("length", 3, maxLength, "too short", "resume is very short; expand experience and project detail")
	}

	switch n := len(profile.Skills); {
	case n >= 12:
		add("skills", 15, maxSkills, "broad", "")
	case n >= 8:
		add("skills", 12, maxSkills, "solid", "")
	case n >= 5:
		add("skills", 8, maxSkills, "narrow", "")
	default:
		add("skills", 4, maxSkills, "sparse", "list more of the technologies you have worked with")
	}

	if profile.ExperienceYears == nil {
		add("experience", 0, maxExperience, "not stated", "state your years of experience explicitly")
	} else {
		switch years := profile.Years(); {
		case years >= 5:
			add("experience", 20, maxExperience, "senior", "")
		case years >= 3:
			add("experience", 15, maxExperience, "mid", "")
		case years >= 1:
			add("experience", 10, maxExperience, "early", "")
		default:
			add("experience", 5, maxExperience, "entry", "")
		}
	}

	switch profile.Education {
	case types.EducationDoctorate, types.EducationMaster:
		add("education", 15, maxEducation, "advanced degree", "")
	case types.EducationBachelor:
		add("education", 12, maxEducation, "bachelor", "")
	case types.EducationAssociate:
		add("education", 8, maxEducation, "associate", "")
	default:
		add("education", 0, maxEducation, "not found", "add an education section with your degree")
	}

	switch profile.Contact.Count() {
	case 3:
		add("contact", 10, maxContact, "complete", "")
	case 2:
		add("contact", 8, maxContact, "good", "")
	case 1:
		add("contact", 5, maxContact, "minimal", "add a second contact channel such as a profile link")
	default:
		add("contact", 0, maxContact, "missing", "add an email address and phone number")
	}

	switch n := coreSectionCount(profile); {
	case n >= 3:
		add("sections", 10, maxSections, "well structured", "")
	case n == 2:
		add("sections", 7, maxSections, "mostly structured", "")
	default:
		add("sections", 3, maxSections, "unstructured", "use clear experience, education, and skills headings")
	}

	switch n := parsing.CountActionVerbs(text); {
	case n >= 8:
		add("action_verbs", 10, maxActionVerbs, "strong", "")
	case n >= 5:
		add("action_verbs", 7, maxActionVerbs, "decent", "")
	case n >= 2:
		add("action_verbs", 4, maxActionVerbs, "weak", "")
	default:
		add("action_verbs", 0, maxActionVerbs, "absent", "start bullet points with action verbs like led, built, improved")
	}

	switch n := parsing.CountQuantifiedResults(text); {
	case n >= 5:
		add("quantification", 5, maxQuantification, "well quantified", "")
	case n >= 2:
		add("quantification", 3, maxQuantification, "some numbers", "")
	default:
		add("quantification", 0, maxQuantification, "unquantified", "quantify achievements with percentages or dollar figures")
	}

	return report
}

func coreSectionCount(profile *types.ExtractedProfile) int {
	n := 0
	for _, name := range parsing.CoreSections {
		if profile.HasSection(name) {
			n++
		}
	}
	return n
}
