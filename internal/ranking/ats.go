package ranking

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Screening score component weights. Quality dominates; experience
// sufficiency and section coverage refine it.
const (
	atsQualityWeight    = 0.50
	atsExperienceWeight = 0.30
	atsSectionsWeight   = 0.20

	// Reference years used when the job states no experience minimum.
	defaultExperienceReference = 8
)

// ATSScore estimates how an automated screener would rate the resume for
// the job: a blend of quality, experience sufficiency against the job's
// minimum, and core section coverage. Always in [0, 100].
func ATSScore(quality types.QualityReport, profile *types.ExtractedProfile, job *types.JobProfile) float64 {
	reference := defaultExperienceReference
	if job != nil && job.MinExperience > 0 {
		reference = job.MinExperience
	}
	sufficiency := clamp(float64(profile.Years())/float64(reference)*100, 0, 100)

	coverage := float64(coreSectionCount(profile)) / 3.0 * 100

	score := atsQualityWeight*quality.Total +
		atsExperienceWeight*sufficiency +
		atsSectionsWeight*coverage
	return clamp(score, 0, 100)
}
