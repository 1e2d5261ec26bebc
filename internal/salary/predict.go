// Package salary predicts a compensation range for an extracted profile.
// The model is deliberately transparent: a base band for the industry and
// experience level, scaled by labeled multipliers that are all reported
// back to the caller.
package salary

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultIndustry is used when the requested industry has no salary table.
const DefaultIndustry = "Tech"

// Experience multiplier: 2% per year up to 20 years.
const (
	perYearFactor       = 0.02
	experienceYearCap   = 20
	inflationThreshold  = 4.0
	educationDoctorate  = 1.15
	educationMaster     = 1.10
	educationBachelor   = 1.05
)

// Options narrow the prediction to an industry and location. Zero values
// fall back to the default industry table with no location adjustment.
type Options struct {
	Industry string
	Location string
}

// Predict estimates a salary band for the profile. Unknown industries fall
// back to the default table and surface a warning rather than failing.
// The combined multiplier is never capped; implausible products only set
// the Inflated flag.
func Predict(reg *knowledge.Registry, profile *types.ExtractedProfile, opts Options) (*types.SalaryEstimate, []types.Warning) {
	var warnings []types.Warning

	industry := opts.Industry
	if industry == "" {
		industry = DefaultIndustry
	}
	table, ok := reg.SalaryTable(industry)
	if !ok {
		warnings = append(warnings, types.WarnUnresolvedIndustry)
		industry = DefaultIndustry
		table, ok = reg.SalaryTable(industry)
		if !ok {
			return nil, warnings
		}
	}

	years := profile.Years()
	level := experienceLevel(years)
	base, ok := table.Levels[level]
	if !ok {
		return nil, append(warnings, types.WarnUnresolvedIndustry)
	}

	est := &types.SalaryEstimate{
		Currency: "USD",
		Period:   "year",
		Level:    level,
		Industry: industry,
	}

	// Each premium skill contributes once; canonical extraction already
	// deduplicates aliases.
	for _, name := range profile.Skills {
		skill, ok := reg.Resolve(name)
		if !ok || skill.SalaryPremium <= 0 {
			continue
		}
		est.Multipliers = append(est.Multipliers, types.AppliedMultiplier{
			Label:  fmt.Sprintf("skill:%s", skill.Name),
			Factor: 1 + skill.SalaryPremium,
		})
	}

	if factor := educationFactor(profile.Education); factor != 1 {
		est.Multipliers = append(est.Multipliers, types.AppliedMultiplier{
			Label:  fmt.Sprintf("education:%s", profile.Education),
			Factor: factor,
		})
	}

	if years > 0 {
		capped := years
		if capped > experienceYearCap {
			capped = experienceYearCap
		}
		est.Multipliers = append(est.Multipliers, types.AppliedMultiplier{
			Label:  "experience",
			Factor: 1 + perYearFactor*float64(capped),
		})
	}

	if opts.Location != "" {
		if factor, ok := table.Locations[opts.Location]; ok {
			est.Multipliers = append(est.Multipliers, types.AppliedMultiplier{
				Label:  fmt.Sprintf("location:%s", opts.Location),
				Factor: factor,
			})
		}
	}

	total := est.TotalMultiplier()
	est.Inflated = total > inflationThreshold
	est.Band = base.Scale(total)
	return est, warnings
}

func experienceLevel(years int) string {
	switch {
	case years < 2:
		return "Entry"
	case years < 5:
		return "Junior"
	case years < 10:
		return "Mid-Level"
	case years < 15:
		return "Senior"
	default:
		return "Staff+"
	}
}

func educationFactor(level types.EducationLevel) float64 {
	switch level {
	case types.EducationDoctorate:
		return educationDoctorate
	case types.EducationMaster:
		return educationMaster
	case types.EducationBachelor:
		return educationBachelor
	}
	return 1.0
}
