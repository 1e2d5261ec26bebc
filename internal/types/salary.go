package types

// AppliedMultiplier records one labeled factor that went into a salary
// estimate, for explainability.
type AppliedMultiplier struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// SalaryEstimate is the multiplicative salary prediction for one resume.
// Bounds always satisfy Min <= Avg <= Max. The product of Multipliers equals
// the total factor applied to the base band.
type SalaryEstimate struct {
	Band        SalaryBand          `json:"band"`
	Currency    string              `json:"currency"`
	Period      string              `json:"period"`
	Level       string              `json:"level"`
	Industry    string              `json:"industry"`
	Multipliers []AppliedMultiplier `json:"multipliers"`
	// Inflated is set when the combined multiplier exceeds the sanity
	// ceiling; the estimate is still reported, not capped.
	Inflated bool `json:"inflated,omitempty"`
}

// TotalMultiplier returns the product of all applied multipliers.
func (e *SalaryEstimate) TotalMultiplier() float64 {
	total := 1.0
	for _, m := range e.Multipliers {
		total *= m.Factor
	}
	return total
}
