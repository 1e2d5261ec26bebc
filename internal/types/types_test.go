package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierWeight(t *testing.T) {
	assert.Equal(t, 3.0, TierWeight(TierCritical))
	assert.Equal(t, 2.0, TierWeight(TierRequired))
	assert.Equal(t, 1.0, TierWeight(TierPreferred))
	assert.Equal(t, 0.0, TierWeight(RequirementTier("bogus")))
}

func TestDemandRank(t *testing.T) {
	assert.Equal(t, 3, DemandRank("Critical"))
	assert.Equal(t, 2, DemandRank("High"))
	assert.Equal(t, 1, DemandRank("Medium"))
	assert.Equal(t, 0, DemandRank("Low"))
	assert.Equal(t, 0, DemandRank(""))
}

func TestEducationLevel_Ordering(t *testing.T) {
	assert.True(t, EducationDoctorate > EducationMaster)
	assert.True(t, EducationMaster > EducationBachelor)
	assert.True(t, EducationBachelor > EducationAssociate)
	assert.True(t, EducationAssociate > EducationNone)
}

func TestEducationLevel_MarshalsAsName(t *testing.T) {
	raw, err := json.Marshal(struct {
		Level EducationLevel `json:"level"`
	}{Level: EducationMaster})
	require.NoError(t, err)

	assert.JSONEq(t, `{"level": "master"}`, string(raw))
}

func TestParseEducationLevel_RoundTrip(t *testing.T) {
	for _, level := range []EducationLevel{
		EducationNone, EducationAssociate, EducationBachelor,
		EducationMaster, EducationDoctorate,
	} {
		assert.Equal(t, level, ParseEducationLevel(level.String()))
	}
	assert.Equal(t, EducationNone, ParseEducationLevel("wizard"))
}

func TestContactInfo_Count(t *testing.T) {
	email := "a@b.com"
	assert.Equal(t, 0, ContactInfo{}.Count())
	assert.Equal(t, 1, ContactInfo{Email: &email}.Count())
}

func TestExtractedProfile_Years(t *testing.T) {
	n := 7
	assert.Equal(t, 0, (&ExtractedProfile{}).Years())
	assert.Equal(t, 7, (&ExtractedProfile{ExperienceYears: &n}).Years())
}

func TestSalaryBand_Scale(t *testing.T) {
	band := SalaryBand{Min: 100, Avg: 150, Max: 200}.Scale(1.1)

	assert.InDelta(t, 110, band.Min, 0.001)
	assert.InDelta(t, 165, band.Avg, 0.001)
	assert.InDelta(t, 220, band.Max, 0.001)
}

func TestSalaryEstimate_TotalMultiplier(t *testing.T) {
	est := SalaryEstimate{Multipliers: []AppliedMultiplier{
		{Label: "a", Factor: 1.1},
		{Label: "b", Factor: 1.2},
	}}

	assert.InDelta(t, 1.32, est.TotalMultiplier(), 0.0001)
}

func TestMatchResult_MissingOrder(t *testing.T) {
	m := MatchResult{
		MissingCritical:  []string{"a"},
		MissingRequired:  []string{"b"},
		MissingPreferred: []string{"c"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, m.Missing())
}
