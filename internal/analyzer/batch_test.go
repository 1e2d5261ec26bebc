package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const juniorResume = `SKILLS
Python

1 year of experience.
`

func TestAnalyzeBatch_RanksByScreeningScore(t *testing.T) {
	a := testAnalyzer(t)

	ranked, err := a.AnalyzeBatch(context.Background(), []Request{
		{Text: juniorResume, Name: "junior.txt", Role: "Senior Python Developer"},
		{Text: seniorResume, Name: "senior.txt", Role: "Senior Python Developer"},
	}, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "senior.txt", ranked[0].Analysis.InputName)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "junior.txt", ranked[1].Analysis.InputName)
	assert.GreaterOrEqual(t,
		ranked[0].Analysis.Match.ATSScore,
		ranked[1].Analysis.Match.ATSScore)
}

func TestAnalyzeBatch_TiesKeepInputOrder(t *testing.T) {
	a := testAnalyzer(t)

	ranked, err := a.AnalyzeBatch(context.Background(), []Request{
		{Text: seniorResume, Name: "first.txt", Role: "Senior Python Developer"},
		{Text: seniorResume, Name: "second.txt", Role: "Senior Python Developer"},
	}, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "first.txt", ranked[0].Analysis.InputName)
	assert.Equal(t, "second.txt", ranked[1].Analysis.InputName)
}

func TestAnalyzeBatch_FailingRequestFailsBatch(t *testing.T) {
	a := testAnalyzer(t)

	_, err := a.AnalyzeBatch(context.Background(), []Request{
		{Text: seniorResume, Role: "Senior Python Developer"},
		{Text: seniorResume, Role: "Nonexistent Role"},
	}, 2)

	var unknownRole *UnknownRoleError
	assert.ErrorAs(t, err, &unknownRole)
}

func TestAnalyzeBatch_DefaultWorkerCount(t *testing.T) {
	a := testAnalyzer(t)

	ranked, err := a.AnalyzeBatch(context.Background(), []Request{
		{Text: seniorResume, Name: "only.txt"},
	}, 0)
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Rank)
}
