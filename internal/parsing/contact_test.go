package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContact_AllFields(t *testing.T) {
	text := "Jane Doe | jane.doe@example.com | 555-123-4567 | linkedin.com/in/janedoe"
	info := ExtractContact(text)

	require.NotNil(t, info.Email)
	assert.Equal(t, "jane.doe@example.com", *info.Email)
	require.NotNil(t, info.Phone)
	assert.Equal(t, "555-123-4567", *info.Phone)
	require.NotNil(t, info.ProfileLink)
	assert.Equal(t, "linkedin.com/in/janedoe", *info.ProfileLink)
	assert.Equal(t, 3, info.Count())
}

func TestExtractContact_GitHubProfile(t *testing.T) {
	info := ExtractContact("see github.com/janedoe for projects")

	require.NotNil(t, info.ProfileLink)
	assert.Equal(t, "github.com/janedoe", *info.ProfileLink)
}

func TestExtractContact_DottedPhone(t *testing.T) {
	info := ExtractContact("call 555.123.4567")

	require.NotNil(t, info.Phone)
	assert.Equal(t, "555.123.4567", *info.Phone)
}

func TestExtractContact_MissingFieldsStayNil(t *testing.T) {
	info := ExtractContact("no contact details here")

	assert.Nil(t, info.Email)
	assert.Nil(t, info.Phone)
	assert.Nil(t, info.ProfileLink)
	assert.Equal(t, 0, info.Count())
}
