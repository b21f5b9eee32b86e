package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalContent = `{
	"profile": {
		"name": "Thibault Betremieux",
		"job_title": "Senior Python Software Developer",
		"email_encoded": "t&#x68;est&#x40;example&#46;com"
	},
	"jobs": [
		{
			"title": "Senior Developer",
			"name": "JobRad GmbH",
			"date_range": "08.2022 - jetzt",
			"items": ["Entwicklung eines Ereignissystems"]
		}
	]
}`

func TestValidateResumeContent_Valid(t *testing.T) {
	assert.NoError(t, ValidateResumeContent([]byte(minimalContent)))
}

func TestValidateResumeContent_MissingProfile(t *testing.T) {
	err := ValidateResumeContent([]byte(`{"jobs": [{"title": "x", "name": "y", "date_range": "z"}]}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "profile")
}

func TestValidateResumeContent_ProgressOutOfRange(t *testing.T) {
	content := `{
		"profile": {"name": "a", "job_title": "b", "email_encoded": "c"},
		"jobs": [{"title": "x", "name": "y", "date_range": "z"}],
		"languages": [{"label": "Deutsch", "progress": 150, "icon_name": "DE.svg"}]
	}`
	err := ValidateResumeContent([]byte(content))
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestValidateResumeContent_UnknownField(t *testing.T) {
	content := `{
		"profile": {"name": "a", "job_title": "b", "email_encoded": "c"},
		"jobs": [{"title": "x", "name": "y", "date_range": "z"}],
		"unknown_section": []
	}`
	assert.Error(t, ValidateResumeContent([]byte(content)))
}

func TestValidateResumeContent_MalformedJSON(t *testing.T) {
	err := ValidateResumeContent([]byte("{ not json }"))
	require.Error(t, err)

	loadErr, ok := err.(*SchemaLoadError)
	require.True(t, ok, "error should be SchemaLoadError type")
	assert.Contains(t, loadErr.Error(), "failed to load schema")
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString("{ broken", "{}")
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}
