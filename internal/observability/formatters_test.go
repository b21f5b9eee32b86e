package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thibault/resume-site/internal/types"
)

func TestPrintContentSummary(t *testing.T) {
	data := &types.ResumeData{
		Profile: types.Profile{Name: "Jane Doe", JobTitle: "Engineer"},
		Jobs: []types.Experience{
			{Title: "Engineer", Name: "ACME", DateRange: "2020 - 2024"},
			{Title: "Junior Engineer", Name: "ACME", DateRange: "2018 - 2020"},
		},
		Studies: []types.Experience{{Title: "BSc", Name: "Uni", DateRange: "2014 - 2018"}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintContentSummary(data)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jobs")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "studies")
}

func TestPrintContentSummary_NilData(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContentSummary(nil)
	assert.Empty(t, buf.String())
}
