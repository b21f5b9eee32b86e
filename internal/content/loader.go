// Package content provides loading and normalization of the résumé content
// file. Content is read once at startup, schema-validated, unmarshalled and
// struct-validated; any failure is fatal for the caller.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thibault/resume-site/internal/schemas"
	"github.com/thibault/resume-site/internal/types"
)

//go:embed default_resume.json
var defaultResume []byte

// Load loads résumé content from a JSON file. An empty path loads the
// embedded default content.
func Load(path string) (*types.ResumeData, error) {
	if path == "" {
		return parse(defaultResume)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return parse(raw)
}

func parse(raw []byte) (*types.ResumeData, error) {
	if err := schemas.ValidateResumeContent(raw); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&data)

	if err := data.Validate(); err != nil {
		return nil, &LoadError{
			Message: "content validation failed",
			Cause:   err,
		}
	}

	return &data, nil
}
