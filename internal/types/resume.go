// Package types provides type definitions for the structured résumé content
// rendered by the site. All values are loaded once at startup and never
// mutated afterwards.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultProgressColor is the progress bar color used when a skill does not
// set one explicitly.
const DefaultProgressColor = "#7f8d63"

// Experience represents one job, internship or study entry.
type Experience struct {
	Title     string   `json:"title" validate:"required"`
	Name      string   `json:"name" validate:"required"` // company or school name
	DateRange string   `json:"date_range" validate:"required"`
	Location  string   `json:"location,omitempty"`
	Items     []string `json:"items"` // bullet sentences, may contain trusted inline HTML
	IconName  string   `json:"icon_name,omitempty"`
}

// ProgressSkill represents a skill rendered as a labeled progress bar.
type ProgressSkill struct {
	Label    string `json:"label" validate:"required"`
	Progress int    `json:"progress" validate:"min=0,max=100"`
	IconName string `json:"icon_name" validate:"required"`
	LabelBar string `json:"label_bar,omitempty"` // optional label on the bar itself, e.g. "C1"
	Color    string `json:"color,omitempty"`
}

// TextSkill represents a skill displayed as a titled text block. A single
// item renders as a paragraph, multiple items as a bulleted list.
type TextSkill struct {
	Title string   `json:"title" validate:"required"`
	Items []string `json:"items" validate:"min=1"`
}

// Link is a labeled hyperlink shown in the contact panel.
type Link struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// Profile holds the personal and contact information for the left panel.
// The email is HTML-entity encoded to make address harvesting harder and is
// rendered without further escaping.
type Profile struct {
	Name         string `json:"name" validate:"required"`
	JobTitle     string `json:"job_title" validate:"required"`
	Address      string `json:"address,omitempty"`
	EmailEncoded string `json:"email_encoded" validate:"required"`
	Phone        string `json:"phone,omitempty"`
	PhotoName    string `json:"photo_name,omitempty"`
	Links        []Link `json:"links,omitempty" validate:"dive"`
}

// ResumeData is the full page context: every named section of the résumé,
// ordered as it appears on the page. Section slices render in input order.
type ResumeData struct {
	Profile Profile `json:"profile" validate:"required"`

	// Progress skill sections (left panel).
	Languages       []ProgressSkill `json:"languages" validate:"dive"`
	ProgrammingLang []ProgressSkill `json:"programming_languages" validate:"dive"`
	Tools           []ProgressSkill `json:"tools" validate:"dive"`
	MarkupLanguages []ProgressSkill `json:"markup_languages" validate:"dive"`

	// Text skill sections (right panel top, bottom right).
	CoreSkills []TextSkill `json:"core_skills" validate:"dive"`
	SoftSkills []TextSkill `json:"soft_skills" validate:"dive"`

	// Experience sections. Jobs fills the first page, JobsPage2 continues on
	// the second printed page.
	Jobs        []Experience `json:"jobs" validate:"min=1,dive"`
	JobsPage2   []Experience `json:"jobs_page_2" validate:"dive"`
	Studies     []Experience `json:"studies" validate:"dive"`
	Internships []Experience `json:"internships" validate:"dive"`
	HolidayJobs []Experience `json:"holiday_jobs" validate:"dive"`
}

// Validate validates the ResumeData using the validator.
func (d *ResumeData) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
