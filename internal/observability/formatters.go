// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/thibault/resume-site/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentSummary outputs a human-readable summary of the loaded résumé
// content: who the page is for and how many records each section carries.
func (p *Printer) PrintContentSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", data.Profile.Name))
	sb.WriteString(fmt.Sprintf("Job title: %s\n", data.Profile.JobTitle))
	sb.WriteString("\n")

	sections := []struct {
		name  string
		count int
	}{
		{"languages", len(data.Languages)},
		{"programming_languages", len(data.ProgrammingLang)},
		{"tools", len(data.Tools)},
		{"markup_languages", len(data.MarkupLanguages)},
		{"core_skills", len(data.CoreSkills)},
		{"soft_skills", len(data.SoftSkills)},
		{"jobs", len(data.Jobs)},
		{"jobs_page_2", len(data.JobsPage2)},
		{"studies", len(data.Studies)},
		{"internships", len(data.Internships)},
		{"holiday_jobs", len(data.HolidayJobs)},
	}
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("%-22s %d\n", section.name, section.count))
	}

	p.printBox("Résumé Content", strings.TrimRight(sb.String(), "\n"))
}
