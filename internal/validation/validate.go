// Package validation provides structural checks on the rendered résumé page.
// It guards the layout contract the stylesheet depends on: required
// containers, the print page break and the suppressed page-2 title.
package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Violation represents a single structural check failure
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Selector string `json:"selector,omitempty"`
}

// Severity levels for violations.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// requiredContainers are the element IDs the stylesheet contract names.
var requiredContainers = []string{
	"#top-container",
	"#top-left-panel",
	"#top-right-panel",
	"#bottom-container",
}

// CheckDocument parses a rendered HTML document and returns all structural
// violations. An empty slice means the document satisfies the layout
// contract.
func CheckDocument(r io.Reader) ([]Violation, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	var violations []Violation
	violations = append(violations, checkContainers(doc)...)
	violations = append(violations, checkPageBreak(doc)...)
	violations = append(violations, checkStylesheet(doc)...)
	return violations, nil
}

func checkContainers(doc *goquery.Document) []Violation {
	var violations []Violation
	for _, selector := range requiredContainers {
		if doc.Find(selector).Length() != 1 {
			violations = append(violations, Violation{
				Type:     "missing_container",
				Severity: SeverityError,
				Details:  fmt.Sprintf("expected exactly one %s element", selector),
				Selector: selector,
			})
		}
	}
	return violations
}

// checkPageBreak verifies the print boundary between the two containers and
// the duplicated work-experience title that must carry the suppression class
// so it only shows for print/wide layouts.
func checkPageBreak(doc *goquery.Document) []Violation {
	var violations []Violation

	if doc.Find(".pagebreak").Length() == 0 {
		violations = append(violations, Violation{
			Type:     "missing_pagebreak",
			Severity: SeverityError,
			Details:  "no .pagebreak element between the page containers",
			Selector: ".pagebreak",
		})
	}

	pageTwoTitle := doc.Find("#bottom-container .pagebreak-title")
	if pageTwoTitle.Length() == 0 {
		violations = append(violations, Violation{
			Type:     "missing_pagebreak_title",
			Severity: SeverityError,
			Details:  "the page-2 section title must be wrapped in .pagebreak-title",
			Selector: ".pagebreak-title",
		})
	} else if strings.TrimSpace(pageTwoTitle.Text()) == "" {
		violations = append(violations, Violation{
			Type:     "empty_pagebreak_title",
			Severity: SeverityWarning,
			Details:  "the .pagebreak-title element carries no title text",
			Selector: ".pagebreak-title",
		})
	}

	return violations
}

func checkStylesheet(doc *goquery.Document) []Violation {
	var violations []Violation

	href, ok := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	if !ok {
		violations = append(violations, Violation{
			Type:     "missing_stylesheet",
			Severity: SeverityError,
			Details:  "no stylesheet link in the document head",
			Selector: `link[rel="stylesheet"]`,
		})
		return violations
	}

	if !strings.Contains(href, "?v=") {
		violations = append(violations, Violation{
			Type:     "missing_cache_bust",
			Severity: SeverityError,
			Details:  fmt.Sprintf("stylesheet URL %q has no cache-bust query parameter", href),
			Selector: `link[rel="stylesheet"]`,
		})
	}

	return violations
}
