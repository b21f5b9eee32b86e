// Package rendering provides functionality to render the résumé page from
// HTML templates.
package rendering

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/thibault/resume-site/internal/types"
)

// pageTemplate is the name of the top-level page template.
const pageTemplate = "index.gohtml"

// PageData is the context passed into the page template: the immutable résumé
// content plus the cache-bust token appended to the stylesheet URL.
type PageData struct {
	*types.ResumeData
	CacheBust string
}

// Renderer renders the résumé page. Rendering is synchronous, side-effect
// free and deterministic: identical input produces byte-identical output.
type Renderer struct {
	fsys  fs.FS
	tmpl  *template.Template
	debug bool
}

// New parses all page templates from the given filesystem, which must contain
// a templates/ directory. With debug enabled, templates are re-parsed from
// the filesystem on every render so edits show up without a restart.
func New(fsys fs.FS, debug bool) (*Renderer, error) {
	tmpl, err := parseTemplates(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, tmpl: tmpl, debug: debug}, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	// A missing context key is a configuration error, not a reason to render
	// a blank region.
	tmpl, err := template.New("").
		Option("missingkey=error").
		Funcs(funcMap()).
		ParseFS(fsys, "templates/*.gohtml")
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse templates",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// Render executes the page template with the given data and writes the
// resulting HTML to w.
func (r *Renderer) Render(w io.Writer, data *PageData) error {
	return r.ExecuteTemplate(w, pageTemplate, data)
}

// ExecuteTemplate executes a named template or partial. Partials take their
// parameters as a map, usually built with the dict template func.
func (r *Renderer) ExecuteTemplate(w io.Writer, name string, data any) error {
	tmpl := r.tmpl
	if r.debug {
		var err error
		if tmpl, err = parseTemplates(r.fsys); err != nil {
			return err
		}
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return &RenderError{
			Message: "failed to execute template " + name,
			Cause:   err,
		}
	}
	return nil
}
