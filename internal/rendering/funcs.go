package rendering

import (
	"fmt"
	"html/template"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"dict": dict,
		"safe": safe,
	}
}

// dict builds a map from alternating key/value arguments, so partials can be
// invoked with named parameters: {{template "x" dict "Title" "..."}}.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict requires an even number of arguments, got %d", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings, got %T", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// safe marks a content string as trusted HTML. It is only ever applied to
// values from the content file (inline <b>/<a> markup and the entity-encoded
// email), never to request input.
func safe(s string) template.HTML {
	return template.HTML(s) //nolint:gosec // trusted static content
}
