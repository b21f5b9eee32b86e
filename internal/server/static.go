package server

import (
	"mime"
	"net/http"
	"path/filepath"
)

// contentType resolves the content type of a static asset from its file
// extension, falling back to content sniffing for unknown extensions.
func contentType(name string, data []byte) string {
	if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
		return ctype
	}
	return http.DetectContentType(data)
}
