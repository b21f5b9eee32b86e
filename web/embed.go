// Package web embeds the page templates and static assets (CSS, JS, icons)
// so the binary serves the site without any files on disk.
package web

import "embed"

//go:embed templates static
var Assets embed.FS
