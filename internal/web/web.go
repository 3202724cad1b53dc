// Package web holds the HTML templates of the pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates parses every page together with the shared layout blocks.
// Pages are looked up by file name, e.g. "index.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/*.html")
}
