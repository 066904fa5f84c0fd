// Package ui carries the embedded templates and static assets for the
// dashboard.
package ui

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

var (
	// TemplateFS holds the gohtml templates rooted at the templates directory.
	TemplateFS = mustSub("templates")
	// StaticFS holds the static assets rooted at the static directory.
	StaticFS = mustSub("static")
)

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
