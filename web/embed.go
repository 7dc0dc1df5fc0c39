// Package web holds the browser UI served at the site root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed *.html *.js *.css
var content embed.FS

// FS returns the embedded assets.
func FS() fs.FS {
	return content
}
