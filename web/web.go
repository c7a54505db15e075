// Package web holds the single-page front end served at /.
package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var files embed.FS

// Assets returns the front end rooted at its public directory.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
