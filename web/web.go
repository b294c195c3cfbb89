// Package web holds the embedded HTML shells and client assets. The pages
// are static; all dynamic state comes from the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:static
var files embed.FS

// Page returns the named HTML shell from the embedded assets.
func Page(name string) ([]byte, error) {
	return files.ReadFile("static/" + name)
}

// Assets exposes the embedded static tree for the /static file server.
func Assets() (http.FileSystem, error) {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
