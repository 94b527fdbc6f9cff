package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// Static returns the file system backing /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// only reachable if the embedded layout changes
		panic(err)
	}
	return http.FS(sub)
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(assets, "templates/*.tmpl"))
}
