// Package web holds the embedded quiz front end.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"mime"
	"path"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed templates/index.html static/*
var assetFS embed.FS

// Asset is a minified file ready to be served.
type Asset struct {
	Body        []byte
	ContentType string
}

// Assets is the landing page plus everything under static/, keyed by its path
// relative to static/ (e.g. "css/style.css").
type Assets struct {
	index  Asset
	static map[string]Asset
}

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// Load reads and minifies all embedded assets once.
func Load() (*Assets, error) {
	m := newMinifier()

	load := func(name string) (Asset, error) {
		raw, err := assetFS.ReadFile(name)
		if err != nil {
			return Asset{}, err
		}
		ext := path.Ext(name)
		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		mediaType, ok := mediaTypes[ext]
		if !ok {
			return Asset{Body: raw, ContentType: contentType}, nil
		}
		body, err := m.Bytes(mediaType, raw)
		if err != nil {
			return Asset{}, fmt.Errorf("failed to minify %s: %w", name, err)
		}
		return Asset{Body: body, ContentType: contentType}, nil
	}

	index, err := load("templates/index.html")
	if err != nil {
		return nil, err
	}

	assets := &Assets{index: index, static: make(map[string]Asset)}
	err = fs.WalkDir(assetFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		a, err := load(p)
		if err != nil {
			return err
		}
		assets.static[p[len("static/"):]] = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}
	return assets, nil
}

// Index returns the landing page.
func (a *Assets) Index() Asset {
	return a.index
}

// Static looks up a file below static/.
func (a *Assets) Static(name string) (Asset, bool) {
	asset, ok := a.static[name]
	return asset, ok
}
