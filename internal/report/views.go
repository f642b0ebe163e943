// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var views embed.FS

// NewViewEngine loads the embedded report templates. The same engine renders
// html reports to files and pages served by the live server.
func NewViewEngine() (*html.Engine, error) {
	root, err := fs.Sub(views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFunc("duration", formatDuration)
	if err := engine.Load(); err != nil {
		return nil, err
	}
	return engine, nil
}
