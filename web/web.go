// Package web holds the embedded HTML templates for the dashboard.
package web

import "embed"

//go:embed templates/*.html
var TemplateFiles embed.FS
