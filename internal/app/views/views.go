// Package views holds the embedded page templates.
package views

import "embed"

// Content holds the server-rendered page templates.
//
//go:embed templates/*.html
var Content embed.FS
