// Package mapdoc renders the interactive map document embedded in the list
// view. The document is a self-contained Leaflet page; Go only emits it, the
// browser-side library does the actual map work.
package mapdoc

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

//go:embed templates/*.tmpl
var content embed.FS

// FileName is the fixed name every list view renders to. Concurrent list
// views race on it (last writer wins); the serving route only ever reads
// whatever is there.
const FileName = "carte.html"

// Marker is one heritage point plotted on the map.
type Marker struct {
	Lat float64
	Lon float64

	// Display fields for the popup.
	Name      string
	Owner     string
	Latitude  string
	Longitude string

	// DirectionsURL links the popup to the directions page.
	DirectionsURL string

	// Zone is the accuracy polygon drawn around the marker.
	Zone [][2]float64
}

// Coords returns the marker position as a [lat, lon] pair for the template.
func (m Marker) Coords() [2]float64 {
	return [2]float64{m.Lat, m.Lon}
}

// Document describes one rendered map.
type Document struct {
	Center    [2]float64
	Zoom      int
	FitBounds bool
	Bounds    [][2]float64
	Markers   []Marker
}

// Writer renders map documents into a fixed directory.
type Writer struct {
	dir  string
	tmpl *template.Template
}

// NewWriter creates the maps directory if needed and parses the template.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create maps dir: %w", err)
	}

	tmpl, err := template.New("map.html.tmpl").Funcs(template.FuncMap{
		"js": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			return template.JS(b), err
		},
	}).ParseFS(content, "templates/map.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse map template: %w", err)
	}

	return &Writer{dir: dir, tmpl: tmpl}, nil
}

// Dir returns the directory map documents are written to.
func (w *Writer) Dir() string { return w.dir }

// Write renders the document to <dir>/carte.html, replacing any previous one.
func (w *Writer) Write(doc Document) error {
	f, err := os.Create(filepath.Join(w.dir, FileName))
	if err != nil {
		return fmt.Errorf("create map document: %w", err)
	}
	defer f.Close()

	if err := w.tmpl.Execute(f, doc); err != nil {
		return fmt.Errorf("render map document: %w", err)
	}
	return nil
}
