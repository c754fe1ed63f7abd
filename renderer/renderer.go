// Package renderer turns positions and lots into markdown, csv, json or html documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var embedded embed.FS

var templates, _ = fs.Sub(embedded, "templates")

// RenderPositions renders the positions report to a markdown string.
func RenderPositions(p *Positions) string {
	partials := map[string]string{
		"positions_title":  "positions_title.md",
		"positions_table":  "positions_table.md",
		"positions_totals": "positions_totals.md",
	}
	if len(p.Positions) == 0 {
		partials["positions_table"] = "positions_empty.md"
		partials["positions_totals"] = ""
	}
	return renderTemplate("positions", "positions.md", partials, p)
}

// RenderLots renders the open lots report to a markdown string.
func RenderLots(l *Lots) string {
	partials := map[string]string{
		"lots_title": "lots_title.md",
		"lots_queue": "lots_queue.md",
	}
	return renderTemplate("lots", "lots.md", partials, l)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
