package cmd

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/positions/renderer"
)

// outputs are the supported values of the -o flag.
var outputs = []string{"term", "markdown", "html", "json", "csv"}

// printMarkdown writes md to stdout, according to the output format.
func printMarkdown(output, md string) error {
	switch output {
	case "markdown":
		_, err := fmt.Fprint(stdout, md)
		return err
	case "html":
		html, err := renderer.HTML(md)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(stdout, html)
		return err
	default:
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(140))
		if err != nil {
			return fmt.Errorf("cannot create terminal renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("cannot render markdown: %w", err)
		}
		_, err = fmt.Fprint(stdout, out)
		return err
	}
}

// validOutput reports whether o is one of the outputs.
func validOutput(o string) bool {
	return slices.Contains(outputs, o)
}
