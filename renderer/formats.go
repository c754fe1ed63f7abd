package renderer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/positions"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// csvHeader names the cells of positions.Position.Row.
var csvHeader = []string{"Broker", "Account", "Ticker", "Quantity", "Average Cost", "Currency", "Asset Class"}

// WriteCSV writes positions as csv rows, with a header, ready to be pasted back into a sheet.
func WriteCSV(w io.Writer, list []positions.Position) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range list {
		row := p.Row()
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = fmt.Sprint(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes v as indented json.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// HTML converts a markdown document, as produced by this package, into html.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return buf.String(), nil
}
