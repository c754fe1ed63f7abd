package positions

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultRowsPath is the JSONPath of the cell matrix in a Google Sheets "values.get" response.
const DefaultRowsPath = "$.values"

// DecodeCSV reads rows from a CSV stream, as exported by a spreadsheet.
//
// Rows may have any number of cells. If header is true the first row is dropped.
//
// first is the line in r of rows[0], to be passed to Entries. Empty rows fill in for skipped empty
// lines and for cells spanning several lines, so that rows[i] always starts on line first+i.
func DecodeCSV(r io.Reader, header bool) (rows []Row, first int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first = 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("cannot read csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		line, _ := reader.FieldPos(0)
		if len(rows) == 0 {
			first = line
		}
		for first+len(rows) < line {
			rows = append(rows, nil)
		}
		rows = append(rows, Row(record))
	}
	return rows, first, nil
}

// DecodeJSON reads rows from a JSON document. path is a JSONPath expression selecting an array of
// rows, each row being an array of cells.
//
// Numbers are read as their exact decimal text, booleans as "TRUE" and "FALSE", null as an empty
// cell.
func DecodeJSON(r io.Reader, path string) ([]Row, error) {
	if path == "" {
		path = DefaultRowsPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("not a correct json: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jrows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select an array of rows, got %T", path, jval)
	}

	rows := make([]Row, 0, len(jrows))
	for i, jrow := range jrows {
		jcells, ok := jrow.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d: want an array of cells, got %T", i+1, jrow)
		}
		row := make(Row, len(jcells))
		for j, jcell := range jcells {
			switch v := jcell.(type) {
			case nil:
			case string:
				row[j] = v
			case json.Number:
				row[j] = v.String()
			case bool:
				row[j] = "FALSE"
				if v {
					row[j] = "TRUE"
				}
			default:
				return nil, fmt.Errorf("row %d cell %d: unsupported value %T", i+1, j+1, jcell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
