package renderer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/etnz/positions"
	"github.com/etnz/positions/date"
)

// rows is a small trade history over two currencies.
var rows = []positions.Row{
	{"Questrade", "TFSA", "2024-01-01", "AAPL", "BUY", "10", "5", "", "USD", "Equity"},
	{"Questrade", "TFSA", "2024-01-02", "AAPL", "BUY", "10", "7", "", "USD", "Equity"},
	{"Questrade", "TFSA", "2024-01-03", "AAPL", "SELL", "15", "9", "", "USD", "Equity"},
	{"Questrade", "RRSP", "2024-01-04", "XEQT", "BUY", "3", "25.5", "", "CAD", "ETF"},
	{"Questrade", "RRSP", "2024-01-05", "XEQT", "DRIP", "1", "26", "", "CAD", "ETF"},
}

func compute(t *testing.T) []positions.Position {
	t.Helper()
	list, err := positions.Compute(rows, positions.Options{})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return list
}

func TestRenderPositions(t *testing.T) {
	got := RenderPositions(NewPositions(date.New(2024, time.January, 31), compute(t)))
	want := `# Positions on 2024-01-31

| Broker | Account | Ticker | Quantity | Average Cost | Book Cost | Currency | Asset Class |
|:---|:---|:---|---:|---:|---:|:---|:---|
| Questrade | TFSA | AAPL | 5 | 7 | $35.00 | USD | Equity |
| Questrade | RRSP | XEQT | 4 | 25.625 | $102.50 | CAD | ETF |

| Currency | Book Cost |
|:---|---:|
| USD | $35.00 |
| CAD | $102.50 |`
	if strings.TrimSpace(got) != want {
		t.Errorf("RenderPositions() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPositions_Empty(t *testing.T) {
	got := RenderPositions(NewPositions(date.Date{}, nil))
	want := "# Positions\n\nNo open positions."
	if strings.TrimSpace(got) != want {
		t.Errorf("RenderPositions() = %q, want %q", got, want)
	}
}

func TestNewPositions_Totals(t *testing.T) {
	p := NewPositions(date.Date{}, compute(t))
	if len(p.Totals) != 2 {
		t.Fatalf("len(Totals) = %d, want 2", len(p.Totals))
	}
	if got, want := p.Totals[1].BookCost, positions.M(102.5, "CAD"); !got.Equal(want) {
		t.Errorf("Totals[1].BookCost = %v, want %v", got, want)
	}
}

func TestRenderLots(t *testing.T) {
	entries, err := positions.Entries(rows, 1)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	book, err := positions.Fold(entries, positions.Options{})
	if err != nil {
		t.Fatalf("Fold() error = %v", err)
	}
	got := RenderLots(NewLots(date.Date{}, book))
	for _, want := range []string{
		"# Open Lots",
		"## Questrade::TFSA::AAPL::USD::Equity",
		"| 5 | 7 | 35.00 |",
		"## Questrade::RRSP::XEQT::CAD::ETF",
		"| 3 | 25.5 | 76.50 |",
		"| 1 | 26 | 26.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderLots() does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteCSV(&b, compute(t)); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	want := `Broker,Account,Ticker,Quantity,Average Cost,Currency,Asset Class
Questrade,TFSA,AAPL,5,7,USD,Equity
Questrade,RRSP,XEQT,4,25.625,CAD,ETF
`
	if got := b.String(); got != want {
		t.Errorf("WriteCSV() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, NewPositions(date.Date{}, compute(t))); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	var back struct {
		Positions []struct {
			Ticker   string          `json:"ticker"`
			Quantity json.Number     `json:"quantity"`
			BookCost json.RawMessage `json:"bookCost"`
		} `json:"positions"`
	}
	dec := json.NewDecoder(&b)
	dec.UseNumber()
	if err := dec.Decode(&back); err != nil {
		t.Fatalf("json.Decode() error = %v", err)
	}
	if len(back.Positions) != 2 || back.Positions[1].Ticker != "XEQT" || back.Positions[1].Quantity != "4" {
		t.Errorf("WriteJSON() decoded to %+v", back)
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML(RenderPositions(NewPositions(date.Date{}, compute(t))))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<h1>Positions</h1>", "<table>", ">XEQT</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, got)
		}
	}
}
