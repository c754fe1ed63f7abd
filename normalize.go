package positions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/positions/date"
	"github.com/shopspring/decimal"
)

// Row is one line of the trade history, as raw cells.
type Row []string

// Columns of a Row.
const (
	ColBroker = iota
	ColAccount
	ColDate
	ColTicker
	ColAction
	ColQuantity
	ColPrice
	ColBookCost
	ColCurrency
	ColAssetClass

	// NumColumns is the number of cells of a well formed Row.
	NumColumns
)

// minQuantity is the smallest traded quantity, 10^-tolerance.
var minQuantity = decimal.New(1, -tolerance)

var columnNames = [NumColumns]string{"broker", "account", "date", "ticker", "action", "quantity", "unit price", "book cost", "currency", "asset class"}

// Entry is a normalized Row: the Identifier it applies to and its trade Record.
type Entry struct {
	Line       int // Line is the 1-based position of the row in its input.
	Identifier Identifier
	Date       date.Date // Date is zero when the date cell is empty or not a date.
	RawDate    string
	BookCost   decimal.Decimal // BookCost is carried from the row, it is not used to compute positions.
	Record     Record
}

// blank reports whether the row has no action.
func (r Row) blank() bool {
	return len(r) <= ColAction || strings.TrimSpace(r[ColAction]) == ""
}

// padded returns r extended with empty cells up to NumColumns.
//
// Spreadsheet exports drop trailing empty cells.
func (r Row) padded() Row {
	if len(r) >= NumColumns {
		return r
	}
	p := make(Row, NumColumns)
	copy(p, r)
	return p
}

// Normalize converts a single row into an Entry.
//
// Missing trailing cells are read as empty, but the row must at least reach the action cell.
// The action is case-insensitive. Numeric cells accept "," as a thousand separator and an empty
// cell counts as zero. Numbers are only read for BUY, DRIP, SELL and SPLIT rows: any other action
// is returned as Other whatever its cells hold.
//
// BUY, DRIP and SELL quantities must be at least 0.00001, the precision quantities are compared
// at.
func Normalize(line int, row Row) (Entry, error) {
	if len(row) <= ColAction {
		return Entry{}, &InvalidTradeRecordError{Err: fmt.Errorf("row has %d cells, want at least %d", len(row), ColAction+1)}
	}
	row = row.padded()

	e := Entry{
		Line: line,
		Identifier: Identifier{
			Broker:     row[ColBroker],
			Account:    row[ColAccount],
			Ticker:     row[ColTicker],
			Currency:   row[ColCurrency],
			AssetClass: row[ColAssetClass],
		},
		RawDate: strings.TrimSpace(row[ColDate]),
	}
	if e.RawDate != "" {
		// Dates are informative only, an unreadable one is not an error here.
		e.Date, _ = date.Parse(e.RawDate)
	}

	action := ActionType(strings.ToUpper(strings.TrimSpace(row[ColAction])))
	if !action.known() {
		e.Record = Other{Type: action}
		return e, nil
	}

	if _, err := e.Identifier.Encode(); err != nil {
		return Entry{}, err
	}

	var err error
	if e.BookCost, err = number(row, ColBookCost); err != nil {
		return Entry{}, err
	}
	price, err := number(row, ColPrice)
	if err != nil {
		return Entry{}, err
	}
	if price.IsNegative() {
		return Entry{}, invalidCell(row, ColPrice, errors.New("negative price"))
	}

	if action == ActionSplit {
		ratio, err := ParseSplitRatio(row[ColQuantity])
		if err != nil {
			return Entry{}, err
		}
		e.Record = Split{Ratio: ratio, Price: P(price)}
		return e, nil
	}

	quantity, err := number(row, ColQuantity)
	if err != nil {
		return Entry{}, err
	}
	if !quantity.IsPositive() {
		return Entry{}, invalidCell(row, ColQuantity, errors.New("quantity must be positive"))
	}
	if Q(quantity).round().IsZero() {
		return Entry{}, invalidCell(row, ColQuantity, fmt.Errorf("quantity is below %s", minQuantity))
	}

	switch action {
	case ActionBuy:
		e.Record = Buy{Quantity: Q(quantity), Price: P(price)}
	case ActionDrip:
		e.Record = Drip{Quantity: Q(quantity), Price: P(price)}
	case ActionSell:
		e.Record = Sell{Quantity: Q(quantity), Price: P(price)}
	}
	return e, nil
}

// Entries normalizes all non blank rows. first is the line number of rows[0] in its input, as
// returned by DecodeCSV; values below 1 count as 1.
func Entries(rows []Row, first int) ([]Entry, error) {
	first = max(first, 1)
	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if row.blank() {
			continue
		}
		line := first + i
		e, err := Normalize(line, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a ActionType) known() bool {
	switch a {
	case ActionBuy, ActionDrip, ActionSell, ActionSplit:
		return true
	}
	return false
}

// number reads the numeric cell col of row.
func number(row Row, col int) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(row[col]), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalidCell(row, col, errors.New("not a number"))
	}
	return v, nil
}

func invalidCell(row Row, col int, err error) *InvalidTradeRecordError {
	return &InvalidTradeRecordError{Column: columnNames[col], Value: row[col], Err: err}
}
