package renderer

import (
	"github.com/etnz/positions"
	"github.com/etnz/positions/date"
)

// Positions is the data of a positions report.
type Positions struct {
	// AsOf is the date the positions were computed at, zero for the end of the history.
	AsOf      date.Date            `json:"asOf,omitempty"`
	Positions []positions.Position `json:"positions"`
	// Totals is the book cost of all positions per currency, in order of first appearance.
	Totals []Total `json:"totals"`
}

// Total is the book cost of all positions in a currency.
type Total struct {
	Currency string          `json:"currency"`
	BookCost positions.Money `json:"bookCost"`
}

// NewPositions gathers the data of a positions report.
func NewPositions(asOf date.Date, list []positions.Position) *Positions {
	p := &Positions{AsOf: asOf, Positions: list}
	index := make(map[string]int)
	for _, pos := range list {
		i, ok := index[pos.Currency]
		if !ok {
			i = len(p.Totals)
			index[pos.Currency] = i
			p.Totals = append(p.Totals, Total{Currency: pos.Currency, BookCost: positions.M(0, pos.Currency)})
		}
		p.Totals[i].BookCost = p.Totals[i].BookCost.Add(pos.BookCost)
	}
	return p
}

// Lots is the data of an open lots report.
type Lots struct {
	AsOf   date.Date `json:"asOf,omitempty"`
	Queues []Queue   `json:"queues"`
}

// Queue is the list of open lots of an identifier, oldest first.
type Queue struct {
	Identifier positions.Identifier `json:"identifier"`
	Lots       positions.Lots       `json:"lots"`
}

// NewLots gathers the open lots of every identifier of the book.
func NewLots(asOf date.Date, book *positions.Book) *Lots {
	l := &Lots{AsOf: asOf}
	for id := range book.Identifiers() {
		l.Queues = append(l.Queues, Queue{Identifier: id, Lots: book.Lots(id)})
	}
	return l
}
