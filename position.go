package positions

import (
	"errors"
	"fmt"
)

// ErrNoUnits is returned when resolving an empty queue of lots.
var ErrNoUnits = errors.New("no units held")

// Position is the holding of an Identifier resolved from its open lots.
type Position struct {
	Identifier
	Quantity    Quantity // Quantity is the total of units held.
	AverageCost Price    // AverageCost is the unit price weighted by the lots quantities.
	BookCost    Money    // BookCost is the total cost of the units held.
}

// Resolve reduces the lots of id into a single Position.
func Resolve(id Identifier, l Lots) (Position, error) {
	quantity := l.Quantity()
	if quantity.IsZero() {
		return Position{}, fmt.Errorf("cannot resolve %v: %w", id, ErrNoUnits)
	}
	cost := M(l.Cost(), id.Currency)
	return Position{
		Identifier:  id,
		Quantity:    quantity,
		AverageCost: cost.Div(quantity),
		BookCost:    cost,
	}, nil
}

// Row returns the position as a row of cells: broker, account, ticker, quantity, average cost,
// currency and asset class.
func (p Position) Row() []any {
	return []any{p.Broker, p.Account, p.Ticker, p.Quantity, p.AverageCost, p.Currency, p.AssetClass}
}

func (p Position) String() string {
	return fmt.Sprintf("%v %v @ %v", p.Identifier, p.Quantity, p.AverageCost)
}

// MarshalJSON implements the json.Marshaler interface for Position.
func (p Position) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.fields(p.Identifier)
	w.field("quantity", p.Quantity)
	w.field("averageCost", p.AverageCost)
	w.field("bookCost", p.BookCost)
	return w.MarshalJSON()
}
