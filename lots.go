package positions

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Lot is an open purchase of a security: the units still held from it and their unit cost.
type Lot struct {
	Quantity Quantity `json:"quantity"`
	Price    Price    `json:"price"`
}

// Cost returns the total cost of the lot.
func (l Lot) Cost() decimal.Decimal { return l.Price.Mul(l.Quantity) }

// Lots is the queue of open lots of a single Identifier, oldest first.
//
// Methods never modify the receiver, they return a new queue.
type Lots []Lot

// Buy returns the queue with lot appended at the tail.
func (l Lots) Buy(lot Lot) Lots {
	return append(slices.Clip(l), lot)
}

// Split returns the queue with every lot rescaled by the ratio. The cost of each lot is kept.
func (l Lots) Split(r SplitRatio) Lots {
	split := make(Lots, len(l))
	for i, lot := range l {
		split[i] = Lot{
			Quantity: lot.Quantity.scale(r),
			Price:    lot.Price.scale(r),
		}
	}
	return split
}

// Sell returns the queue after selling quantity units using the FIFO method.
//
// Quantities are compared once rounded to 5 decimals, so that a sale of 0.333333 equals a lot
// of 0.3333333. A lot partially sold keeps its price.
//
// A quantity that rounds to zero sells nothing. Selling more than the queue holds fails with an
// *OversellError.
func (l Lots) Sell(quantity Quantity) (Lots, error) {
	toSell := quantity.round()
	if toSell.IsZero() {
		return slices.Clone(l), nil
	}
	for i, current := range l {
		held := current.Quantity.round()
		switch {
		case held.Equal(toSell):
			return slices.Clone(l[i+1:]), nil
		case held.LessThan(toSell):
			// Full sale of this lot
			toSell = toSell.Sub(held)
		default:
			// Partial sale from this lot
			remaining := make(Lots, 0, len(l)-i)
			remaining = append(remaining, Lot{Quantity: held.Sub(toSell), Price: current.Price})
			return append(remaining, l[i+1:]...), nil
		}
	}
	return nil, &OversellError{Requested: quantity, Shortfall: toSell}
}

// Quantity returns the total units held in the queue.
func (l Lots) Quantity() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Quantity)
	}
	return total
}

// Cost returns the total cost of the units held in the queue.
func (l Lots) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range l {
		total = total.Add(lot.Cost())
	}
	return total
}
