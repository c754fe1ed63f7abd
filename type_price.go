package positions

import "github.com/shopspring/decimal"

// Price is the cost of a single unit of a security. It has no currency: the currency belongs to the
// Identifier of the lot.
type Price struct {
	value decimal.Decimal
}

// P returns a Price from a number.
func P[T float64 | int | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

func (p Price) Equal(o Price) bool { return p.value.Equal(o.value) }
func (p Price) IsZero() bool       { return p.value.IsZero() }
func (p Price) IsNegative() bool   { return p.value.IsNegative() }
func (p Price) String() string     { return p.value.String() }

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal { return p.value }

// Round returns p rounded to places decimals.
func (p Price) Round(places int) Price { return Price{value: p.value.Round(int32(places))} }

// Mul returns the total cost of q units at price p.
func (p Price) Mul(q Quantity) decimal.Decimal { return p.value.Mul(q.value) }

// scale returns p adjusted by the inverse of the ratio, so that quantity * price is unchanged.
func (p Price) scale(r SplitRatio) Price {
	return Price{value: p.value.Mul(r.Den).Div(r.Num)}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
