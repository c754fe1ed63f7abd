package positions

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money in the given currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// String returns the string representation of the money value.
//
// Currencies unknown to go-money, and the opaque codes found in some sheets, are printed as the
// rounded amount followed by the code.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		s := m.value.StringFixed(2)
		if m.cur != "" {
			s += " " + m.cur
		}
		return s
	}
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Decimal() decimal.Decimal { return m.value }

// Add returns m + n. They must have the same currency, or one of them none.
func (m Money) Add(n Money) Money {
	c := m.cur
	if c == "" {
		c = n.cur
	} else if n.cur != "" && n.cur != c {
		panic("currency mismatch " + m.cur + " != " + n.cur)
	}
	return Money{value: m.value.Add(n.value), cur: c}
}

// Div returns the unit price obtained by spreading m over q units.
func (m Money) Div(q Quantity) Price { return Price{value: m.value.Div(q.value)} }

func (m Money) MarshalJSON() ([]byte, error) {
	var w objectWriter
	return w.text("currency", m.cur).field("amount", m.value).MarshalJSON()
}
