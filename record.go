package positions

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ActionType identifies the kind of a trade record, as written in the action column.
type ActionType string

// Action types with an effect on lots. Any other action type is kept but ignored.
const (
	ActionBuy   ActionType = "BUY"
	ActionDrip  ActionType = "DRIP" // dividend reinvestment, accounted as a buy.
	ActionSell  ActionType = "SELL"
	ActionSplit ActionType = "SPLIT"
)

// Record is a trade action on a single Identifier.
//
// The set of records is closed: Buy, Drip, Sell, Split and Other.
type Record interface {
	Action() ActionType
	record()
}

// Buy opens a new lot.
type Buy struct {
	Quantity Quantity
	Price    Price
}

// Drip is a dividend reinvested in the same security. It opens a lot like a Buy.
type Drip struct {
	Quantity Quantity
	Price    Price
}

// Sell consumes open lots, oldest first. Price is the sale price, it plays no part in the matching.
type Sell struct {
	Quantity Quantity
	Price    Price
}

// Split rescales every open lot by Ratio. Price is carried from the row but unused.
type Split struct {
	Ratio SplitRatio
	Price Price
}

// Other is any action with no effect on lots (dividends paid in cash, fees, notes...).
type Other struct {
	Type ActionType
}

func (Buy) Action() ActionType     { return ActionBuy }
func (Drip) Action() ActionType    { return ActionDrip }
func (Sell) Action() ActionType    { return ActionSell }
func (Split) Action() ActionType   { return ActionSplit }
func (o Other) Action() ActionType { return o.Type }

func (Buy) record()   {}
func (Drip) record()  {}
func (Sell) record()  {}
func (Split) record() {}
func (Other) record() {}

// SplitRatio is a stock split "Num:Den": Den units before the split become Num units after it.
type SplitRatio struct {
	Num, Den decimal.Decimal
}

// String returns the ratio in its "num:den" form.
func (r SplitRatio) String() string { return r.Num.String() + ":" + r.Den.String() }

// ParseSplitRatio parses a ratio like "2:1" (each unit becomes two) or "1:10" (a reverse split).
func ParseSplitRatio(s string) (SplitRatio, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return SplitRatio{}, &InvalidSplitRatioError{Ratio: s, Reason: "want two parts separated by ':'"}
	}
	var values [2]decimal.Decimal
	for i, p := range parts {
		v, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return SplitRatio{}, &InvalidSplitRatioError{Ratio: s, Reason: "not a number: " + p}
		}
		if !v.IsPositive() {
			return SplitRatio{}, &InvalidSplitRatioError{Ratio: s, Reason: "parts must be positive"}
		}
		values[i] = v
	}
	return SplitRatio{Num: values[0], Den: values[1]}, nil
}
