package positions

import "fmt"

// InvalidIdentifierError reports an identifier that cannot be encoded into, or decoded from, a
// token without loss.
type InvalidIdentifierError struct {
	Field string // Field is the offending attribute, or "token" when decoding.
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	if e.Field == "token" {
		return fmt.Sprintf("invalid identifier token %q: want %d fields separated by %q", e.Value, identifierFields, IdentifierSeparator)
	}
	return fmt.Sprintf("invalid identifier: %s %q contains the separator %q", e.Field, e.Value, IdentifierSeparator)
}

// InvalidTradeRecordError reports a row that cannot be turned into a trade record.
type InvalidTradeRecordError struct {
	Column string
	Value  string
	Err    error
}

func (e *InvalidTradeRecordError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("invalid trade record: %v", e.Err)
	}
	return fmt.Sprintf("invalid trade record: column %s %q: %v", e.Column, e.Value, e.Err)
}

func (e *InvalidTradeRecordError) Unwrap() error { return e.Err }

// InvalidSplitRatioError reports a split ratio that is not of the form "num:den" with two positive
// numbers.
type InvalidSplitRatioError struct {
	Ratio  string
	Reason string
}

func (e *InvalidSplitRatioError) Error() string {
	return fmt.Sprintf("invalid split ratio %q: %s", e.Ratio, e.Reason)
}

// OversellError reports a sale of more units than the open lots hold.
type OversellError struct {
	Identifier Identifier // Identifier is left empty by Lots.Sell and filled in by the Book.
	Requested  Quantity
	Shortfall  Quantity
}

func (e *OversellError) Error() string {
	if e.Identifier == (Identifier{}) {
		return fmt.Sprintf("oversell: selling %v units, %v more than held", e.Requested, e.Shortfall)
	}
	return fmt.Sprintf("oversell of %v: selling %v units, %v more than held", e.Identifier, e.Requested, e.Shortfall)
}
