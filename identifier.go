package positions

import (
	"strings"
)

// IdentifierSeparator separates the attributes of an Identifier in its token form.
const IdentifierSeparator = "::"

const identifierFields = 5

// Identifier is the composite key of a position: the same ticker held in two accounts, or quoted in
// two currencies, makes two positions.
//
// Identifier is comparable and is used as a map key directly.
type Identifier struct {
	Broker     string `json:"broker"`
	Account    string `json:"account"`
	Ticker     string `json:"ticker"`
	Currency   string `json:"currency"`
	AssetClass string `json:"assetClass"`
}

// fields returns the attributes in token order.
func (id Identifier) fields() [identifierFields]string {
	return [identifierFields]string{id.Broker, id.Account, id.Ticker, id.Currency, id.AssetClass}
}

// Encode returns the token form of id: its attributes joined by IdentifierSeparator in the order
// broker, account, ticker, currency, asset class.
//
// It fails if an attribute contains the separator, as the token would not decode back to id.
func (id Identifier) Encode() (string, error) {
	names := [identifierFields]string{"broker", "account", "ticker", "currency", "asset class"}
	fields := id.fields()
	for i, f := range fields {
		if strings.Contains(f, IdentifierSeparator) {
			return "", &InvalidIdentifierError{Field: names[i], Value: f}
		}
	}
	return strings.Join(fields[:], IdentifierSeparator), nil
}

// String returns the attributes joined by the separator, even when Encode would fail.
func (id Identifier) String() string {
	fields := id.fields()
	return strings.Join(fields[:], IdentifierSeparator)
}

// DecodeIdentifier parses a token produced by Identifier.Encode.
func DecodeIdentifier(token string) (Identifier, error) {
	parts := strings.Split(token, IdentifierSeparator)
	if len(parts) != identifierFields {
		return Identifier{}, &InvalidIdentifierError{Field: "token", Value: token}
	}
	return Identifier{
		Broker:     parts[0],
		Account:    parts[1],
		Ticker:     parts[2],
		Currency:   parts[3],
		AssetClass: parts[4],
	}, nil
}
