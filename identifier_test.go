package positions

import (
	"errors"
	"testing"
)

func TestIdentifier_RoundTrip(t *testing.T) {
	testCases := []Identifier{
		AAPL,
		{},
		{Broker: "IB", Account: "Margin:1", Ticker: "BRK.B", Currency: "USD", AssetClass: "Equity"},
		{Broker: "Wealthsimple", Account: "RRSP", Ticker: "VFV", Currency: "CAD", AssetClass: ""},
	}
	for _, id := range testCases {
		t.Run(id.String(), func(t *testing.T) {
			token, err := id.Encode()
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			got, err := DecodeIdentifier(token)
			if err != nil {
				t.Fatalf("DecodeIdentifier(%q) error = %v", token, err)
			}
			if got != id {
				t.Errorf("DecodeIdentifier(Encode()) = %#v, want %#v", got, id)
			}
		})
	}
}

func TestIdentifier_EncodeOrder(t *testing.T) {
	got, err := AAPL.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "Questrade::TFSA::AAPL::USD::Equity"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestIdentifier_EncodeSeparator(t *testing.T) {
	id := AAPL
	id.Account = "TFSA::2"
	_, err := id.Encode()
	var invalid *InvalidIdentifierError
	if !errors.As(err, &invalid) {
		t.Fatalf("Encode() error = %v, want an InvalidIdentifierError", err)
	}
	if invalid.Field != "account" {
		t.Errorf("InvalidIdentifierError.Field = %q, want %q", invalid.Field, "account")
	}
}

func TestDecodeIdentifier_Invalid(t *testing.T) {
	for _, token := range []string{"", "a::b::c::d", "a::b::c::d::e::f"} {
		_, err := DecodeIdentifier(token)
		var invalid *InvalidIdentifierError
		if !errors.As(err, &invalid) {
			t.Errorf("DecodeIdentifier(%q) error = %v, want an InvalidIdentifierError", token, err)
		}
	}
}
