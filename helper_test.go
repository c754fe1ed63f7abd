package positions

// AAPL is the identifier used by most tests.
var AAPL = Identifier{Broker: "Questrade", Account: "TFSA", Ticker: "AAPL", Currency: "USD", AssetClass: "Equity"}

// trade returns a well formed row for AAPL.
func trade(on, action, quantity, price string) Row {
	return Row{AAPL.Broker, AAPL.Account, on, AAPL.Ticker, action, quantity, price, "", AAPL.Currency, AAPL.AssetClass}
}

// tradeOf returns a well formed row for the ticker, in the same account as AAPL.
func tradeOf(ticker, action, quantity, price string) Row {
	return Row{AAPL.Broker, AAPL.Account, "2024-01-01", ticker, action, quantity, price, "", AAPL.Currency, AAPL.AssetClass}
}

// lotsOf builds a queue from quantity, price pairs.
func lotsOf(pairs ...float64) Lots {
	var l Lots
	for i := 0; i+1 < len(pairs); i += 2 {
		l = append(l, Lot{Quantity: Q(pairs[i]), Price: P(pairs[i+1])})
	}
	return l
}

// equalLots reports whether a and b hold the same lots in the same order.
func equalLots(a, b Lots) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Quantity.Equal(b[i].Quantity) || !a[i].Price.Equal(b[i].Price) {
			return false
		}
	}
	return true
}
