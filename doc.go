// Package positions computes the positions held in a portfolio from its trade history, using
// First-In-First-Out (FIFO) lot accounting.
//
// A trade history is a chronological list of rows, typically exported from a spreadsheet. Each
// row applies one action to an Identifier (broker, account, ticker, currency and asset class):
//   - BUY and DRIP (dividend reinvestment) open a new lot at the tail of the identifier's queue.
//   - SELL consumes lots from the head of the queue, the oldest first.
//   - SPLIT rescales every open lot, keeping its cost.
//   - any other action is ignored.
//
// Once all rows are applied, identifiers sold out are dropped and each remaining queue of lots
// is resolved into a Position: the total quantity held and its average unit cost.
//
//	rows, first, err := positions.DecodeCSV(f, true)
//	...
//	list, err := positions.Compute(rows, positions.Options{FirstLine: first})
//
// Quantities and prices are exact decimals. Currencies are grouping attributes only, they are
// never converted.
package positions
