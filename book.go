package positions

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/etnz/positions/date"
)

// Book holds the open lots of every Identifier, in the order identifiers first appeared.
type Book struct {
	order []Identifier
	lots  map[Identifier]Lots
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{lots: make(map[Identifier]Lots)}
}

// queue returns the lots of id, registering id with an empty queue if it is new.
func (b *Book) queue(id Identifier) Lots {
	l, ok := b.lots[id]
	if !ok {
		b.order = append(b.order, id)
		b.lots[id] = nil
	}
	return l
}

// Apply updates the lots of e's Identifier with e's record.
//
// Records of type Other leave the book untouched.
func (b *Book) Apply(e Entry) error {
	id := e.Identifier
	switch r := e.Record.(type) {
	case Buy:
		b.lots[id] = b.queue(id).Buy(Lot{Quantity: r.Quantity, Price: r.Price})
	case Drip:
		b.lots[id] = b.queue(id).Buy(Lot{Quantity: r.Quantity, Price: r.Price})
	case Split:
		b.lots[id] = b.queue(id).Split(r.Ratio)
	case Sell:
		l, err := b.queue(id).Sell(r.Quantity)
		if err != nil {
			var oversell *OversellError
			if errors.As(err, &oversell) {
				oversell.Identifier = id
			}
			return err
		}
		b.lots[id] = l
	case Other:
	default:
		return fmt.Errorf("unsupported record type %T", e.Record)
	}
	return nil
}

// Lots returns the open lots of id.
func (b *Book) Lots(id Identifier) Lots { return b.lots[id] }

// Identifiers iterates over all identifiers in the book, in order of first appearance.
func (b *Book) Identifiers() iter.Seq[Identifier] {
	return slices.Values(b.order)
}

// Len returns the number of identifiers in the book.
func (b *Book) Len() int { return len(b.order) }

// Prune removes the identifiers without open lots.
func (b *Book) Prune() {
	b.order = slices.DeleteFunc(b.order, func(id Identifier) bool {
		return len(b.lots[id]) == 0
	})
	maps.DeleteFunc(b.lots, func(id Identifier, l Lots) bool {
		return len(l) == 0
	})
}

// Positions resolves every identifier of the book into its Position.
//
// The book must have been pruned.
func (b *Book) Positions() ([]Position, error) {
	positions := make([]Position, 0, len(b.order))
	for _, id := range b.order {
		p, err := Resolve(id, b.lots[id])
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// Options tunes the computation of positions.
type Options struct {
	// AsOf, when set, stops the computation at the first entry dated after it.
	// Every entry must then have a readable date.
	AsOf date.Date

	// FirstLine is the line number of the first row given to Compute, as returned by DecodeCSV.
	// Zero means 1.
	FirstLine int
}

// Fold applies entries in order to a new Book.
//
// Entries must be in chronological order, they are never sorted.
func Fold(entries []Entry, opts Options) (*Book, error) {
	b := NewBook()
	for _, e := range entries {
		if !opts.AsOf.IsZero() {
			if e.Date.IsZero() {
				return nil, fmt.Errorf("line %d: %w", e.Line, &InvalidTradeRecordError{
					Column: columnNames[ColDate],
					Value:  e.RawDate,
					Err:    errors.New("a readable date is required to compute positions as of a date"),
				})
			}
			if e.Date.After(opts.AsOf) {
				break
			}
		}
		if err := b.Apply(e); err != nil {
			return nil, fmt.Errorf("line %d: %w", e.Line, err)
		}
	}
	return b, nil
}

// Compute returns the positions held at the end of the trade history rows.
//
// Rows without action are skipped, identifiers whose lots have all been sold are left out.
// Positions come in the order their identifier first appears in rows.
func Compute(rows []Row, opts Options) ([]Position, error) {
	entries, err := Entries(rows, opts.FirstLine)
	if err != nil {
		return nil, err
	}
	b, err := Fold(entries, opts)
	if err != nil {
		return nil, err
	}
	b.Prune()
	return b.Positions()
}
