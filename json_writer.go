package positions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Quantities, prices and amounts are written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// objectWriter builds a JSON object whose keys keep the order they are written in, so that
// reports list the identifier before the figures. The zero value is an empty object.
//
// The first error is kept and returned by MarshalJSON, later writes are no-ops.
type objectWriter struct {
	buf bytes.Buffer
	err error
}

// fields writes the fields of v, which must marshal to a JSON object.
func (w *objectWriter) fields(v any) *objectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal %T fields: %w", v, err)
		return w
	}
	inner, ok := bytes.CutPrefix(bytes.TrimSpace(raw), []byte("{"))
	if inner, ok = bytes.CutSuffix(inner, []byte("}")); !ok {
		w.err = fmt.Errorf("%T does not marshal to a JSON object", v)
		return w
	}
	if len(inner) > 0 {
		w.buf.Write(inner)
		w.buf.WriteByte(',')
	}
	return w
}

// field writes key with value marshaled by encoding/json.
func (w *objectWriter) field(key string, value any) *objectWriter {
	if w.err != nil {
		return w
	}
	k, _ := json.Marshal(key)
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal %q: %w", key, err)
		return w
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(v)
	w.buf.WriteByte(',')
	return w
}

// text writes key only when value is not empty.
func (w *objectWriter) text(key, value string) *objectWriter {
	if value == "" {
		return w
	}
	return w.field(key, value)
}

// MarshalJSON returns the object written so far.
func (w *objectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.buf.Bytes(), []byte(","))
	out := make([]byte, 0, len(content)+2)
	out = append(out, '{')
	out = append(out, content...)
	return append(out, '}'), nil
}
