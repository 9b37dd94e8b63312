package stalker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// jsonObjectWriter builds a JSON object with a fixed field order. The zero
// value is ready to use.
//
// Stored data is line-oriented JSON meant to be diffed and reviewed, so the
// field order must be stable regardless of Go map iteration.
type jsonObjectWriter struct {
	parts [][]byte
	err   error
}

// Append encodes the value and adds it under the given key.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("encoding field %q: %w", key, err)
		return w
	}
	part := strconv.AppendQuote(nil, key)
	part = append(part, ':')
	part = append(part, encoded...)
	w.parts = append(w.parts, part)
	return w
}

// Optional appends the field only when the value is not its type's zero
// value, keeping empty columns out of the stored lines.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Embed splices the fields of an already encoded JSON object into this one.
func (w *jsonObjectWriter) Embed(encoded []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	inner := bytes.TrimSpace(encoded)
	if len(inner) >= 2 && inner[0] == '{' && inner[len(inner)-1] == '}' {
		inner = bytes.TrimSpace(inner[1 : len(inner)-1])
	}
	if len(inner) > 0 {
		w.parts = append(w.parts, inner)
	}
	return w
}

// EmbedFrom marshals the value and splices its fields in.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("encoding embedded value: %w", err)
		return w
	}
	return w.Embed(encoded)
}

// MarshalJSON assembles the object. It satisfies json.Marshaler so a writer
// can be returned directly from a MarshalJSON method.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, 64)
	out = append(out, '{')
	out = append(out, bytes.Join(w.parts, []byte{','})...)
	out = append(out, '}')
	return out, nil
}
