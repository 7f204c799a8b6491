package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// themeKeyOrder lists the theme.json keys that are always written first.
var themeKeyOrder = []string{"name", "version", "author", "description"}

// Document is a JSON object that keeps every field it was decoded with.
// Values are kept as raw JSON, so fields of any type round-trip unchanged.
type Document struct {
	keys   []string // source order, first occurrence
	fields map[string]json.RawMessage
}

// ParseDocument decodes data, which must be a single JSON object.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("top-level value must be a JSON object")
	}

	doc := &Document{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if _, seen := doc.fields[key]; !seen {
			doc.keys = append(doc.keys, key)
		}
		doc.fields[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return doc, nil
}

// Get returns the raw value of key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Set stores v under key, appending key if it is new.
func (d *Document) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if d.fields == nil {
		d.fields = make(map[string]json.RawMessage)
	}
	if _, seen := d.fields[key]; !seen {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = raw
	return nil
}

// Keys returns the output order: the standard theme keys that are present,
// then all other keys in source order.
func (d *Document) Keys() []string {
	out := make([]string, 0, len(d.keys))
	standard := make(map[string]bool, len(themeKeyOrder))
	for _, k := range themeKeyOrder {
		standard[k] = true
		if _, ok := d.fields[k]; ok {
			out = append(out, k)
		}
	}
	for _, k := range d.keys {
		if !standard[k] {
			out = append(out, k)
		}
	}
	return out
}

// MarshalJSON writes the fields in Keys order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(d.fields[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
