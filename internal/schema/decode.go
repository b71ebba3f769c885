package schema

import (
	"encoding/json"
	"fmt"
	"io"
)

// Order is a level's declared sort position. The published dataset is loose
// about this field: it may be absent, numeric, or junk. Anything that is not
// a number decodes as "not declared" rather than failing the whole document.
type Order struct {
	Value    int
	Declared bool
}

// UnmarshalJSON tolerates non-numeric values by leaving the order undeclared.
func (o *Order) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*o = Order{}
		return nil
	}
	*o = Order{Value: int(f), Declared: true}
	return nil
}

// Decode parses a raw dataset document. A structurally unparseable document
// is the one decode-time failure; field-level looseness is absorbed by the
// schema types themselves.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset document: %w", err)
	}
	return &doc, nil
}
