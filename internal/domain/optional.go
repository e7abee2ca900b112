package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a merge-patch field with three states: absent, explicit null, or a value.
// The zero value is absent.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// Null returns an Optional that is explicitly null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// HasValue reports whether a non-null value was supplied.
func (o Optional[T]) HasValue() bool {
	return o.Present && !o.Null
}

// UnmarshalJSON is only invoked by encoding/json when the key exists in the document,
// which is what distinguishes "absent" from "null".
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes null for absent and null states.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
