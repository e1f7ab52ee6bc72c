// Package optional provides an explicit present-or-absent value type.
package optional

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Value holds either a value of type T or nothing.
// The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value or fallback when absent.
func (o Value[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// MarshalJSON encodes an absent value as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as absent. A missing key never reaches this method,
// so it stays absent as well.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
