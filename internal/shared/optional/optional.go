// Package optional provides a three-state value used by partial updates.
//
// A Value is either unset (the key was absent from the payload), null
// (the key was present with a JSON null) or set to a concrete value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds an optional T. The zero Value is unset.
type Value[T any] struct {
	v    T
	set  bool
	null bool
}

// Of returns a Value set to v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// Null returns a Value that is set to an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// FromPtr returns Of(*p), or an unset Value when p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Value[T]{}
	}
	return Of(*p)
}

// IsSet reports whether the value was supplied, including an explicit null.
func (o Value[T]) IsSet() bool { return o.set }

// IsNull reports whether the value was supplied as an explicit null.
func (o Value[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and true when it is set and not null.
func (o Value[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.v, true
}

// Ptr returns a pointer to a copy of the value, or nil when unset or null.
func (o Value[T]) Ptr() *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}

// OrElse returns the value when set and not null, otherwise def.
func (o Value[T]) OrElse(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

// Map converts a set value with fn, preserving unset and null states.
func Map[T, U any](o Value[T], fn func(T) (U, error)) (Value[U], error) {
	if !o.set {
		return Value[U]{}, nil
	}
	if o.null {
		return Null[U](), nil
	}
	u, err := fn(o.v)
	if err != nil {
		return Value[U]{}, err
	}
	return Of(u), nil
}

// Convert is Map for conversions that cannot fail.
func Convert[T, U any](o Value[T], fn func(T) U) Value[U] {
	switch {
	case !o.set:
		return Value[U]{}
	case o.null:
		return Null[U]()
	}
	return Of(fn(o.v))
}

// UnmarshalJSON marks the value as set. encoding/json only calls it when the
// key is present, which is what separates "omitted" from "null".
func (o *Value[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.v = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(b, &o.v)
}

// MarshalJSON encodes unset and null values as JSON null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}
