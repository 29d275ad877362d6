package ownedstore

import "parcel_backend/internal/shared/optional"

// Changes maps column names to the values an update writes.
type Changes map[string]any

// Put records v under col when it was supplied. An explicit null is
// written as NULL.
func Put[T any](c Changes, col string, v optional.Value[T]) {
	if !v.IsSet() {
		return
	}
	if val, ok := v.Get(); ok {
		c[col] = val
		return
	}
	c[col] = nil
}
