// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// value.go — Value[T], the generic database/sql binding: a driver.Valuer /
// sql.Scanner pair specialized to T and wired to the envelope codec.

package jsonbv

import (
	"database/sql/driver"

	"github.com/AndrewDonelson/jsonbv/internal/envelope"
)

// Value wraps a JSON-marshalable value of type T so database/sql can move it
// through a jsonb column as one opaque envelope. The zero Value holds the
// zero T.
type Value[T any] struct {
	V T
}

// New returns a Value wrapping v.
func New[T any](v T) Value[T] {
	return Value[T]{V: v}
}

// Value encodes the wrapped value as an envelope. A present value is always
// written tagged; this method never reports SQL NULL.
func (v Value[T]) Value() (driver.Value, error) {
	return envelope.Marshal(v.V)
}

// Scan decodes an envelope delivered by the storage layer into the wrapped
// value. The result does not alias src.
func (v *Value[T]) Scan(src any) error {
	return ScanValue(src, &v.V)
}
