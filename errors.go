// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the jsonbv decode path,
// re-exported from internal/envelope so callers only import this package.

// Package jsonbv stores JSON-marshalable Go values in PostgreSQL jsonb
// columns through a versioned binary envelope: one leading version byte
// followed by the value's JSON encoding. Bindings come in three flavours —
// the generic Value wrapper for database/sql, a pgx column codec, and the
// jsonbvgen code generator.
package jsonbv

import "github.com/AndrewDonelson/jsonbv/internal/envelope"

// Decode errors
var (
	// ErrMalformedEnvelope means the stored value is empty and cannot hold
	// even a version tag. Indicates corruption or a schema mismatch.
	ErrMalformedEnvelope = envelope.ErrMalformed

	// ErrUnsupportedVersion means the leading tag byte is not a version this
	// library writes. Indicates data written by an incompatible writer.
	// Matched by UnsupportedVersionError, which carries the offending byte.
	ErrUnsupportedVersion = envelope.ErrUnsupportedVersion

	// ErrInvalidPayload means the bytes after the tag failed to parse as a
	// JSON document for the target type.
	ErrInvalidPayload = envelope.ErrInvalidPayload
)

// UnsupportedVersionError is the concrete error returned for an
// unrecognized version tag.
type UnsupportedVersionError = envelope.UnsupportedVersionError
