// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// envelope.go — the versioned binary framing protocol: one leading version
// byte followed by the value's JSON encoding. This is the same layout
// PostgreSQL uses for jsonb values on the binary wire protocol, which is
// what makes an enveloped value storable as-is in a jsonb column.

// Package envelope implements the versioned jsonb envelope codec.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Version is the only envelope version this package writes or accepts.
// A future payload encoding would bump this and old readers would fail
// loudly instead of misparsing the payload.
const Version byte = 0x01

// Decode errors. Encode-side failures are the JSON marshaller's own errors,
// propagated unchanged.
var (
	ErrMalformed          = errors.New("jsonbv: malformed envelope: empty value")
	ErrUnsupportedVersion = errors.New("jsonbv: unsupported envelope version")
	ErrInvalidPayload     = errors.New("jsonbv: invalid JSON payload")
)

// UnsupportedVersionError reports a version tag this package does not
// recognize. It matches ErrUnsupportedVersion under errors.Is.
type UnsupportedVersionError struct {
	// Version is the offending tag byte as read from the envelope.
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("jsonbv: unsupported envelope version 0x%02x", e.Version)
}

// Is reports whether target is ErrUnsupportedVersion.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// Marshal encodes v into a freshly allocated envelope.
func Marshal(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(payload)+1)
	buf = append(buf, Version)
	return append(buf, payload...), nil
}

// Append encodes v and appends the envelope to buf, returning the extended
// buffer. Nothing is appended on error.
func Append(buf []byte, v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	buf = append(buf, Version)
	return append(buf, payload...), nil
}

// MarshalTo writes the envelope for v into w: the version tag first, then
// the JSON payload, with no separator or terminator. On error the sink may
// hold a partial write; callers must treat the whole encode as failed and
// discard it.
func MarshalTo(w io.Writer, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte{Version}); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Payload validates the version tag and returns the JSON payload without
// copying. The returned slice aliases data.
func Payload(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrMalformed
	}
	if data[0] != Version {
		return nil, &UnsupportedVersionError{Version: data[0]}
	}
	return data[1:], nil
}

// Unmarshal decodes an envelope into v, which must be a non-nil pointer.
// The reconstructed value does not alias data. The identity of a payload
// failure is the stable ErrInvalidPayload sentinel; the parser's diagnostic
// stays reachable through errors.Unwrap.
func Unmarshal(data []byte, v any) error {
	payload, err := Payload(data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
