// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// jsonbv.go — public entry points of the envelope codec, forwarding to
// internal/envelope. Every binding strategy in this module (Value, the pgx
// codec, generated methods, the runtime registry) routes through these
// functions; the framing protocol lives in exactly one place.

package jsonbv

import (
	"fmt"
	"io"

	"github.com/AndrewDonelson/jsonbv/internal/envelope"
)

// Version is the envelope version written by Marshal and required by
// Unmarshal.
const Version = envelope.Version

// Marshal encodes v into a freshly allocated envelope.
func Marshal(v any) ([]byte, error) {
	return envelope.Marshal(v)
}

// MarshalTo streams the envelope for v into w without buffering the tag and
// payload together. On error the sink may hold a partial write; callers must
// treat the whole encode as failed.
func MarshalTo(w io.Writer, v any) error {
	return envelope.MarshalTo(w, v)
}

// Unmarshal decodes an envelope into v, which must be a non-nil pointer.
func Unmarshal(data []byte, v any) error {
	return envelope.Unmarshal(data, v)
}

// Payload validates the version tag and returns the JSON payload. The
// returned slice aliases data.
func Payload(data []byte) ([]byte, error) {
	return envelope.Payload(data)
}

// ScanValue decodes an envelope delivered through a database/sql Scan source
// into v. Generated Scan methods and Value.Scan forward here. A nil source
// is rejected as malformed rather than mapped to the zero value.
func ScanValue(src, v any) error {
	switch src := src.(type) {
	case nil:
		return ErrMalformedEnvelope
	case []byte:
		return envelope.Unmarshal(src, v)
	case string:
		return envelope.Unmarshal([]byte(src), v)
	default:
		return fmt.Errorf("jsonbv: cannot scan %T into %T", src, v)
	}
}
