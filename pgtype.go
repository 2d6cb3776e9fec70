// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// pgtype.go — pgx v5 column codec: plugs the envelope protocol into a
// pgtype.Map as the binary-format codec for jsonb columns, so pgx moves
// registered Go values through jsonb parameters and results directly.

package jsonbv

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/AndrewDonelson/jsonbv/internal/envelope"
)

// Codec implements pgtype.Codec for jsonb columns using the versioned
// envelope. Only the binary format is supported: the envelope is the jsonb
// binary wire representation, and there is exactly one wire contract. A
// text-format request gets no plan rather than a silently untagged value.
type Codec struct{}

// FormatSupported reports whether format is the binary format code.
func (Codec) FormatSupported(format int16) bool {
	return format == pgtype.BinaryFormatCode
}

// PreferredFormat returns the binary format code.
func (Codec) PreferredFormat() int16 {
	return pgtype.BinaryFormatCode
}

// PlanEncode returns a plan for any JSON-marshalable value. Pre-encoded
// json.RawMessage payloads are framed as-is without a marshal round trip.
func (Codec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	if format != pgtype.BinaryFormatCode {
		return nil
	}
	if _, ok := value.(json.RawMessage); ok {
		return encodePlanRawMessage{}
	}
	return encodePlanMarshal{}
}

type encodePlanMarshal struct{}

// Encode appends the envelope to buf. A non-failing value is always written
// tagged; the nil-buffer NULL channel is never used.
func (encodePlanMarshal) Encode(value any, buf []byte) ([]byte, error) {
	return envelope.Append(buf, value)
}

type encodePlanRawMessage struct{}

func (encodePlanRawMessage) Encode(value any, buf []byte) ([]byte, error) {
	raw := value.(json.RawMessage)
	buf = append(buf, envelope.Version)
	return append(buf, raw...), nil
}

// PlanScan returns a plan that validates the version tag and decodes the
// payload into target. *[]byte and *json.RawMessage targets receive a copy
// of the raw payload instead of a decoded value.
func (Codec) PlanScan(m *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	if format != pgtype.BinaryFormatCode {
		return nil
	}
	switch target.(type) {
	case *[]byte:
		return scanPlanPayloadBytes{}
	case *json.RawMessage:
		return scanPlanPayloadRawMessage{}
	}
	return scanPlanUnmarshal{}
}

type scanPlanUnmarshal struct{}

func (scanPlanUnmarshal) Scan(src []byte, target any) error {
	if src == nil {
		return fmt.Errorf("jsonbv: cannot scan NULL into %T", target)
	}
	return envelope.Unmarshal(src, target)
}

type scanPlanPayloadBytes struct{}

func (scanPlanPayloadBytes) Scan(src []byte, target any) error {
	t := target.(*[]byte)
	if src == nil {
		*t = nil
		return nil
	}
	payload, err := envelope.Payload(src)
	if err != nil {
		return err
	}
	*t = append([]byte(nil), payload...)
	return nil
}

type scanPlanPayloadRawMessage struct{}

func (scanPlanPayloadRawMessage) Scan(src []byte, target any) error {
	t := target.(*json.RawMessage)
	if src == nil {
		*t = nil
		return nil
	}
	payload, err := envelope.Payload(src)
	if err != nil {
		return err
	}
	*t = append(json.RawMessage(nil), payload...)
	return nil
}

// DecodeDatabaseSQLValue validates the tag and returns a copy of the JSON
// payload as a driver.Value.
func (c Codec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	if format != pgtype.BinaryFormatCode {
		return nil, fmt.Errorf("jsonbv: unsupported format code %d", format)
	}
	payload, err := envelope.Payload(src)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), payload...), nil
}

// DecodeValue decodes the envelope into an untyped Go value.
func (c Codec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	if format != pgtype.BinaryFormatCode {
		return nil, fmt.Errorf("jsonbv: unsupported format code %d", format)
	}
	var v any
	if err := envelope.Unmarshal(src, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Register binds T and *T to the jsonb column type on m, installing the
// envelope codec for this type map's jsonb OID. Call once per connection
// (or pool AfterConnect) for each stored type.
func Register[T any](m *pgtype.Map) {
	m.RegisterType(&pgtype.Type{Name: "jsonb", OID: pgtype.JSONBOID, Codec: Codec{}})
	var zero T
	m.RegisterDefaultPgType(zero, "jsonb")
	m.RegisterDefaultPgType(&zero, "jsonb")
}
