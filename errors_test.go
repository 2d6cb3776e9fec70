package jsonbv_test

import (
	"errors"
	"testing"

	"github.com/AndrewDonelson/jsonbv"
	"github.com/stretchr/testify/assert"
)

// The decode error surface is part of the stored-data contract: operators
// tell schema drift from corruption by these messages, so they stay stable.
func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, jsonbv.ErrMalformedEnvelope, "jsonbv: malformed envelope: empty value")
	assert.EqualError(t, jsonbv.ErrUnsupportedVersion, "jsonbv: unsupported envelope version")
	assert.EqualError(t, jsonbv.ErrInvalidPayload, "jsonbv: invalid JSON payload")
}

func TestUnsupportedVersionErrorCarriesByte(t *testing.T) {
	err := error(&jsonbv.UnsupportedVersionError{Version: 0xab})
	assert.EqualError(t, err, "jsonbv: unsupported envelope version 0xab")
	assert.ErrorIs(t, err, jsonbv.ErrUnsupportedVersion)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{
		jsonbv.ErrMalformedEnvelope,
		jsonbv.ErrUnsupportedVersion,
		jsonbv.ErrInvalidPayload,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v matched %v", a, b)
			}
		}
	}
}
