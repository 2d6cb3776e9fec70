package jsonbv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AndrewDonelson/jsonbv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Kind string `json:"kind"`
	Seq  int    `json:"seq"`
}

func TestRegisterBinding(t *testing.T) {
	b := jsonbv.RegisterBinding[event]()
	assert.Equal(t, jsonbv.BindingName[event](), b.Name)
	assert.True(t, strings.HasSuffix(b.Name, ".event"), "got %q", b.Name)

	data, err := b.Marshal(event{Kind: "created", Seq: 1})
	require.NoError(t, err)
	assert.Equal(t, jsonbv.Version, data[0])

	got, err := b.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, event{Kind: "created", Seq: 1}, got)
}

func TestRegisterBindingIdempotent(t *testing.T) {
	first := jsonbv.RegisterBinding[event]()
	second := jsonbv.RegisterBinding[event]()
	assert.Equal(t, first.Name, second.Name)
}

func TestLookupBinding(t *testing.T) {
	reg := jsonbv.RegisterBinding[event]()

	b, ok := jsonbv.LookupBinding(reg.Name)
	require.True(t, ok)
	assert.Equal(t, reg.Name, b.Name)

	_, ok = jsonbv.LookupBinding("github.com/acme/missing.Type")
	assert.False(t, ok)
}

func TestBindingMarshalTo(t *testing.T) {
	b := jsonbv.RegisterBinding[event]()

	var buf bytes.Buffer
	require.NoError(t, b.MarshalTo(&buf, event{Kind: "streamed", Seq: 2}))

	got, err := b.Unmarshal(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, event{Kind: "streamed", Seq: 2}, got)
}

func TestBindingUnmarshalErrors(t *testing.T) {
	b := jsonbv.RegisterBinding[event]()

	_, err := b.Unmarshal(nil)
	assert.ErrorIs(t, err, jsonbv.ErrMalformedEnvelope)

	_, err = b.Unmarshal([]byte{0x7f, '{', '}'})
	assert.ErrorIs(t, err, jsonbv.ErrUnsupportedVersion)

	_, err = b.Unmarshal([]byte{0x01, '?'})
	assert.ErrorIs(t, err, jsonbv.ErrInvalidPayload)
}

func TestBindingNameDereferencesPointers(t *testing.T) {
	assert.Equal(t, jsonbv.BindingName[event](), jsonbv.BindingName[*event]())
}
