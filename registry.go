// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// registry.go — runtime binding registry: an explicit registration step that
// stores an envelope encode/decode pair per type, keyed by fully qualified
// type name, for programs that dispatch on type names instead of
// instantiating Value[T] at compile time.

package jsonbv

import (
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/AndrewDonelson/jsonbv/internal/envelope"
)

// Binding is an envelope codec pair bound to one registered type. All three
// functions forward to the shared protocol implementation; a Binding carries
// no state of its own.
type Binding struct {
	// Name is the fully qualified type name the binding is registered under,
	// e.g. "github.com/acme/orders.Invoice".
	Name string

	// Marshal encodes v into a freshly allocated envelope.
	Marshal func(v any) ([]byte, error)

	// MarshalTo streams the envelope for v into w.
	MarshalTo func(w io.Writer, v any) error

	// Unmarshal decodes an envelope into a newly constructed value of the
	// bound type.
	Unmarshal func(data []byte) (any, error)

	rtype reflect.Type
}

var registry = struct {
	mu sync.RWMutex
	m  map[string]Binding
}{m: make(map[string]Binding)}

// RegisterBinding stores an envelope binding for T and returns it.
// Re-registering the same type is a no-op; registering a different type
// under a colliding name panics, since a silent overwrite would let one
// type's payloads decode as another's.
func RegisterBinding[T any]() Binding {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	name := qualifiedName(t)

	b := Binding{
		Name:  name,
		rtype: t,
		Marshal: func(v any) ([]byte, error) {
			return envelope.Marshal(v)
		},
		MarshalTo: func(w io.Writer, v any) error {
			return envelope.MarshalTo(w, v)
		},
		Unmarshal: func(data []byte) (any, error) {
			var v T
			if err := envelope.Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if existing, ok := registry.m[name]; ok {
		if existing.rtype != t {
			panic(fmt.Sprintf("jsonbv: type name collision: %s already registered for %v", name, existing.rtype))
		}
		return existing
	}
	registry.m[name] = b
	return b
}

// LookupBinding returns the binding registered under name.
func LookupBinding(name string) (Binding, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	b, ok := registry.m[name]
	return b, ok
}

// BindingName returns the fully qualified name T would be registered under,
// without registering it.
func BindingName[T any]() string {
	var zero T
	return qualifiedName(reflect.TypeOf(&zero).Elem())
}

func qualifiedName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
