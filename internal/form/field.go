// AngelaMos | 2026
// field.go

// Package form models tri-state form fields and the normalization rules
// applied to raw form input before validation.
//
// An update patch must distinguish three states for every field: omitted
// (keep the stored value), cleared (set NULL), and set. JSON conflates the
// first two unless unmarshalling tracks key presence, so Field records it
// explicitly.
package form

import (
	"bytes"
	"encoding/json"
)

type fieldState int

const (
	stateOmitted fieldState = iota
	stateCleared
	stateSet
)

// Field is a tri-state patch value: Omit, Clear or Set. The zero value
// is Omit, which is what an absent JSON key decodes to.
type Field[T any] struct {
	state fieldState
	value T
}

func Omit[T any]() Field[T] {
	return Field[T]{}
}

func Clear[T any]() Field[T] {
	return Field[T]{state: stateCleared}
}

func Set[T any](v T) Field[T] {
	return Field[T]{state: stateSet, value: v}
}

func (f Field[T]) IsOmitted() bool {
	return f.state == stateOmitted
}

func (f Field[T]) IsClear() bool {
	return f.state == stateCleared
}

func (f Field[T]) IsSet() bool {
	return f.state == stateSet
}

// Get returns the value and whether the field is in the Set state.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == stateSet
}

var nullLiteral = []byte("null")

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*f = Clear[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Set(v)
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state == stateSet {
		return json.Marshal(f.value)
	}
	return nullLiteral, nil
}
