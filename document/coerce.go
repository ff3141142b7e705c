// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// TypeCoercionError occurs when a payload value is present but can not
// be coerced to the type a getter requires.
type TypeCoercionError struct {
	Value any
	To    string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce %v (%T) to %s: %s", e.Value, e.Value, e.To, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

// Orchestrators serialize most scalars as strings ("8", "true"), so
// every coercion goes through a weakly typed mapstructure decode.
func coerce[T any](v any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(v); err != nil {
		return out, TypeCoercionError{
			Value: v,
			To:    fmt.Sprintf("%T", out),
			Cause: err,
		}
	}
	return out, nil
}

// StringOr returns the value coerced to a string, or def when the
// value is absent or not coercible.
func (r Result) StringOr(def string) string {
	if !r.found {
		return def
	}
	s, err := coerce[string](r.value)
	if err != nil {
		return def
	}
	return s
}

// BoolOr returns the value coerced to a bool, or def when the value is
// absent or not coercible. String forms like "true" and "1" coerce.
func (r Result) BoolOr(def bool) bool {
	if !r.found {
		return def
	}
	b, err := coerce[bool](r.value)
	if err != nil {
		return def
	}
	return b
}

// IntOr returns the value coerced to an int, or def when the value is
// absent or not coercible.
func (r Result) IntOr(def int) int {
	if !r.found {
		return def
	}
	n, err := coerce[int](r.value)
	if err != nil {
		return def
	}
	return n
}

// Int returns the value coerced to an int. An absent value is not an
// error and yields zero; a present value that does not parse as an
// integer yields a [TypeCoercionError]. This is the only lookup path
// that can surface an error to the caller.
func (r Result) Int() (int, error) {
	if !r.found {
		return 0, nil
	}
	return coerce[int](r.value)
}

// StringsOr returns the value coerced to a string slice, or def when
// the value is absent or not coercible.
func (r Result) StringsOr(def []string) []string {
	if !r.found {
		return def
	}
	ss, err := coerce[[]string](r.value)
	if err != nil {
		return def
	}
	return ss
}

// MapOr returns the value as a nested [Document], or def when the
// value is absent or not a mapping.
func (r Result) MapOr(def Document) Document {
	if !r.found {
		return def
	}
	switch m := r.value.(type) {
	case Document:
		return m
	case map[string]any:
		return Document(m)
	}
	return def
}
