// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// InvalidYAMLError occurs if a payload reader contains invalid YAML.
type InvalidYAMLError struct {
	cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidYAMLError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYAMLError) Unwrap() error {
	return e.cause
}

// FromYAML decodes a command payload from YAML. The reader is closed
// if it implements [io.Closer].
func FromYAML(r io.Reader) (Document, error) {
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return nil, InvalidYAMLError{cause: err}
	}
	return Document(m), nil
}
