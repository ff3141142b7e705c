// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import (
	"encoding/json"
	"fmt"
	"io"
)

// InvalidJSONError occurs if a payload reader contains invalid JSON.
type InvalidJSONError struct {
	cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidJSONError) Unwrap() error {
	return e.cause
}

// FromJSON decodes a command payload from JSON, the format the
// orchestrator distributes command.json in. The reader is closed if it
// implements [io.Closer].
func FromJSON(r io.Reader) (Document, error) {
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	err = json.Unmarshal(b, &m)
	if err != nil {
		return nil, InvalidJSONError{cause: err}
	}
	return Document(m), nil
}
