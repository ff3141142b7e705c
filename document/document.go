// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package document

import "strings"

// Document is the root of a command payload: a tree of mappings,
// sequences and scalars as produced by decoding command.json (or its
// YAML equivalent). The accessor layer treats it as immutable; callers
// which mutate a Document concurrently with readers are on their own.
type Document map[string]any

// Result holds the outcome of a path lookup. It distinguishes a value
// that was found from one that was absent, so that a found zero value
// (false, 0, "") is not confused with a missing field.
type Result struct {
	value any
	found bool
}

// Lookup walks the document along a slash-delimited path, one segment
// at a time, and returns the value found at its end. Empty segments
// are discarded, so "a/b", "/a/b" and "a//b" name the same location.
//
// Lookup never fails: a missing key, an explicit null, or a step into
// anything that is not a mapping all yield an absent [Result].
func (d Document) Lookup(path string) Result {
	var value any = d
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}

		var ok bool
		switch m := value.(type) {
		case Document:
			value, ok = m[segment]
		case map[string]any:
			value, ok = m[segment]
		}
		if !ok {
			return Result{}
		}
	}
	if value == nil {
		return Result{}
	}
	return Result{value: value, found: true}
}

// Found reports whether the lookup reached a non-null value.
func (r Result) Found() bool {
	return r.found
}

// Value returns the raw value along with a flag signalling whether it
// was found at all.
func (r Result) Value() (any, bool) {
	return r.value, r.found
}

// Or returns the raw value, or def when the value is absent.
func (r Result) Or(def any) any {
	if !r.found {
		return def
	}
	return r.value
}
