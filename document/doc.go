// Copyright (c) 2026 MpackOps and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package document holds the generic value tree a command payload
// decodes into, along with the path lookup primitive everything else
// in this module is built on.
//
// A [Document] is addressed with slash-delimited paths:
//
//	doc.Lookup("ambariLevelParams/java_home").StringOr("")
//
// Lookup is total. Missing keys, explicit nulls and paths that descend
// into a scalar all produce an absent [Result], and the typed
// accessors on Result substitute the caller's default for anything
// absent. The one exception is [Result.Int], which reports a value
// that is present but not an integer as a [TypeCoercionError] instead
// of hiding it behind a default.
package document
