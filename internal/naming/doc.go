// Package naming provides shared case conversion utilities for oasmeta packages.
//
// The introspect package uses these functions to apply the configured reference
// name casing to names derived from serializers. Word boundaries come from
// separators and case changes, and acronyms such as "API" form a single word.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
