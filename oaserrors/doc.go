// Package oaserrors provides structured error types for the oasmeta library.
//
// Import path: github.com/erraggy/oasmeta/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a misconfigured registration apart from a duplicate one.
//
// # Error Types
//
//   - [ConfigError]: conflicting or invalid registration options and settings
//   - [DuplicateError]: a second override for the same (handler, method), or a second
//     parameter with the same (name, in) key
//   - [ConsistencyError]: a handler bound to methods in two mutually exclusive ways
//
// # Sentinel Errors
//
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrDuplicate]: Matches any [DuplicateError]
//   - [ErrConsistency]: Matches any [ConsistencyError]
//
// # Usage Examples
//
//	_, err := registry.Register(h, override.WithMethod("get"), override.WithSummary("List"))
//	if errors.Is(err, oaserrors.ErrDuplicate) {
//	    // the handler already carries an override for GET
//	}
//
// All of these errors are raised at setup time. None of them are retryable: the
// registration code has to be fixed.
package oaserrors
