package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid configuration or a conflicting registration request.
	ErrConfig = errors.New("configuration error")

	// ErrDuplicate indicates that something was registered or declared more than once.
	ErrDuplicate = errors.New("duplicate definition")

	// ErrConsistency indicates an internal consistency violation, such as a handler
	// that is bound to HTTP methods in two mutually exclusive ways.
	ErrConsistency = errors.New("consistency error")
)

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DuplicateError represents a second definition of something that must be unique,
// such as an override for a (handler, method) pair or a (name, in) parameter key.
type DuplicateError struct {
	// Kind names what was duplicated (e.g., "override", "parameter")
	Kind string
	// Key identifies the duplicated entry (e.g., "listUsers get", "id in query")
	Key string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *DuplicateError) Error() string {
	msg := "duplicate"
	if e.Kind != "" {
		msg += " " + e.Kind
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as DuplicateError has no underlying cause.
func (e *DuplicateError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// ConsistencyError represents a state that should be impossible given correct inputs
// from the collaborating framework. It is never the caller's configuration mistake alone.
type ConsistencyError struct {
	// Subject identifies what was inspected
	Subject string
	// Message describes the violated invariant
	Message string
}

// Error returns a human-readable error message.
func (e *ConsistencyError) Error() string {
	msg := "consistency error"
	if e.Subject != "" {
		msg += " in " + e.Subject
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConsistencyError) Is(target error) bool {
	return target == ErrConsistency
}
