package override

import (
	"strings"
)

// RegistrationError reports a rejected Register call. It wraps one of the
// oaserrors types, so errors.Is(err, oaserrors.ErrConfig) and
// errors.Is(err, oaserrors.ErrDuplicate) tell the two failure classes apart.
type RegistrationError struct {
	// Handler is the name of the handler being registered.
	Handler string
	// Methods are the target methods, when they were known at the time of failure.
	Methods []string
	// Cause is the underlying oaserrors value.
	Cause error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	var sb strings.Builder
	sb.WriteString("override: handler ")
	sb.WriteString(e.Handler)
	if len(e.Methods) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(e.Methods, ", "))
		sb.WriteString("]")
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RegistrationError) Unwrap() error {
	return e.Cause
}
