package introspect

import (
	"github.com/erraggy/oasmeta/oaslog"
)

// Inspector holds the policy settings and the logger used by the introspection
// helpers that depend on configuration. The zero value is not usable; create one
// with NewInspector.
type Inspector struct {
	logger                oaslog.Logger
	coerceDecimalToString bool
	refNameCase           RefNameCase
}

// Option configures an Inspector.
type Option func(*Inspector)

// NewInspector creates an Inspector. By default decimals are coerced to strings,
// reference names are left as derived, and nothing is logged.
func NewInspector(opts ...Option) *Inspector {
	in := &Inspector{
		logger:                oaslog.NopLogger{},
		coerceDecimalToString: true,
		refNameCase:           RefNameCaseDefault,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// WithLogger sets the logger used to report degraded results.
func WithLogger(logger oaslog.Logger) Option {
	return func(in *Inspector) {
		in.logger = oaslog.OrNop(logger)
	}
}

// WithCoerceDecimalToString sets the global decimal policy applied to decimal
// fields that do not carry their own setting.
func WithCoerceDecimalToString(coerce bool) Option {
	return func(in *Inspector) {
		in.coerceDecimalToString = coerce
	}
}

// WithRefNameCase sets the casing applied to derived reference names.
func WithRefNameCase(c RefNameCase) Option {
	return func(in *Inspector) {
		in.refNameCase = c
	}
}

// CoerceDecimalToString reports the global decimal policy.
func (in *Inspector) CoerceDecimalToString() bool {
	return in.coerceDecimalToString
}

// RefNameCase reports the casing applied to derived reference names.
func (in *Inspector) RefNameCase() RefNameCase {
	return in.refNameCase
}
