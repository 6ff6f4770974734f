package override

// Default is the process-wide registry used by the package-level Register,
// MustRegister and Lookup functions.
var Default = NewRegistry()

// Register attaches an override record to h in the Default registry.
func Register(h *Handler, opts ...Option) (*Handler, error) {
	return Default.Register(h, opts...)
}

// MustRegister attaches an override record to h in the Default registry and panics on error.
func MustRegister(h *Handler, opts ...Option) *Handler {
	return Default.MustRegister(h, opts...)
}

// Lookup returns the override record for method on h from the Default registry.
func Lookup(h *Handler, method string) (*Spec, bool) {
	return Default.Lookup(h, method)
}
