package override

// Opt is an optional value that distinguishes "not supplied" from any supplied
// value, including nil. The zero value is unset.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Unset returns an empty Opt.
func Unset[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the held value and whether one was supplied.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was supplied.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the held value, or def when unset.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

type noBody struct{}

func (noBody) String() string { return "no_body" }

// NoBody is the request-body override meaning "this operation has no body".
// It is distinct from nil, which leaves the body to be discovered.
var NoBody any = noBody{}

// IsNoBody reports whether v is the NoBody sentinel.
func IsNoBody(v any) bool {
	_, ok := v.(noBody)
	return ok
}
