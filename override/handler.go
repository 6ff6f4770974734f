package override

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasmeta/internal/httputil"
	"github.com/erraggy/oasmeta/oaserrors"
)

// Handler is a stable descriptor for one handler callable. Registrations are keyed
// by the *Handler pointer, so the same descriptor must be used for registration and
// for later lookups.
//
// A Handler is reachable in one of three ways:
//   - plain: none of BoundMethods, Mapping or Dispatcher yield a method
//   - action-style: BoundMethods lists the methods, or Mapping routes methods to Name
//   - dispatched: Dispatcher is the class-based dispatcher generated for a
//     function-style handler, and its implemented methods are the available ones
type Handler struct {
	// Name is the handler's own name. Mapping entries route to it by this name.
	Name string

	// BoundMethods lists the HTTP methods an action is explicitly bound to.
	BoundMethods []string

	// Mapping routes HTTP methods to action names. Only entries whose action name
	// equals Name bind this handler.
	Mapping map[string]string

	// Dispatcher is the dispatcher that serves this function-style handler.
	Dispatcher *Dispatcher

	// slots lists every dispatcher method this handler serves. A handler may be
	// shared by several methods or several dispatchers.
	slots []dispatchSlot
}

// dispatchSlot is one dispatcher method served by a handler.
type dispatchSlot struct {
	dispatcher *Dispatcher
	method     string
}

// String returns the handler name, or a placeholder when the name is empty.
func (h *Handler) String() string {
	if h == nil {
		return "<nil handler>"
	}
	if h.Name == "" {
		return "<anonymous handler>"
	}
	return h.Name
}

// Dispatcher is the capability descriptor of a class-based dispatcher: the set of
// HTTP methods it implements, each optionally backed by the handler serving it.
// It is computed once, when the dispatcher is defined.
type Dispatcher struct {
	// Name identifies the dispatcher in error messages.
	Name string

	methods map[string]*Handler
}

// NewDispatcher creates a dispatcher implementing the methods present as keys in
// methods. Keys are lower-cased; keys that are not standard HTTP method names are
// ignored. A nil handler value declares the method without a handler descriptor.
// A handler may serve several methods, and may be reused by other dispatchers;
// override shadowing is checked against every dispatcher method it serves.
func NewDispatcher(name string, methods map[string]*Handler) *Dispatcher {
	d := &Dispatcher{Name: name, methods: make(map[string]*Handler, len(methods))}
	for m, h := range methods {
		m = strings.ToLower(m)
		if !httputil.IsMethodName(m) {
			continue
		}
		d.methods[m] = h
		if h != nil {
			h.slots = append(h.slots, dispatchSlot{dispatcher: d, method: m})
		}
	}
	return d
}

// Implements reports whether the dispatcher implements method.
func (d *Dispatcher) Implements(method string) bool {
	if d == nil {
		return false
	}
	_, ok := d.methods[strings.ToLower(method)]
	return ok
}

// Handler returns the handler serving method, or nil.
func (d *Dispatcher) Handler(method string) *Handler {
	if d == nil {
		return nil
	}
	return d.methods[strings.ToLower(method)]
}

// Methods returns the implemented methods in standard HTTP method order.
func (d *Dispatcher) Methods() []string {
	var out []string
	for _, m := range httputil.MethodNames() {
		if d.Implements(m) {
			out = append(out, m)
		}
	}
	return out
}

// BindingStyle describes how a handler is bound to HTTP methods.
type BindingStyle int

const (
	// BindingPlain is a single-method handler; no method disambiguation is possible.
	BindingPlain BindingStyle = iota
	// BindingAction is an action bound to methods through BoundMethods or Mapping.
	BindingAction
	// BindingDispatched is a function-style handler served through a Dispatcher.
	BindingDispatched
)

// String returns the style name.
func (s BindingStyle) String() string {
	switch s {
	case BindingPlain:
		return "plain"
	case BindingAction:
		return "action"
	case BindingDispatched:
		return "dispatched"
	default:
		return fmt.Sprintf("BindingStyle(%d)", int(s))
	}
}

// Binding is the resolved set of methods a handler can serve.
type Binding struct {
	Style BindingStyle
	// Available lists the lower-cased methods that may be targeted. It is empty
	// for plain handlers.
	Available []string
}

// Has reports whether method is available, ignoring case.
func (b Binding) Has(method string) bool {
	return slices.Contains(b.Available, strings.ToLower(method))
}

// Resolve determines which HTTP methods h can legitimately serve.
//
// Action-style methods are BoundMethods followed by the Mapping entries routed to
// h.Name; dispatched methods are the Dispatcher's implemented methods. At most one of
// the two may be non-empty; otherwise a *oaserrors.ConsistencyError is returned.
func Resolve(h *Handler) (Binding, error) {
	if h == nil {
		return Binding{}, &oaserrors.ConfigError{Option: "handler", Message: "handler is nil"}
	}

	action := actionMethods(h)
	dispatched := h.Dispatcher.Methods()

	switch {
	case len(action) > 0 && len(dispatched) > 0:
		return Binding{}, &oaserrors.ConsistencyError{
			Subject: "handler " + h.String(),
			Message: fmt.Sprintf("bound both as an action %v and through dispatcher %q %v",
				action, h.Dispatcher.Name, dispatched),
		}
	case len(action) > 0:
		return Binding{Style: BindingAction, Available: action}, nil
	case len(dispatched) > 0:
		return Binding{Style: BindingDispatched, Available: dispatched}, nil
	default:
		return Binding{Style: BindingPlain}, nil
	}
}

// actionMethods collects BoundMethods, then mapped methods in standard order,
// lower-cased and without repeats.
func actionMethods(h *Handler) []string {
	var out []string
	add := func(m string) {
		m = strings.ToLower(m)
		if m != "" && !slices.Contains(out, m) {
			out = append(out, m)
		}
	}

	for _, m := range h.BoundMethods {
		add(m)
	}

	mapped := make([]string, 0, len(h.Mapping))
	for m, name := range h.Mapping {
		if name == h.Name {
			mapped = append(mapped, strings.ToLower(m))
		}
	}
	slices.SortFunc(mapped, compareMethods)
	for _, m := range mapped {
		add(m)
	}
	return out
}

// compareMethods orders standard methods by probing order and anything else after
// them alphabetically.
func compareMethods(a, b string) int {
	names := httputil.MethodNames()
	ia, ib := slices.Index(names, a), slices.Index(names, b)
	switch {
	case ia >= 0 && ib >= 0:
		return ia - ib
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
