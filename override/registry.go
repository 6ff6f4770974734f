package override

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmeta/internal/httputil"
	"github.com/erraggy/oasmeta/internal/options"
	"github.com/erraggy/oasmeta/oaserrors"
	"github.com/erraggy/oasmeta/oaslog"
)

// record holds every override registered on one handler.
type record struct {
	whole   *Spec
	methods map[string]*Spec
	order   []string
}

func (rec *record) empty() bool {
	return rec == nil || (rec.whole == nil && len(rec.methods) == 0)
}

// Registry is the table of override records, keyed by handler and method.
//
// Registration is expected to happen once, at setup time, before the registry is
// read. The mutex only keeps each Register call atomic; uniqueness of
// (handler, method) pairs is enforced by the registration rules themselves.
type Registry struct {
	mu      sync.Mutex
	logger  oaslog.Logger
	records map[*Handler]*record
	order   []*Handler
	// claimed tracks dispatcher methods overridden through a function-style handler.
	claimed map[*Dispatcher]map[string]*Handler
	hints   map[*Handler]any
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry logger. The default discards all output.
func WithLogger(logger oaslog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = oaslog.OrNop(logger)
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{logger: oaslog.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	r.init()
	return r
}

func (r *Registry) init() {
	r.records = make(map[*Handler]*record)
	r.order = nil
	r.claimed = make(map[*Dispatcher]map[string]*Handler)
	r.hints = make(map[*Handler]any)
}

// MustRegister is like Register but panics on error. It is intended for package-level
// variable initialization, where a failed registration is a programming error.
func (r *Registry) MustRegister(h *Handler, opts ...Option) *Handler {
	h, err := r.Register(h, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// Register attaches an override record to h and returns h.
//
// For handlers serving several methods the target must be chosen with WithMethod
// or WithMethods; a handler serving exactly one method targets it implicitly; a
// plain handler gets a single whole-handler record. Each (handler, method) pair
// accepts exactly one registration. When no override value is supplied the call
// is a no-op. On error the registry is left unchanged.
func (r *Registry) Register(h *Handler, opts ...Option) (*Handler, error) {
	if h == nil {
		return nil, &RegistrationError{
			Handler: h.String(),
			Cause:   &oaserrors.ConfigError{Option: "handler", Message: "handler is nil"},
		}
	}

	reg := newRegistration()
	for _, opt := range opts {
		if opt != nil {
			opt(reg)
		}
	}

	fail := func(methods []string, cause error) (*Handler, error) {
		return h, &RegistrationError{Handler: h.String(), Methods: methods, Cause: cause}
	}

	for _, f := range reg.extras {
		if httputil.IsMethodName(f.key) {
			return fail(nil, &oaserrors.ConfigError{
				Option:  "extra",
				Value:   f.key,
				Message: "HTTP method names are reserved and cannot be used as override keys",
			})
		}
	}
	if err := validateResponses(reg); err != nil {
		return fail(nil, err)
	}

	spec := reg.spec()
	if spec.Len() == 0 {
		r.logger.Debug("no overrides supplied; registration skipped", "handler", h.String())
		return h, nil
	}

	binding, err := Resolve(h)
	if err != nil {
		return fail(nil, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.records[h]
	targets, err := r.targets(h, binding, reg, rec)
	if err != nil {
		return fail(targets, err)
	}

	if len(targets) == 0 {
		if err := r.checkWhole(h, rec); err != nil {
			return fail(nil, err)
		}
	} else if err := r.checkMethods(h, binding, targets, rec); err != nil {
		return fail(targets, err)
	}

	r.write(h, binding, targets, spec)
	r.logger.Debug("override registered",
		"handler", h.String(), "binding", binding.Style.String(), "methods", targets, "keys", spec.Keys())
	return h, nil
}

// targets selects the lower-cased methods the registration applies to. An empty
// result means the whole (plain) handler.
func (r *Registry) targets(h *Handler, binding Binding, reg *registration, rec *record) ([]string, error) {
	hasMethod := reg.method != ""
	hasMethods := len(reg.methods) > 0

	if !hasMethod && !hasMethods {
		switch len(binding.Available) {
		case 0:
			return nil, nil
		case 1:
			return []string{binding.Available[0]}, nil
		default:
			return nil, &oaserrors.ConfigError{
				Option: "method",
				Message: fmt.Sprintf("handler serves %s; choose the target with WithMethod or WithMethods",
					strings.Join(binding.Available, ", ")),
			}
		}
	}

	if err := options.ValidateExclusive("method",
		options.Source{Name: "WithMethod", Set: hasMethod},
		options.Source{Name: "WithMethods", Set: hasMethods},
	); err != nil {
		return nil, err
	}
	if hasMethods && len(reg.methods) == 1 && strings.ContainsAny(reg.methods[0], ", ") {
		return nil, &oaserrors.ConfigError{
			Option:  "methods",
			Value:   reg.methods[0],
			Message: "WithMethods expects one argument per method; use WithMethod for a single method",
		}
	}
	if len(binding.Available) == 0 {
		return nil, &oaserrors.ConfigError{
			Option:  "method",
			Message: "a target method can only be chosen for action or dispatched handlers",
		}
	}

	requested := reg.methods
	if hasMethod {
		requested = []string{reg.method}
	}
	var targets []string
	for _, m := range requested {
		m = strings.ToLower(strings.TrimSpace(m))
		if !slices.Contains(targets, m) {
			targets = append(targets, m)
		}
	}

	for _, m := range targets {
		if !binding.Has(m) {
			return targets, &oaserrors.ConfigError{
				Option:  "method",
				Value:   m,
				Message: fmt.Sprintf("HTTP method is not bound to handler %s (available: %s)",
					h, strings.Join(binding.Available, ", ")),
			}
		}
	}
	for _, m := range targets {
		if rec != nil && rec.methods[m] != nil {
			return targets, duplicate(h, m, "HTTP method defined multiple times")
		}
	}
	return targets, nil
}

// checkMethods rejects per-method registrations that would shadow an existing one.
func (r *Registry) checkMethods(h *Handler, binding Binding, targets []string, rec *record) error {
	if rec != nil && rec.whole != nil {
		return duplicate(h, "", "handler already carries a whole-handler override")
	}
	for _, m := range targets {
		if rec != nil && rec.methods[m] != nil {
			return duplicate(h, m, "override applied twice to method")
		}
		if binding.Style != BindingDispatched {
			continue
		}
		if mh := h.Dispatcher.Handler(m); mh != nil && !r.records[mh].empty() {
			return duplicate(h, m, fmt.Sprintf("dispatcher %q already carries an override on its %s handler",
				h.Dispatcher.Name, m))
		}
		if other := r.claimed[h.Dispatcher][m]; other != nil && other != h {
			return duplicate(h, m, fmt.Sprintf("dispatcher %q method already overridden through handler %s",
				h.Dispatcher.Name, other))
		}
	}
	return nil
}

// checkWhole rejects a second whole-handler registration, and a registration on a
// dispatcher's method handler whose method was already overridden through the
// function-style handler.
func (r *Registry) checkWhole(h *Handler, rec *record) error {
	if !rec.empty() {
		return duplicate(h, "", "override applied twice to handler")
	}
	for _, slot := range h.slots {
		if other := r.claimed[slot.dispatcher][slot.method]; other != nil {
			return duplicate(h, slot.method, fmt.Sprintf("dispatcher %q method already overridden through handler %s",
				slot.dispatcher.Name, other))
		}
	}
	return nil
}

func (r *Registry) write(h *Handler, binding Binding, targets []string, spec *Spec) {
	rec := r.records[h]
	if rec == nil {
		rec = &record{methods: make(map[string]*Spec)}
		r.records[h] = rec
		r.order = append(r.order, h)
	}
	if len(targets) == 0 {
		rec.whole = spec
		return
	}
	for _, m := range targets {
		rec.methods[m] = spec
		rec.order = append(rec.order, m)
		if binding.Style == BindingDispatched {
			if r.claimed[h.Dispatcher] == nil {
				r.claimed[h.Dispatcher] = make(map[string]*Handler)
			}
			r.claimed[h.Dispatcher][m] = h
		}
	}
}

func duplicate(h *Handler, method, msg string) error {
	key := h.String()
	if method != "" {
		key += " " + method
	}
	return &oaserrors.DuplicateError{Kind: "override", Key: key, Message: msg}
}

func validateResponses(reg *registration) error {
	responses, _ := reg.standard[KeyResponses].(Responses)
	for code := range responses {
		if !httputil.ValidateStatusCode(code) {
			return &oaserrors.ConfigError{
				Option:  "responses",
				Value:   code,
				Message: "response keys must be status codes, status ranges such as 2XX, or default",
			}
		}
	}
	return nil
}

// Lookup returns the override record that applies to method on h: the per-method
// record when one exists, otherwise the whole-handler record.
func (r *Registry) Lookup(h *Handler, method string) (*Spec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.records[h]
	if rec == nil {
		return nil, false
	}
	if s := rec.methods[strings.ToLower(method)]; s != nil {
		return s, true
	}
	if rec.whole != nil {
		return rec.whole, true
	}
	return nil, false
}

// Overrides returns the per-method records and the whole-handler record of h.
func (r *Registry) Overrides(h *Handler) (methods map[string]*Spec, whole *Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.records[h]
	if rec == nil {
		return nil, nil
	}
	methods = make(map[string]*Spec, len(rec.methods))
	for m, s := range rec.methods {
		methods[m] = s
	}
	return methods, rec.whole
}

// Entry is one registered override record.
type Entry struct {
	Handler *Handler
	// Method is empty for whole-handler records.
	Method string
	Spec   *Spec
}

// Entries returns every record in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Entry
	for _, h := range r.order {
		rec := r.records[h]
		if rec.whole != nil {
			out = append(out, Entry{Handler: h, Spec: rec.whole})
		}
		for _, m := range rec.order {
			out = append(out, Entry{Handler: h, Method: m, Spec: rec.methods[m]})
		}
	}
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.Entries())
}

// Reset removes every record and serializer hint.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
}

// yamlEntry is the dump form of an Entry.
type yamlEntry struct {
	Handler   string `yaml:"handler"`
	Method    string `yaml:"method,omitempty"`
	Overrides *Spec  `yaml:"overrides"`
}

// WriteYAML dumps every record to w as a YAML sequence, in registration order.
func (r *Registry) WriteYAML(w io.Writer) error {
	entries := r.Entries()
	out := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, yamlEntry{Handler: e.Handler.String(), Method: e.Method, Overrides: e.Spec})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("override: failed to encode registry: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// HintSerializer records the serializer describing the value produced by h, a
// computed-field method handler. Each handler accepts one hint.
func (r *Registry) HintSerializer(h *Handler, serializer any) error {
	if h == nil || serializer == nil {
		return &oaserrors.ConfigError{Option: "serializer hint", Message: "handler and serializer are required"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hints[h]; exists {
		return &oaserrors.DuplicateError{Kind: "serializer hint", Key: h.String()}
	}
	r.hints[h] = serializer
	return nil
}

// SerializerHint returns the serializer recorded for h by HintSerializer.
func (r *Registry) SerializerHint(h *Handler) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.hints[h]
	return s, ok
}
