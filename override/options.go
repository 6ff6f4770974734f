package override

import (
	"github.com/erraggy/oasmeta/internal/maputil"
	"github.com/erraggy/oasmeta/oas"
)

// extraField is a caller-defined override kept in the order it was supplied.
type extraField struct {
	key   string
	value any
}

// registration collects the options of a single Register call.
type registration struct {
	method     string
	methods    []string
	standard   map[string]any
	autoSchema Opt[any]
	extras     []extraField
}

func newRegistration() *registration {
	return &registration{standard: make(map[string]any)}
}

// Option configures a single override registration.
type Option func(*registration)

// WithMethod targets a single HTTP method of a multi-method handler.
// It is mutually exclusive with WithMethods.
func WithMethod(method string) Option {
	return func(r *registration) {
		r.method = method
	}
}

// WithMethods targets several HTTP methods of a multi-method handler.
// It is mutually exclusive with WithMethod.
func WithMethods(methods ...string) Option {
	return func(r *registration) {
		r.methods = append(r.methods, methods...)
	}
}

// WithAutoSchema sets a custom operation inspector for the operation. Passing nil
// excludes the operation from the generated document.
func WithAutoSchema(inspector any) Option {
	return func(r *registration) {
		r.autoSchema = Some(inspector)
	}
}

// WithRequestBody overrides the request body with a schema, a serializer, or NoBody.
// A nil body is ignored.
func WithRequestBody(body any) Option {
	return func(r *registration) {
		r.standard[KeyRequestBody] = body
	}
}

// WithQuerySerializer sets a serializer whose fields become query parameters.
func WithQuerySerializer(serializer any) Option {
	return func(r *registration) {
		r.standard[KeyQuerySerializer] = serializer
	}
}

// WithManualParameters adds parameters that replace discovered parameters with the
// same (name, in) key. Calling it with no parameters carries no override.
func WithManualParameters(params ...*oas.Parameter) Option {
	return func(r *registration) {
		if len(params) == 0 {
			return
		}
		existing, _ := r.standard[KeyManualParameters].([]*oas.Parameter)
		r.standard[KeyManualParameters] = append(existing, params...)
	}
}

// WithOperationID sets the operation ID. It must be unique across the whole API.
func WithOperationID(id string) Option {
	return func(r *registration) {
		r.standard[KeyOperationID] = id
	}
}

// WithDescription sets the operation description.
func WithDescription(desc string) Option {
	return func(r *registration) {
		r.standard[KeyDescription] = desc
	}
}

// WithSummary sets the operation summary.
func WithSummary(summary string) Option {
	return func(r *registration) {
		r.standard[KeySummary] = summary
	}
}

// WithSecurity sets the security requirements for the operation.
// Calling it with no requirements is the same as WithNoSecurity.
func WithSecurity(requirements ...oas.SecurityRequirement) Option {
	return func(r *registration) {
		if requirements == nil {
			requirements = []oas.SecurityRequirement{}
		}
		r.standard[KeySecurity] = requirements
	}
}

// WithNoSecurity marks the operation as requiring no authentication.
func WithNoSecurity() Option {
	return WithSecurity()
}

// WithDeprecated sets the deprecation status of the operation.
func WithDeprecated(deprecated bool) Option {
	return func(r *registration) {
		r.standard[KeyDeprecated] = deprecated
	}
}

// WithResponses merges responses into the response overrides.
func WithResponses(responses Responses) Option {
	return func(r *registration) {
		for code, resp := range responses {
			r.response(code, resp)
		}
	}
}

// WithResponse documents a single response. A nil value suppresses the response
// that would otherwise be generated for code, and a string becomes its description.
//
// Example:
//
//	override.WithResponse("200", nil),
//	override.WithResponse("302", "redirect to the created resource"),
func WithResponse(code string, response any) Option {
	return func(r *registration) {
		r.response(code, response)
	}
}

func (r *registration) response(code string, response any) {
	existing, _ := r.standard[KeyResponses].(Responses)
	if existing == nil {
		existing = make(Responses)
		r.standard[KeyResponses] = existing
	}
	existing[code] = response
}

// WithFieldInspectors adds serializer and field inspectors tried before the defaults.
func WithFieldInspectors(inspectors ...any) Option {
	return inspectorOption(KeyFieldInspectors, inspectors)
}

// WithFilterInspectors adds filter inspectors tried before the defaults.
func WithFilterInspectors(inspectors ...any) Option {
	return inspectorOption(KeyFilterInspectors, inspectors)
}

// WithPaginatorInspectors adds paginator inspectors tried before the defaults.
func WithPaginatorInspectors(inspectors ...any) Option {
	return inspectorOption(KeyPaginatorInspectors, inspectors)
}

func inspectorOption(key string, inspectors []any) Option {
	return func(r *registration) {
		existing, _ := r.standard[key].([]any)
		existing = append(existing, inspectors...)
		if len(existing) == 0 {
			// an empty inspector list carries no override
			r.standard[key] = nil
			return
		}
		r.standard[key] = existing
	}
}

// WithExtra stores an arbitrary caller-defined value under key. Extra values are
// kept verbatim, nil included, for the document generator to consume. HTTP method
// names are reserved and rejected at registration.
func WithExtra(key string, value any) Option {
	return func(r *registration) {
		for i := range r.extras {
			if r.extras[i].key == key {
				r.extras[i].value = value
				return
			}
		}
		r.extras = append(r.extras, extraField{key: key, value: value})
	}
}

// spec builds the candidate override record: recognized keys with nil values are
// dropped, auto_schema is kept whenever it was supplied, and extras are merged last.
func (r *registration) spec() *Spec {
	s := newSpec()
	filtered := maputil.FilterNil(r.standard).(map[string]any)
	for _, k := range standardKeys {
		if v, ok := filtered[k]; ok {
			s.put(k, v)
		}
	}
	if v, ok := r.autoSchema.Get(); ok {
		s.put(KeyAutoSchema, v)
	}
	for _, f := range r.extras {
		s.put(f.key, f.value)
	}
	return s
}
