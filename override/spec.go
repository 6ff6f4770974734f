package override

import (
	"fmt"
	"maps"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmeta/internal/maputil"
	"github.com/erraggy/oasmeta/oas"
)

// Recognized override keys.
const (
	KeyAutoSchema          = "auto_schema"
	KeyRequestBody         = "request_body"
	KeyQuerySerializer     = "query_serializer"
	KeyManualParameters    = "manual_parameters"
	KeyOperationID         = "operation_id"
	KeyDescription         = "operation_description"
	KeySummary             = "operation_summary"
	KeySecurity            = "security"
	KeyDeprecated          = "deprecated"
	KeyResponses           = "responses"
	KeyFilterInspectors    = "filter_inspectors"
	KeyPaginatorInspectors = "paginator_inspectors"
	KeyFieldInspectors     = "field_inspectors"
)

// standardKeys is the storage order of the nil-filtered recognized keys.
// auto_schema is handled separately because nil is a meaningful value for it.
var standardKeys = []string{
	KeyRequestBody,
	KeyQuerySerializer,
	KeyManualParameters,
	KeyOperationID,
	KeyDescription,
	KeySummary,
	KeySecurity,
	KeyDeprecated,
	KeyResponses,
	KeyFilterInspectors,
	KeyPaginatorInspectors,
	KeyFieldInspectors,
}

// Responses maps a status code ("200", "4XX", "default") to a response override.
// A value may be a description string, nil to suppress a default response,
// an *oas.Schema, an *oas.Response, or a serializer.
type Responses map[string]any

// Spec is the finalized override record for one (handler, method) pair, or for a
// whole plain handler. Keys that were never supplied are absent. A Spec is never
// modified after registration: maps, slices and parameters are copied when stored
// and again when read.
type Spec struct {
	keys   []string
	values map[string]any
}

func newSpec() *Spec {
	return &Spec{values: make(map[string]any)}
}

func (s *Spec) put(key string, value any) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = cloneValue(value)
}

// cloneValue copies the containers of an override value. Serializers, schemas and
// inspectors are shared.
func cloneValue(v any) any {
	switch val := v.(type) {
	case Responses:
		return maps.Clone(val)
	case map[string]any:
		return maps.Clone(val)
	case []any:
		return slices.Clone(val)
	case []*oas.Parameter:
		if val == nil {
			return val
		}
		out := make([]*oas.Parameter, len(val))
		for i, p := range val {
			if p != nil {
				cp := *p
				cp.Enum = slices.Clone(p.Enum)
				cp.Extra = maps.Clone(p.Extra)
				p = &cp
			}
			out[i] = p
		}
		return out
	case []oas.SecurityRequirement:
		if val == nil {
			return val
		}
		out := make([]oas.SecurityRequirement, len(val))
		for i, req := range val {
			if req != nil {
				cp := make(oas.SecurityRequirement, len(req))
				for scheme, scopes := range req {
					cp[scheme] = slices.Clone(scopes)
				}
				req = cp
			}
			out[i] = req
		}
		return out
	default:
		return v
	}
}

// Len returns the number of stored keys.
func (s *Spec) Len() int {
	return len(s.keys)
}

// Keys returns the stored keys in storage order.
func (s *Spec) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns a copy of the raw value stored under key.
func (s *Spec) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return cloneValue(v), ok
}

// Has reports whether key is stored.
func (s *Spec) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Map returns a copy of the stored key/value pairs.
func (s *Spec) Map() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = cloneValue(v)
	}
	return out
}

func lookup[T any](s *Spec, key string) Opt[T] {
	v, ok := s.values[key]
	if !ok {
		return Unset[T]()
	}
	if v == nil {
		var zero T
		return Some(zero)
	}
	t, ok := cloneValue(v).(T)
	if !ok {
		return Unset[T]()
	}
	return Some(t)
}

// AutoSchema returns the custom operation inspector. A set nil value means the
// operation must not be generated at all.
func (s *Spec) AutoSchema() Opt[any] { return lookup[any](s, KeyAutoSchema) }

// RequestBody returns the request body override: a schema, NoBody, or a serializer.
func (s *Spec) RequestBody() Opt[any] { return lookup[any](s, KeyRequestBody) }

// QuerySerializer returns the serializer whose fields become query parameters.
func (s *Spec) QuerySerializer() Opt[any] { return lookup[any](s, KeyQuerySerializer) }

// ManualParameters returns the parameters that override discovered ones by (name, in).
func (s *Spec) ManualParameters() Opt[[]*oas.Parameter] {
	return lookup[[]*oas.Parameter](s, KeyManualParameters)
}

// OperationID returns the operation ID override.
func (s *Spec) OperationID() Opt[string] { return lookup[string](s, KeyOperationID) }

// Description returns the operation description override.
func (s *Spec) Description() Opt[string] { return lookup[string](s, KeyDescription) }

// Summary returns the operation summary override.
func (s *Spec) Summary() Opt[string] { return lookup[string](s, KeySummary) }

// Security returns the security requirements. A set empty list marks the operation
// unauthenticated; unset inherits the document-level requirements.
func (s *Spec) Security() Opt[[]oas.SecurityRequirement] {
	return lookup[[]oas.SecurityRequirement](s, KeySecurity)
}

// Deprecated returns the deprecation flag.
func (s *Spec) Deprecated() Opt[bool] { return lookup[bool](s, KeyDeprecated) }

// Responses returns the response overrides keyed by status code.
func (s *Spec) Responses() Opt[Responses] { return lookup[Responses](s, KeyResponses) }

// FieldInspectors returns extra field inspectors to try before the defaults.
func (s *Spec) FieldInspectors() Opt[[]any] { return lookup[[]any](s, KeyFieldInspectors) }

// FilterInspectors returns extra filter inspectors to try before the defaults.
func (s *Spec) FilterInspectors() Opt[[]any] { return lookup[[]any](s, KeyFilterInspectors) }

// PaginatorInspectors returns extra paginator inspectors to try before the defaults.
func (s *Spec) PaginatorInspectors() Opt[[]any] { return lookup[[]any](s, KeyPaginatorInspectors) }

// MarshalYAML renders the record as a mapping in storage order. Values that have no
// natural YAML form, such as serializers and inspectors, are rendered by type name.
func (s *Spec) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range s.keys {
		val, err := toNode(yamlValue(s.values[k]))
		if err != nil {
			return nil, fmt.Errorf("override: encoding %s: %w", k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, val)
	}
	return node, nil
}

// yamlValue maps override values onto YAML-friendly values.
func yamlValue(v any) any {
	switch val := v.(type) {
	case nil, string, bool, int, int64, float64,
		*oas.Schema, *oas.Response, []*oas.Parameter, []oas.SecurityRequirement:
		return val
	case Responses:
		out := &yaml.Node{Kind: yaml.MappingNode}
		for _, code := range maputil.SortedKeys(val) {
			child, err := toNode(yamlValue(val[code]))
			if err != nil {
				child = &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%T", val[code])}
			}
			out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: code}, child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = yamlValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = yamlValue(item)
		}
		return out
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%T", val)
	}
}

// toNode converts v to a yaml.Node by a marshal/unmarshal round trip.
func toNode(v any) (*yaml.Node, error) {
	if node, ok := v.(*yaml.Node); ok {
		return node, nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0], nil
	}
	return &doc, nil
}
