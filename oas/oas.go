// Package oas holds the small OpenAPI object model that override registrations and
// introspection helpers exchange with a document generator.
//
// The model intentionally covers only what callers attach as overrides: parameters,
// schemas, responses and security requirements. Document assembly lives elsewhere.
package oas

import "fmt"

// ParamIn is the location of a parameter.
type ParamIn string

// Parameter locations. Body and FormData are OAS 2.0 locations; Cookie is OAS 3.0+.
const (
	InQuery    ParamIn = "query"
	InPath     ParamIn = "path"
	InHeader   ParamIn = "header"
	InBody     ParamIn = "body"
	InFormData ParamIn = "formData"
	InCookie   ParamIn = "cookie"
)

// Valid reports whether in is one of the known parameter locations.
func (in ParamIn) Valid() bool {
	switch in {
	case InQuery, InPath, InHeader, InBody, InFormData, InCookie:
		return true
	}
	return false
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          ParamIn `yaml:"in" json:"in"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// OAS 2.0 non-body parameters carry their type inline.
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Format  string `yaml:"format,omitempty" json:"format,omitempty"`
	Default any    `yaml:"default,omitempty" json:"default,omitempty"`
	Enum    []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Key returns the (name, in) identity of the parameter.
func (p *Parameter) Key() ParamKey {
	return ParamKey{Name: p.Name, In: p.In}
}

// ParamKey is the identity of a parameter within an operation.
// Two parameters with the same name in different locations are distinct.
type ParamKey struct {
	Name string
	In   ParamIn
}

// String returns a human-readable form such as "id in query".
func (k ParamKey) String() string {
	return fmt.Sprintf("%s in %s", k.Name, k.In)
}

// Schema is a JSON Schema subset sufficient for override bodies and responses.
type Schema struct {
	Ref         string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type        string             `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string             `yaml:"format,omitempty" json:"format,omitempty"`
	Title       string             `yaml:"title,omitempty" json:"title,omitempty"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any                `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []any              `yaml:"enum,omitempty" json:"enum,omitempty"`
	Required    []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	ReadOnly    bool               `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Nullable    bool               `yaml:"x-nullable,omitempty" json:"x-nullable,omitempty"`
}

// RefTo returns a schema referencing the named definition.
func RefTo(name string) *Schema {
	return &Schema{Ref: "#/definitions/" + name}
}

// Response describes a single response from an operation.
type Response struct {
	Description string         `yaml:"description" json:"description"`
	Schema      *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Examples    map[string]any `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// SecurityRequirement lists the required security schemes to execute an operation.
// Maps security scheme names to scopes (if using OAuth2).
type SecurityRequirement map[string][]string
