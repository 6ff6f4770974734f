package introspect

import (
	"reflect"
	"strings"
)

const (
	serializerSuffix     = "Serializer"
	nestedSerializerName = "NestedSerializer"
)

// Namer is implemented by serializers that report their own class name.
type Namer interface {
	SerializerName() string
}

// RefNameOverrider is implemented by serializers that declare an explicit
// reference name. declared is false when the serializer does not declare one. A
// declared empty name forces the schema inline.
type RefNameOverrider interface {
	RefName() (name string, declared bool)
}

// ModelSerializer is implemented by serializers derived from a data model.
type ModelSerializer interface {
	ModelName() string
}

// SerializerName returns the class name of serializer: the value reported by
// Namer, or else the name of its dynamic type with pointers removed. Unnamed
// types yield "".
func SerializerName(serializer any) string {
	if n, ok := serializer.(Namer); ok {
		return n.SerializerName()
	}
	if serializer == nil {
		return ""
	}
	t := reflect.TypeOf(serializer)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// SerializerName returns the class name of serializer. See the package-level
// SerializerName.
func (in *Inspector) SerializerName(serializer any) string {
	return SerializerName(serializer)
}

// SerializerRefName returns the name under which the schema of serializer is
// registered as a reusable component. ok is false when the schema must always be
// expanded inline. Rules are applied in order:
//
//  1. an explicit reference name declared through RefNameOverrider wins outright
//  2. a model serializer named "NestedSerializer" is forced inline
//  3. the class name, with a trailing "Serializer" removed and the inspector's
//     reference name casing applied
func (in *Inspector) SerializerRefName(serializer any) (string, bool) {
	name := SerializerName(serializer)

	if o, ok := serializer.(RefNameOverrider); ok {
		if ref, declared := o.RefName(); declared {
			return ref, ref != ""
		}
	}

	if m, isModel := serializer.(ModelSerializer); isModel && name == nestedSerializerName {
		in.logger.Debug("forcing inline output for model serializer named NestedSerializer",
			"model", m.ModelName())
		return "", false
	}

	ref := strings.TrimSuffix(name, serializerSuffix)
	if ref == "" {
		return "", false
	}
	return in.refNameCase.Apply(ref), true
}
