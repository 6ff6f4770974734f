package introspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Field is a serializer field as seen by the introspection helpers.
type Field interface {
	// Name identifies the field in log messages.
	Name() string
	// Default returns the raw default value. ok is false when the field has no default.
	// The raw default may be a callable: a func() any, a func() (any, error), a
	// DefaultFunc, a Defaulter, or any other function taking no arguments.
	Default() (value any, ok bool)
	// ToRepresentation converts an internal value to its serialized form.
	ToRepresentation(value any) (any, error)
}

// DecimalField is implemented by fields holding decimal numbers.
type DecimalField interface {
	Field
	// CoerceToString returns the field's own coerce-to-string setting. ok is false
	// when the field defers to the global policy.
	CoerceToString() (coerce bool, ok bool)
}

// DefaultFunc computes a default value on demand.
type DefaultFunc func() (any, error)

// Defaulter is a default-value provider with its own state.
type Defaulter interface {
	DefaultValue() (any, error)
}

// ContextSetter is implemented by callable defaults that need the field they
// belong to before being invoked.
type ContextSetter interface {
	SetContext(field Field)
}

// FieldDefault returns the JSON-safe default value of field, or ok=false when
// the field has no default.
//
// Callable defaults are invoked first, after SetContext when supported. The value
// is then passed through the field's ToRepresentation and a JSON round trip, so
// composite values collapse to []any and map[string]any and numbers become int64
// when integral, uint64 when integral beyond the int64 range, or float64 otherwise. When DecimalAsFloat applies, the result is
// coerced to float64.
//
// Failures at any step are logged as warnings and reported as no default.
func (in *Inspector) FieldDefault(field Field) (any, bool) {
	raw, ok := field.Default()
	if !ok {
		return nil, false
	}

	value, err := resolveDefault(field, raw)
	if err != nil {
		in.logger.Warn("default is callable but failed when called; default will not be set",
			"field", field.Name(), "error", err)
		return nil, false
	}

	value, err = in.representDefault(field, value)
	if err != nil {
		in.logger.Warn("default will not be set because it could not be represented",
			"field", field.Name(), "error", err)
		return nil, false
	}
	return value, true
}

// DecimalAsFloat reports whether field is a decimal field whose values are
// rendered as numbers: its own coerce-to-string setting, or the global policy when
// it has none, is false.
func (in *Inspector) DecimalAsFloat(field Field) bool {
	df, ok := field.(DecimalField)
	if !ok {
		return false
	}
	coerce, set := df.CoerceToString()
	if !set {
		coerce = in.coerceDecimalToString
	}
	return !coerce
}

func resolveDefault(field Field, raw any) (value any, err error) {
	if cs, ok := raw.(ContextSetter); ok {
		if err := guard(func() error { cs.SetContext(field); return nil }); err != nil {
			return nil, err
		}
	}

	err = guard(func() error {
		var callErr error
		switch fn := raw.(type) {
		case DefaultFunc:
			value, callErr = fn()
		case func() (any, error):
			value, callErr = fn()
		case func() any:
			value = fn()
		case Defaulter:
			value, callErr = fn.DefaultValue()
		default:
			value, callErr = callReflect(raw)
		}
		return callErr
	})
	return value, err
}

var errorType = reflect.TypeFor[error]()

// callReflect invokes raw when it is a zero-argument function returning at least
// one value. A trailing error result is returned as the call error. Any other
// value is returned unchanged.
func callReflect(raw any) (any, error) {
	fn := reflect.ValueOf(raw)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return raw, nil
	}
	ft := fn.Type()
	if ft.NumIn() != 0 || ft.NumOut() == 0 {
		return nil, fmt.Errorf("callable default of type %s must take no arguments and return a value", ft)
	}
	out := fn.Call(nil)
	if n := ft.NumOut(); n > 1 && ft.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}

func (in *Inspector) representDefault(field Field, value any) (out any, err error) {
	err = guard(func() error {
		rep, err := field.ToRepresentation(value)
		if err != nil {
			return fmt.Errorf("to representation: %w", err)
		}
		out, err = jsonRoundTrip(rep)
		if err != nil {
			return err
		}
		if in.DecimalAsFloat(field) {
			out, err = toFloat(out)
		}
		return err
	})
	return out, err
}

// guard runs fn and converts a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func jsonRoundTrip(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return normalizeNumbers(out), nil
}

func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return u
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		for i := range val {
			val[i] = normalizeNumbers(val[i])
		}
		return val
	case map[string]any:
		for k := range val {
			val[k] = normalizeNumbers(val[k])
		}
		return val
	default:
		return v
	}
}

func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case int64:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("decimal default %q is not a number: %w", val, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("decimal default of type %T is not a number", v)
	}
}
