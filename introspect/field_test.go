package introspect

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/erraggy/oasmeta/oaslog"
)

type stubField struct {
	name       string
	def        any
	hasDefault bool
	rep        func(any) (any, error)
}

func (f *stubField) Name() string { return f.name }

func (f *stubField) Default() (any, bool) { return f.def, f.hasDefault }

func (f *stubField) ToRepresentation(v any) (any, error) {
	if f.rep != nil {
		return f.rep(v)
	}
	return v, nil
}

func withDefault(v any) *stubField {
	return &stubField{name: "field", def: v, hasDefault: true}
}

type decimalField struct {
	stubField
	coerce *bool
}

func (f *decimalField) CoerceToString() (bool, bool) {
	if f.coerce == nil {
		return false, false
	}
	return *f.coerce, true
}

type contextDefault struct {
	field Field
}

func (c *contextDefault) SetContext(field Field) { c.field = field }

func (c *contextDefault) DefaultValue() (any, error) {
	if c.field == nil {
		return nil, errors.New("context not set")
	}
	return "owner of " + c.field.Name(), nil
}

type color string

func (c color) String() string { return string(c) }

func TestFieldDefault(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		want   any
		wantOK bool
	}{
		{"no default", &stubField{name: "f"}, nil, false},
		{"nil default is a value", withDefault(nil), nil, true},
		{"string", withDefault("draft"), "draft", true},
		{"int becomes int64", withDefault(42), int64(42), true},
		{"integral float becomes int64", withDefault(3.0), int64(3), true},
		{"float", withDefault(2.5), 2.5, true},
		{"bool", withDefault(false), false, true},
		{"slice collapses to []any", withDefault([]int{1, 2}), []any{int64(1), int64(2)}, true},
		{"array collapses to []any", withDefault([2]string{"a", "b"}), []any{"a", "b"}, true},
		{"struct collapses to map", withDefault(struct {
			Page int    `json:"page"`
			Sort string `json:"sort"`
		}{1, "name"}), map[string]any{"page": int64(1), "sort": "name"}, true},
		{"time becomes string", withDefault(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), "2024-01-02T03:04:05Z", true},
		{"func() any", withDefault(func() any { return []string{"x"} }), []any{"x"}, true},
		{"func() (any, error)", withDefault(func() (any, error) { return 7, nil }), int64(7), true},
		{"DefaultFunc", withDefault(DefaultFunc(func() (any, error) { return "computed", nil })), "computed", true},
		{"Defaulter with context", withDefault(&contextDefault{}), "owner of field", true},
		{"func() int", withDefault(func() int { return 5 }), int64(5), true},
		{"func() []string", withDefault(func() []string { return []string{"a", "b"} }), []any{"a", "b"}, true},
		{"func() (string, error)", withDefault(func() (string, error) { return "ok", nil }), "ok", true},
		{"uint64 beyond int64 keeps precision", withDefault(uint64(math.MaxUint64)), uint64(math.MaxUint64), true},
		{
			"representation applied before round trip",
			&stubField{name: "color", def: "red", hasDefault: true, rep: func(v any) (any, error) {
				return color(fmt.Sprint(v)), nil
			}},
			"red", true,
		},
	}

	in := NewInspector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := in.FieldDefault(tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldDefault_Degradation(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		msg   string
	}{
		{
			"callable returns error",
			withDefault(func() (any, error) { return nil, errors.New("db unavailable") }),
			"default is callable but failed when called; default will not be set",
		},
		{
			"typed callable returns error",
			withDefault(func() (int, error) { return 0, errors.New("sequence exhausted") }),
			"default is callable but failed when called; default will not be set",
		},
		{
			"callable with arguments",
			withDefault(func(n int) int { return n }),
			"default is callable but failed when called; default will not be set",
		},
		{
			"callable returns nothing",
			withDefault(func() {}),
			"default is callable but failed when called; default will not be set",
		},
		{
			"callable panics",
			withDefault(func() any { panic("boom") }),
			"default is callable but failed when called; default will not be set",
		},
		{
			"context setter panics",
			withDefault(panickySetter{}),
			"default is callable but failed when called; default will not be set",
		},
		{
			"representation fails",
			&stubField{name: "f", def: 1, hasDefault: true, rep: func(any) (any, error) {
				return nil, errors.New("bad value")
			}},
			"default will not be set because it could not be represented",
		},
		{
			"representation panics",
			&stubField{name: "f", def: 1, hasDefault: true, rep: func(any) (any, error) {
				panic("nil map")
			}},
			"default will not be set because it could not be represented",
		},
		{
			"value not encodable",
			withDefault(make(chan int)),
			"default will not be set because it could not be represented",
		},
		{
			"decimal that is not a number",
			&decimalField{stubField: *withDefault("abc")},
			"default will not be set because it could not be represented",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			in := NewInspector(
				WithLogger(oaslog.NewZapAdapter(zap.New(core))),
				WithCoerceDecimalToString(false),
			)

			var (
				got any
				ok  bool
			)
			require.NotPanics(t, func() { got, ok = in.FieldDefault(tt.field) })
			assert.False(t, ok)
			assert.Nil(t, got)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.msg, entries[0].Message)
			assert.Contains(t, entries[0].ContextMap(), "error")
		})
	}
}

type panickySetter struct{}

func (panickySetter) SetContext(Field) { panic("no context") }

func TestFieldDefault_DecimalCoercion(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name   string
		global bool
		coerce *bool
		def    any
		want   any
	}{
		{"global string policy keeps string", true, nil, "1.50", "1.50"},
		{"global float policy parses string", false, nil, "1.50", 1.5},
		{"field setting overrides global float policy", false, &yes, "1.50", "1.50"},
		{"field setting overrides global string policy", true, &no, "2", 2.0},
		{"integral number becomes float", false, nil, 3, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInspector(WithCoerceDecimalToString(tt.global))
			field := &decimalField{stubField: *withDefault(tt.def), coerce: tt.coerce}
			got, ok := in.FieldDefault(field)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecimalAsFloat(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name   string
		global bool
		field  Field
		want   bool
	}{
		{"not a decimal field", false, withDefault(1), false},
		{"global coerces to string", true, &decimalField{}, false},
		{"global renders numbers", false, &decimalField{}, true},
		{"field coerces to string", false, &decimalField{coerce: &yes}, false},
		{"field renders numbers", true, &decimalField{coerce: &no}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInspector(WithCoerceDecimalToString(tt.global))
			assert.Equal(t, tt.want, in.DecimalAsFloat(tt.field))
		})
	}
}

func TestNewInspector_Defaults(t *testing.T) {
	in := NewInspector()
	assert.True(t, in.CoerceDecimalToString())
	assert.Equal(t, RefNameCaseDefault, in.RefNameCase())

	in = NewInspector(WithLogger(nil))
	assert.NotPanics(t, func() { in.FieldDefault(withDefault(func() any { panic("x") })) })
}
