package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ n int }

func TestIsNil(t *testing.T) {
	var nilWidget *widget
	var nilAny any = nilWidget

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(nilWidget))
	assert.True(t, IsNil(nilAny))

	assert.False(t, IsNil(&widget{}))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]string(nil)), "nil slices are empty collections, not nil values")
	assert.False(t, IsNil(map[string]any(nil)))
}

func TestFilterNil(t *testing.T) {
	var nilWidget *widget
	w1, w2 := &widget{1}, &widget{2}

	t.Run("any slice", func(t *testing.T) {
		got := FilterNil([]any{1, nil, "a", nilWidget, false})
		assert.Equal(t, []any{1, "a", false}, got)
	})

	t.Run("typed pointer slice keeps type and order", func(t *testing.T) {
		got := FilterNil([]*widget{w2, nil, w1})
		require.IsType(t, []*widget{}, got)
		assert.Equal(t, []*widget{w2, w1}, got)
	})

	t.Run("map drops nil values", func(t *testing.T) {
		got := FilterNil(map[string]any{"a": 1, "b": nil, "c": []any{}})
		assert.Equal(t, map[string]any{"a": 1, "c": []any{}}, got)
	})

	t.Run("map drops nil keys", func(t *testing.T) {
		got := FilterNil(map[any]string{nil: "x", "k": "v"})
		assert.Equal(t, map[any]string{"k": "v"}, got)
	})

	t.Run("unchanged slice returned as is", func(t *testing.T) {
		in := []any{1, 2, 3}
		got := FilterNil(in)
		assert.Equal(t, in, got)
		assert.Len(t, got, 3)
	})

	t.Run("non collections pass through", func(t *testing.T) {
		assert.Nil(t, FilterNil(nil))
		assert.Equal(t, 42, FilterNil(42))
		assert.Equal(t, "s", FilterNil("s"))
		assert.Equal(t, [2]any{nil, 1}, FilterNil([2]any{nil, 1}))
		assert.Same(t, w1, FilterNil(w1))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []any{
			[]any{nil, 1, nil, 2},
			map[string]any{"a": nil, "b": "x"},
			[]*widget{nil, w1},
			"scalar",
		}
		for _, in := range inputs {
			once := FilterNil(in)
			assert.Equal(t, once, FilterNil(once))
		}
	})
}
