package oas

import (
	"errors"
	"testing"

	"github.com/erraggy/oasmeta/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamIn_Valid(t *testing.T) {
	for _, in := range []ParamIn{InQuery, InPath, InHeader, InBody, InFormData, InCookie} {
		assert.True(t, in.Valid(), in)
	}
	assert.False(t, ParamIn("matrix").Valid())
	assert.False(t, ParamIn("").Valid())
}

func TestParamKey_String(t *testing.T) {
	p := &Parameter{Name: "id", In: InPath}
	assert.Equal(t, ParamKey{Name: "id", In: InPath}, p.Key())
	assert.Equal(t, "id in path", p.Key().String())
}

func TestNewParameterSet(t *testing.T) {
	t.Run("same name different location", func(t *testing.T) {
		set, err := NewParameterSet(
			&Parameter{Name: "id", In: InQuery},
			&Parameter{Name: "id", In: InPath},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())
		assert.Equal(t, []ParamKey{{"id", InQuery}, {"id", InPath}}, set.Keys())
	})

	t.Run("duplicate key fails", func(t *testing.T) {
		_, err := NewParameterSet(
			&Parameter{Name: "id", In: InQuery},
			&Parameter{Name: "id", In: InQuery, Description: "again"},
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrDuplicate))
		assert.Contains(t, err.Error(), "id in query")
	})
}

func TestParameterSet_Set(t *testing.T) {
	var set ParameterSet
	first := &Parameter{Name: "page", In: InQuery}
	second := &Parameter{Name: "limit", In: InQuery}
	replacement := &Parameter{Name: "page", In: InQuery, Description: "manual"}

	set.Set(first)
	set.Set(second)
	set.Set(replacement)

	require.Equal(t, 2, set.Len())
	got, ok := set.Get(ParamKey{"page", InQuery})
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, []*Parameter{replacement, second}, set.Values())
}

func TestParameterSet_All(t *testing.T) {
	set, err := NewParameterSet(
		&Parameter{Name: "a", In: InHeader},
		&Parameter{Name: "b", In: InQuery},
		&Parameter{Name: "c", In: InPath},
	)
	require.NoError(t, err)

	var names []string
	for k := range set.All() {
		names = append(names, k.Name)
		if k.Name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}
