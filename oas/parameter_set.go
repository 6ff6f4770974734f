package oas

import (
	"iter"

	"github.com/erraggy/oasmeta/oaserrors"
)

// ParameterSet is an insertion-ordered collection of parameters keyed by (name, in).
// The zero value is an empty set ready to use.
type ParameterSet struct {
	keys  []ParamKey
	byKey map[ParamKey]*Parameter
}

// NewParameterSet builds a set from params, failing on the first duplicate key.
func NewParameterSet(params ...*Parameter) (*ParameterSet, error) {
	s := &ParameterSet{}
	for _, p := range params {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends p. It returns a *oaserrors.DuplicateError if a parameter with the same
// (name, in) key is already present; the set is left unchanged in that case.
func (s *ParameterSet) Add(p *Parameter) error {
	k := p.Key()
	if _, exists := s.byKey[k]; exists {
		return &oaserrors.DuplicateError{
			Kind:    "parameter",
			Key:     k.String(),
			Message: "parameters are identified by their (name, in) combination",
		}
	}
	if s.byKey == nil {
		s.byKey = make(map[ParamKey]*Parameter)
	}
	s.keys = append(s.keys, k)
	s.byKey[k] = p
	return nil
}

// Set inserts or replaces the parameter under its key. A replaced parameter keeps
// its original position.
func (s *ParameterSet) Set(p *Parameter) {
	k := p.Key()
	if _, exists := s.byKey[k]; !exists {
		s.keys = append(s.keys, k)
	}
	if s.byKey == nil {
		s.byKey = make(map[ParamKey]*Parameter)
	}
	s.byKey[k] = p
}

// Get returns the parameter stored under k.
func (s *ParameterSet) Get(k ParamKey) (*Parameter, bool) {
	p, ok := s.byKey[k]
	return p, ok
}

// Len returns the number of parameters.
func (s *ParameterSet) Len() int {
	return len(s.keys)
}

// Keys returns the keys in insertion order.
func (s *ParameterSet) Keys() []ParamKey {
	out := make([]ParamKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values returns the parameters in insertion order.
func (s *ParameterSet) Values() []*Parameter {
	out := make([]*Parameter, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byKey[k])
	}
	return out
}

// All iterates over the set in insertion order.
func (s *ParameterSet) All() iter.Seq2[ParamKey, *Parameter] {
	return func(yield func(ParamKey, *Parameter) bool) {
		for _, k := range s.keys {
			if !yield(k, s.byKey[k]) {
				return
			}
		}
	}
}
