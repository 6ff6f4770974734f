package introspect

import (
	"fmt"

	"github.com/erraggy/oasmeta/internal/maputil"
	"github.com/erraggy/oasmeta/oas"
	"github.com/erraggy/oasmeta/oaserrors"
)

// ParamListToMap builds an ordered set of params keyed by (name, in). It fails
// with a *oaserrors.DuplicateError when two parameters share a key.
func ParamListToMap(params []*oas.Parameter) (*oas.ParameterSet, error) {
	for i, p := range params {
		if p == nil {
			return nil, &oaserrors.ConfigError{
				Option:  "parameters",
				Message: fmt.Sprintf("parameter %d is nil", i),
			}
		}
	}
	return oas.NewParameterSet(params...)
}

// FilterNone returns a copy of a slice or map without its nil elements, values and
// keys, keeping order and type. Other values, and collections without nil
// entries, are returned unchanged.
func FilterNone(v any) any {
	return maputil.FilterNil(v)
}
