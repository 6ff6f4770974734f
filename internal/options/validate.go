// Package options provides shared utilities for option validation across packages.
package options

import (
	"strings"

	"github.com/erraggy/oasmeta/oaserrors"
)

// Source is one option that may or may not have been supplied.
type Source struct {
	Name string
	Set  bool
}

// ValidateExclusive ensures at most one of sources is set. When more than one is
// set it returns a *oaserrors.ConfigError for option naming the conflicting sources.
func ValidateExclusive(option string, sources ...Source) error {
	var set []string
	for _, s := range sources {
		if s.Set {
			set = append(set, s.Name)
		}
	}
	if len(set) <= 1 {
		return nil
	}
	return &oaserrors.ConfigError{
		Option:  option,
		Message: "specify only one of " + strings.Join(set, " or "),
	}
}
