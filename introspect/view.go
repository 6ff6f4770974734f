package introspect

import (
	"net/http"
	"strings"

	"github.com/erraggy/oasmeta/internal/httputil"
)

// Capability is a set of single-item operations a view implements.
type Capability uint8

// View capabilities.
const (
	CapRetrieve Capability = 1 << iota
	CapUpdate
	CapDestroy
)

// Has reports whether every capability in other is present in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// View describes the routing facts of a view that decide whether it lists a
// collection or works on a single item.
type View struct {
	// Action is the name of the action being served, such as "list" or "retrieve".
	Action string
	// Detail is the detail flag of the action, when the action declares one.
	Detail *bool
	// Suffix is the naming suffix of the view, such as "List" or "Instance".
	Suffix string
	// Capabilities are the single-item operations the view implements.
	Capabilities Capability
}

// IsListView guesses whether path and method on view represent a list view rather
// than a detail view. Rules are applied in order and the first match wins:
//
//  1. a "list" or "create" action, a false detail flag, or the "List" suffix: true
//  2. a "retrieve", "update", "partial_update" or "destroy" action, a true detail
//     flag, or the "Instance" suffix: false
//  3. any single-item capability: false
//  4. a parameterized last path segment: false
//  5. otherwise true
//
// The method is accepted for symmetry with the other helpers and does not
// influence the result.
func IsListView(path, _ string, view View) bool {
	switch {
	case view.Action == "list" || view.Action == "create" ||
		(view.Detail != nil && !*view.Detail) || view.Suffix == "List":
		return true
	case view.Action == "retrieve" || view.Action == "update" || view.Action == "partial_update" ||
		view.Action == "destroy" || (view.Detail != nil && *view.Detail) || view.Suffix == "Instance":
		return false
	case view.Capabilities&(CapRetrieve|CapUpdate|CapDestroy) != 0:
		return false
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if strings.Contains(segments[len(segments)-1], "{") {
		return false
	}
	return true
}

// GuessResponseStatus returns the usual success status for method: 201 for post,
// 204 for delete and 200 for everything else.
func GuessResponseStatus(method string) int {
	switch strings.ToLower(method) {
	case httputil.MethodPost:
		return http.StatusCreated
	case httputil.MethodDelete:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}
