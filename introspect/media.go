package introspect

import (
	"strings"

	"github.com/erraggy/oasmeta/internal/httputil"
)

// MediaTyper is implemented by request parsers and response renderers.
type MediaTyper interface {
	MediaType() string
}

// StaticMediaType is a MediaTyper for a fixed media type.
type StaticMediaType string

// MediaType implements MediaTyper.
func (m StaticMediaType) MediaType() string { return string(m) }

// Consumes returns the media types an operation accepts given its parsers. When
// every parser is a form encoding the types are returned as is; otherwise form
// encodings are dropped, since form parameters and a request body cannot be mixed.
func Consumes(parsers []MediaTyper) []string {
	types := mediaTypes(parsers)
	allForm := true
	for _, t := range types {
		if !httputil.IsFormMediaType(t) {
			allForm = false
			break
		}
	}
	if allForm {
		return types
	}

	out := types[:0]
	for _, t := range types {
		if !httputil.IsFormMediaType(t) {
			out = append(out, t)
		}
	}
	return out
}

// Produces returns the media types an operation renders, excluding HTML renderers.
func Produces(renderers []MediaTyper) []string {
	types := mediaTypes(renderers)
	out := types[:0]
	for _, t := range types {
		if !strings.Contains(t, "html") {
			out = append(out, t)
		}
	}
	return out
}

func mediaTypes(list []MediaTyper) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		if m != nil {
			out = append(out, m.MediaType())
		}
	}
	return out
}
