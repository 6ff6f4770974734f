// Package httputil provides HTTP method names, status-code validation, and media-type helpers.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	WildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPost    = "post"
	MethodPut     = "put"
	MethodPatch   = "patch"
	MethodDelete  = "delete"
	MethodHead    = "head"
	MethodOptions = "options"
	MethodTrace   = "trace"
)

// Media types that carry form parameters rather than a request body.
const (
	MediaTypeFormURLEncoded = "application/x-www-form-urlencoded"
	MediaTypeMultipartForm  = "multipart/form-data"
)

// Wildcard boundary characters for validation
const (
	minWildcardBoundary = '1'
	maxWildcardBoundary = '5'
)

// methodNames lists the standard HTTP method names in dispatch probing order.
var methodNames = []string{
	MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions, MethodTrace,
}

// MethodNames returns the standard lower-case HTTP method names in probing order.
// The returned slice is a copy and may be modified by the caller.
func MethodNames() []string {
	out := make([]string, len(methodNames))
	copy(out, methodNames)
	return out
}

// IsMethodName reports whether name is a standard HTTP method name, ignoring case.
func IsMethodName(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range methodNames {
		if m == lower {
			return true
		}
	}
	return false
}

// ValidateStatusCode checks if a status code string is valid according to OpenAPI spec.
// Valid values are:
//   - "default" for default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) != StatusCodeLength {
		return false
	}

	if code[1] == WildcardChar && code[2] == WildcardChar {
		return code[0] >= minWildcardBoundary && code[0] <= maxWildcardBoundary
	}

	for i := range StatusCodeLength {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	statusCode, err := strconv.Atoi(code)
	return err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode
}

// IsFormMediaType reports whether mediaType is a form encoding, i.e. urlencoded or
// multipart form data. Parameters such as charset or boundary are ignored.
func IsFormMediaType(mediaType string) bool {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base = strings.ToLower(strings.TrimSpace(strings.SplitN(mediaType, ";", 2)[0]))
	}
	return base == MediaTypeFormURLEncoded || base == MediaTypeMultipartForm
}
