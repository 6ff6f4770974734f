// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitWords breaks s into words at separators (underscore, hyphen, dot, slash,
// whitespace) and at case changes. Runs of upper-case letters stay together as an
// acronym.
// Example: "APIClient" -> ["API", "Client"]
// Example: "user_profile2Name" -> ["user", "profile2", "Name"]
func SplitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
}

// ToPascalCase converts a string to PascalCase. Acronyms keep their case.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
// Example: "APIClient" -> "APIClient"
func ToPascalCase(s string) string {
	words := SplitWords(s)
	// Casers carry state; one per call.
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first word lower-cased.
// Example: "user_profile" -> "userProfile"
// Example: "APIClient" -> "apiClient"
func ToCamelCase(s string) string {
	words := SplitWords(s)
	if len(words) == 0 {
		return ""
	}
	title := cases.Title(language.Und, cases.NoLower)
	words[0] = cases.Lower(language.Und).String(words[0])
	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}
	return strings.Join(words, "")
}

// ToSnakeCase converts a string to snake_case.
// Example: "UserProfile" -> "user_profile"
// Example: "APIClient" -> "api_client"
func ToSnakeCase(s string) string {
	return joinLower(SplitWords(s), "_")
}

// ToKebabCase converts a string to kebab-case.
// Example: "UserProfile" -> "user-profile"
func ToKebabCase(s string) string {
	return joinLower(SplitWords(s), "-")
}

func joinLower(words []string, sep string) string {
	lower := cases.Lower(language.Und)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, sep)
}
