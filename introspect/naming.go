package introspect

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasmeta/internal/naming"
	"github.com/erraggy/oasmeta/oaserrors"
)

// RefNameCase selects how derived reference names are cased.
type RefNameCase string

// Reference name casings.
const (
	// RefNameCaseDefault keeps the derived name as is.
	// Example: UserProfile
	RefNameCaseDefault RefNameCase = "default"

	// RefNameCasePascal joins capitalized words. Acronyms keep their case.
	// Example: user_profile -> UserProfile
	RefNameCasePascal RefNameCase = "pascal"

	// RefNameCaseCamel is like pascal with the first word lower-cased.
	// Example: UserProfile -> userProfile
	RefNameCaseCamel RefNameCase = "camel"

	// RefNameCaseSnake joins lower-cased words with underscores.
	// Example: APIClient -> api_client
	RefNameCaseSnake RefNameCase = "snake"

	// RefNameCaseKebab joins lower-cased words with hyphens.
	// Example: UserProfile -> user-profile
	RefNameCaseKebab RefNameCase = "kebab"
)

// ParseRefNameCase parses a casing name. The empty string is the default casing.
func ParseRefNameCase(s string) (RefNameCase, error) {
	switch c := RefNameCase(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return RefNameCaseDefault, nil
	case RefNameCaseDefault, RefNameCasePascal, RefNameCaseCamel, RefNameCaseSnake, RefNameCaseKebab:
		return c, nil
	default:
		return "", &oaserrors.ConfigError{
			Option:  "ref_name_case",
			Value:   s,
			Message: fmt.Sprintf("must be one of %s, %s, %s, %s or %s", RefNameCaseDefault, RefNameCasePascal, RefNameCaseCamel, RefNameCaseSnake, RefNameCaseKebab),
		}
	}
}

// Apply converts name to the casing. Unknown casings leave name unchanged.
func (c RefNameCase) Apply(name string) string {
	switch c {
	case RefNameCasePascal:
		return naming.ToPascalCase(name)
	case RefNameCaseCamel:
		return naming.ToCamelCase(name)
	case RefNameCaseSnake:
		return naming.ToSnakeCase(name)
	case RefNameCaseKebab:
		return naming.ToKebabCase(name)
	default:
		return name
	}
}
