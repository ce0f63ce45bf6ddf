package casing

import "regexp"

// Style identifies the naming convention of an identifier.
type Style string

// Recognized case styles. StyleUnknown is returned for identifiers that
// match none of the four grammars (mixed capital runs, embedded spaces,
// leading digits, and so on).
const (
	StyleCamel   Style = "camelCase"
	StylePascal  Style = "PascalCase"
	StyleSnake   Style = "snake_case"
	StyleKebab   Style = "kebab-case"
	StyleUnknown Style = "unknown"
)

var (
	camelPattern  = regexp.MustCompile(`^[a-z]+([A-Z][a-z0-9]*)*$`)
	pascalPattern = regexp.MustCompile(`^[A-Z][a-z0-9]*([A-Z][a-z0-9]*)*$`)
	snakePattern  = regexp.MustCompile(`^[a-z]+(_[a-z0-9]+)*$`)
	kebabPattern  = regexp.MustCompile(`^[a-z]+(-[a-z0-9]+)*$`)
)

// IsCamelCase reports whether text is in camelCase style.
// Example: "nameOfVariable" -> true, "NameOfVariable" -> false
func IsCamelCase(text string) bool {
	return camelPattern.MatchString(text)
}

// IsPascalCase reports whether text is in PascalCase style.
// Example: "NameOfVariable" -> true, "name_of_variable" -> false
func IsPascalCase(text string) bool {
	return pascalPattern.MatchString(text)
}

// IsSnakeCase reports whether text is in snake_case style.
// Example: "name_of_variable" -> true, "Name_of_variable" -> false
func IsSnakeCase(text string) bool {
	return snakePattern.MatchString(text)
}

// IsKebabCase reports whether text is in kebab-case style.
// Example: "name-of-variable" -> true, "nameOfVariable" -> false
func IsKebabCase(text string) bool {
	return kebabPattern.MatchString(text)
}

// Classify returns the case style of text, checking camelCase, PascalCase,
// snake_case, and kebab-case in that order. Identifiers matching none of
// the grammars classify as StyleUnknown.
//
// Note that a single all-lowercase word satisfies both the camelCase and
// snake_case grammars; the fixed priority order makes Classify report it
// as StyleCamel.
func Classify(text string) Style {
	switch {
	case IsCamelCase(text):
		return StyleCamel
	case IsPascalCase(text):
		return StylePascal
	case IsSnakeCase(text):
		return StyleSnake
	case IsKebabCase(text):
		return StyleKebab
	}
	return StyleUnknown
}

// ValidStyles returns the convertible case styles, in classification order.
func ValidStyles() []Style {
	return []Style{StyleCamel, StylePascal, StyleSnake, StyleKebab}
}

// IsValidStyle reports whether s names a convertible case style.
// StyleUnknown is not convertible.
func IsValidStyle(s Style) bool {
	switch s {
	case StyleCamel, StylePascal, StyleSnake, StyleKebab:
		return true
	}
	return false
}
