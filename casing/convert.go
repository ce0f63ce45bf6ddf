package casing

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ldecampos/namecraft/ncerrors"
)

// Use golang.org/x/text/cases for case folding (strings.Title is deprecated
// and strings.ToLower is not locale-safe).
var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)

	digitRunPattern = regexp.MustCompile(`\d+`)
)

// Option configures a case conversion.
type Option func(*convertConfig)

type convertConfig struct {
	stripDigits bool
}

// StripDigits removes digit runs from the converted name.
//
// For snake_case and kebab-case targets the digits are removed from the
// joined result and the remainder is converted again, so words whose
// boundary was a digit run collapse together ("var12iable" becomes
// "var_iable"). This second pass is deliberate; callers depend on it.
func StripDigits() Option {
	return func(cfg *convertConfig) {
		cfg.stripDigits = true
	}
}

func applyOptions(opts []Option) convertConfig {
	var cfg convertConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ToCamel converts text to camelCase. The first token is lowercased, every
// subsequent token has its first letter uppercased, and the tokens are
// concatenated.
// Example: "name_of_variable" -> "nameOfVariable"
// Example: "NameOfVariable" -> "nameOfVariable"
//
// Input that tokenizes to zero words returns an *ncerrors.EmptyInputError.
func ToCamel(text string, opts ...Option) (string, error) {
	cfg := applyOptions(opts)

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return "", &ncerrors.EmptyInputError{Op: "ToCamel", Input: text}
	}

	var result strings.Builder
	result.WriteString(lowerCaser.String(tokens[0]))
	for _, tok := range tokens[1:] {
		result.WriteString(CapitalizeFirst(tok))
	}

	camel := result.String()
	if cfg.stripDigits {
		camel = RemoveDigits(camel)
	}
	return camel, nil
}

// ToPascal converts text to PascalCase. Every token has its first letter
// uppercased and the tokens are concatenated.
// Example: "name_of_variable" -> "NameOfVariable"
// Example: "nameOfVariable" -> "NameOfVariable"
//
// Input that tokenizes to zero words returns an *ncerrors.EmptyInputError.
func ToPascal(text string, opts ...Option) (string, error) {
	cfg := applyOptions(opts)

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return "", &ncerrors.EmptyInputError{Op: "ToPascal", Input: text}
	}

	var result strings.Builder
	for _, tok := range tokens {
		result.WriteString(CapitalizeFirst(tok))
	}

	pascal := result.String()
	if cfg.stripDigits {
		pascal = RemoveDigits(pascal)
	}
	return pascal, nil
}

// ToSnake converts text to snake_case: every token lowercased, joined
// with underscores. Input with zero tokens yields the empty string.
// Example: "nameOfVariable" -> "name_of_variable"
// Example: "name_ofVariable" -> "name_of_variable"
func ToSnake(text string, opts ...Option) string {
	cfg := applyOptions(opts)

	tokens := Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, lowerCaser.String(tok))
	}
	snake := strings.Join(words, "_")

	if cfg.stripDigits {
		snake = ToSnake(RemoveDigits(snake))
	}
	return snake
}

// ToKebab converts text to kebab-case: every token lowercased, joined
// with hyphens. Input with zero tokens yields the empty string.
// Example: "name_ofVariable" -> "name-of-variable"
func ToKebab(text string, opts ...Option) string {
	cfg := applyOptions(opts)

	tokens := Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, lowerCaser.String(tok))
	}
	kebab := strings.Join(words, "-")

	if cfg.stripDigits {
		kebab = ToKebab(RemoveDigits(kebab))
	}
	return kebab
}

// Convert converts text to the named style. Unknown styles return an
// *ncerrors.ConfigError; StyleCamel and StylePascal propagate the empty
// input error from their conversion.
func Convert(text string, style Style, opts ...Option) (string, error) {
	switch style {
	case StyleCamel:
		return ToCamel(text, opts...)
	case StylePascal:
		return ToPascal(text, opts...)
	case StyleSnake:
		return ToSnake(text, opts...), nil
	case StyleKebab:
		return ToKebab(text, opts...), nil
	}
	return "", &ncerrors.ConfigError{
		Field:   "style",
		Value:   string(style),
		Message: "not a convertible case style",
	}
}

// CapitalizeFirst uppercases the first letter of text, leaving the rest
// untouched.
// Example: "nameOfVariable" -> "NameOfVariable"
// Example: "name of variable" -> "Name of variable"
func CapitalizeFirst(text string) string {
	if text == "" {
		return ""
	}
	return upperCaser.String(text[:1]) + text[1:]
}

// RemoveDigits removes every digit run from text.
// Example: "name_01_of_12" -> "name__of_"
func RemoveDigits(text string) string {
	return digitRunPattern.ReplaceAllString(text, "")
}

// Normalize replaces runs of non-alphanumeric characters with a single
// space.
// Example: "name.of.variable" -> "name of variable"
func Normalize(text string) string {
	return nonAlnumPattern.ReplaceAllString(text, " ")
}

var nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ReplaceSpaces replaces every space in text with the replacement string.
// Example: ReplaceSpaces("name of Variable", "_") -> "name_of_Variable"
func ReplaceSpaces(text, replacement string) string {
	return strings.ReplaceAll(text, " ", replacement)
}
