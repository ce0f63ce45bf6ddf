package stringutil

import "regexp"

var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// IsIdentifier checks if s contains only ASCII letters, digits, and the
// '_'/'-' delimiters.
func IsIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

var lettersRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// IsLetters checks if s contains only ASCII letters.
func IsLetters(s string) bool {
	return lettersRegex.MatchString(s)
}
