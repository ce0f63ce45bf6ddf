package casing

// Tokenize splits text into its constituent word tokens, handling
// camelCase humps, '_'/'-'/space delimiters, digit runs, and trailing
// acronyms. Delimiters are consumed, never emitted; characters outside
// the identifier alphabet are dropped.
//
// Example: "Another_Example-Here99" -> ["Another", "Example", "Here", "99"]
// Example: "Pascal32CaseText" -> ["Pascal", "32", "Case", "Text"]
//
// The scanner tries, at each position and in order: a capitalized or
// lowercase word, an uppercase run bounded by whitespace or end of input,
// a digit run, and a letter run abutting a '_' or '-' delimiter. The first
// alternative to match wins; positions where none match are skipped. An
// uppercase run followed by a lowercase letter satisfies none of the
// alternatives, so interior acronyms lose all but their last capital
// ("ABCdef" -> ["Cdef"]), a long-standing quirk that downstream tooling
// depends on.
func Tokenize(text string) []string {
	var tokens []string
	for i := 0; i < len(text); {
		tok := matchToken(text, i)
		if tok == "" {
			i++
			continue
		}
		tokens = append(tokens, tok)
		i += len(tok)
	}
	return tokens
}

// matchToken returns the token starting at position i, or "" when no
// alternative matches there.
func matchToken(text string, i int) string {
	// Capitalized or lowercase word: one optional uppercase letter
	// followed by at least one lowercase letter.
	if isUpper(text[i]) && i+1 < len(text) && isLower(text[i+1]) {
		return text[i : i+1+runLen(text, i+1, isLower)]
	}
	if isLower(text[i]) {
		return text[i : i+runLen(text, i, isLower)]
	}

	if isUpper(text[i]) {
		n := runLen(text, i, isUpper)
		// Trailing acronym: an uppercase run bounded by whitespace or
		// end of input.
		if i+n == len(text) || isSpace(text[i+n]) {
			return text[i : i+n]
		}
		// Acronym abutting a delimiter, e.g. "ABC_def".
		n = runLen(text, i, isLetter)
		if i+n < len(text) && isDelimiter(text[i+n]) {
			return text[i : i+n]
		}
		return ""
	}

	if isDigit(text[i]) {
		return text[i : i+runLen(text, i, isDigit)]
	}

	return ""
}

// runLen returns the length of the run of bytes satisfying pred,
// starting at position i.
func runLen(text string, i int, pred func(byte) bool) int {
	n := 0
	for i+n < len(text) && pred(text[i+n]) {
		n++
	}
	return n
}

func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

func isDelimiter(c byte) bool { return c == '_' || c == '-' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
