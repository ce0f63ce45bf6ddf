package sequencer

// IncrementLetters increments a letter sequence the way spreadsheet
// columns advance: the last position steps forward one letter, 'Z' wraps
// to 'A' and carries left, and a sequence of all end letters grows by one
// ("Z" -> "AA", "zz" -> "aaa"). The alphabet (upper or lower) is chosen
// from the first character and the input is expected to use it uniformly;
// mixed-case input is not validated and its result is unspecified. Empty
// input is returned unchanged.
//
// Example: IncrementLetters("A") -> "B"
// Example: IncrementLetters("AZ") -> "BA"
// Example: IncrementLetters("aa") -> "ab"
func IncrementLetters(text string) string {
	if text == "" {
		return text
	}
	start, end := alphabet(text[0])

	b := []byte(text)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != end {
			b[i]++
			return string(b)
		}
		b[i] = start
	}
	// Every position carried; grow by one.
	return string(start) + string(b)
}

// DecrementLetters is the mirror of IncrementLetters: the last position
// steps back one letter, 'A' wraps to 'Z' and borrows left, and a
// sequence of all start letters shrinks by one ("AA" -> "Z"). A single
// start letter decrements to the empty string. Empty input is returned
// unchanged.
//
// Example: DecrementLetters("B") -> "A"
// Example: DecrementLetters("BA") -> "AZ"
// Example: DecrementLetters("aaa") -> "zz"
// Example: DecrementLetters("a") -> ""
func DecrementLetters(text string) string {
	if text == "" {
		return text
	}
	start, end := alphabet(text[0])

	b := []byte(text)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != start {
			b[i]--
			return string(b)
		}
		b[i] = end
	}
	// Every position borrowed; shrink by one.
	return string(b[1:])
}

// alphabet returns the bounds of the alphabet first belongs to.
func alphabet(first byte) (start, end byte) {
	if first >= 'A' && first <= 'Z' {
		return 'A', 'Z'
	}
	return 'a', 'z'
}
