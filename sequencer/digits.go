// Package sequencer extracts digit runs from identifiers and steps
// numeric or alphabetic name suffixes up and down.
//
// Import path: github.com/ldecampos/namecraft/sequencer
//
// Two independent numeral systems are supported. Digit-run arithmetic
// operates on the trailing run of decimal digits with zero-padding
// ("arm_ctrl_01" -> "arm_ctrl_02"), appending a fresh run when none
// exists. Alphabetic arithmetic treats the whole input as a base-26
// spreadsheet-column numeral ("Z" -> "AA", "AA" -> "Z").
//
// All functions are pure and safe for concurrent use.
package sequencer

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultPad is the zero-fill width used when IncrementDigits is called
// with a non-positive pad.
const DefaultPad = 2

var (
	digitRunPattern    = regexp.MustCompile(`\d+`)
	trailingRunPattern = regexp.MustCompile(`(\d+)$`)
	bracketedPattern   = regexp.MustCompile(`\[([^\]]+)\]`)
)

// DigitRuns returns every maximal run of decimal digits in text, in
// left-to-right order. Text without digits yields nil.
// Example: "name123of456variable" -> ["123", "456"]
// Example: "0name12Of34Variable56" -> ["0", "12", "34", "56"]
func DigitRuns(text string) []string {
	return digitRunPattern.FindAllString(text, -1)
}

// DigitRunAt returns the digit run at index. Negative indices count from
// the end, so -1 is the last run. The second return is false when text
// has no digit runs or index is out of range.
// Example: DigitRunAt("name_01_of_12_variable_34", 2) -> "34", true
// Example: DigitRunAt("0name12Of34Variable56", -1) -> "56", true
func DigitRunAt(text string, index int) (string, bool) {
	runs := DigitRuns(text)
	if index < 0 {
		index += len(runs)
	}
	if index < 0 || index >= len(runs) {
		return "", false
	}
	return runs[index], true
}

// FirstDigitRun returns the first digit run in text, or false when text
// has none.
// Example: "name_01_of_12" -> "01", true
func FirstDigitRun(text string) (string, bool) {
	return DigitRunAt(text, 0)
}

// LastDigitRun returns the last digit run in text, or false when text
// has none.
// Example: "name_01_of_12" -> "12", true
func LastDigitRun(text string) (string, bool) {
	return DigitRunAt(text, -1)
}

// BracketedDigitRuns returns the digit runs found inside every
// non-nested [...] pair, flattened in order of appearance. Text without
// bracketed digits yields nil.
// Example: "name_[01]_of_[12]_variable_34" -> ["01", "12"]
// Example: "0name[12Of34]Variable56" -> ["12", "34"]
// Example: "name123of456[variable]" -> nil
func BracketedDigitRuns(text string) []string {
	var runs []string
	for _, m := range bracketedPattern.FindAllStringSubmatch(text, -1) {
		runs = append(runs, DigitRuns(m[1])...)
	}
	return runs
}

// IncrementDigits increments the trailing digit run of text, zero-filling
// the result to pad digits. A non-positive pad means DefaultPad. Text
// without a trailing run gets a fresh run appended: "1" zero-filled to
// pad.
//
// Example: IncrementDigits("abc123", 0) -> "abc124"
// Example: IncrementDigits("abc99", 2) -> "abc100"
// Example: IncrementDigits("file4567", 5) -> "file04568"
// Example: IncrementDigits("test", 4) -> "test0001"
func IncrementDigits(text string, pad int) string {
	if pad <= 0 {
		pad = DefaultPad
	}
	loc := trailingRunPattern.FindStringIndex(text)
	if loc == nil {
		return text + zeroFill("1", pad)
	}
	value, err := strconv.Atoi(text[loc[0]:])
	if err != nil {
		// A trailing run too long for int; leave the name alone.
		return text
	}
	return text[:loc[0]] + zeroFill(strconv.Itoa(value+1), pad)
}

// DecrementDigits decrements the trailing digit run of text, keeping the
// run's own width. Runs at 0 or 1 are removed entirely, and text without
// a trailing run is returned unchanged.
//
// Example: DecrementDigits("item123") -> "item122"
// Example: DecrementDigits("file1") -> "file"
// Example: DecrementDigits("data0") -> "data"
// Example: DecrementDigits("hello") -> "hello"
func DecrementDigits(text string) string {
	loc := trailingRunPattern.FindStringIndex(text)
	if loc == nil {
		return text
	}
	run := text[loc[0]:]
	value, err := strconv.Atoi(run)
	if err != nil {
		return text
	}
	if value <= 1 {
		return text[:loc[0]]
	}
	return text[:loc[0]] + zeroFill(strconv.Itoa(value-1), len(run))
}

// zeroFill left-pads s with zeros to width.
func zeroFill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
