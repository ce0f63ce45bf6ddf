// Package valuecodec encodes signed decimal values into identifier-safe
// tokens and back.
//
// Import path: github.com/ldecampos/namecraft/valuecodec
//
// Scene-graph names cannot carry '-' signs or '.' decimal points without
// breaking naming conventions, so values are spelled with a leading 'M'
// for minus and a 'd' in place of the decimal point: -0.99 becomes
// "M0d99", 12.75 becomes "12d75", and 0 stays "0".
package valuecodec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ldecampos/namecraft/ncerrors"
)

// tokenPattern is the codec grammar: optional leading 'M', a digit run,
// and at most one 'd' separating a fractional digit run.
var tokenPattern = regexp.MustCompile(`^M?\d+(d\d+)?$`)

// Encode renders value as an identifier-safe token. Negative values gain
// a leading 'M' and integral values render with no fractional part.
// Example: Encode(-5.3) -> "M5d3"
// Example: Encode(-0.99) -> "M0d99"
// Example: Encode(0) -> "0"
// Example: Encode(12.75) -> "12d75"
func Encode(value float64) string {
	sign := ""
	if value < 0 {
		sign = "M"
		value = -value
	}
	return sign + strings.ReplaceAll(strconv.FormatFloat(value, 'f', -1, 64), ".", "d")
}

// Decode parses a token produced by Encode back into its value. Tokens
// violating the grammar return an *ncerrors.FormatError.
// Example: Decode("M5d3") -> -5.3
// Example: Decode("12d75") -> 12.75
// Example: Decode("M100d01") -> -100.01
func Decode(text string) (float64, error) {
	if !tokenPattern.MatchString(text) {
		return 0, &ncerrors.FormatError{
			Input:   text,
			Message: "want optional 'M', digits, optional 'd' and digits",
		}
	}

	sign := 1.0
	if strings.HasPrefix(text, "M") {
		sign = -1
		text = text[1:]
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(text, "d", "."), 64)
	if err != nil {
		return 0, &ncerrors.FormatError{Input: text, Message: "not a decimal value", Cause: err}
	}
	return sign * value, nil
}
