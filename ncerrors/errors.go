package ncerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrEmptyInput indicates input that tokenizes to zero words.
	ErrEmptyInput = errors.New("empty input")

	// ErrFormat indicates a malformed value token.
	ErrFormat = errors.New("format error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrRename indicates a scene-graph rename failure.
	ErrRename = errors.New("rename error")
)

// EmptyInputError reports a case-conversion call whose input produced no
// tokens, so there is no first word to seed the converted name with.
type EmptyInputError struct {
	// Op is the conversion that was attempted, e.g. "ToCamel"
	Op string
	// Input is the original text passed to the conversion
	Input string
}

// Error returns a human-readable error message.
func (e *EmptyInputError) Error() string {
	msg := "empty input"
	if e.Op != "" {
		msg += " to " + e.Op
	}
	if e.Input != "" {
		msg += fmt.Sprintf(": %q contains no words", e.Input)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// FormatError reports a value token that violates the codec grammar
// (optional leading 'M', digits, at most one 'd' separator, digits).
type FormatError struct {
	// Input is the token that failed to decode
	Input string
	// Message describes the grammar violation
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FormatError) Error() string {
	msg := "format error"
	if e.Input != "" {
		msg += fmt.Sprintf(": %q", e.Input)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FormatError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ConfigError reports an invalid rename plan or option value.
type ConfigError struct {
	// Field is the configuration field that is invalid
	Field string
	// Value is the offending value, if meaningful
	Value string
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" = %q", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// RenameError reports a failure to apply a computed rename to the scene
// graph, either because the source name is missing or the graph refused
// the operation.
type RenameError struct {
	// From is the name the rename started from
	From string
	// To is the computed target name
	To string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RenameError) Error() string {
	msg := "rename error"
	if e.From != "" {
		msg += fmt.Sprintf(": %q", e.From)
		if e.To != "" {
			msg += fmt.Sprintf(" -> %q", e.To)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RenameError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RenameError) Is(target error) bool {
	return target == ErrRename
}
