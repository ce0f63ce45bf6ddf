// Package ncerrors provides structured error types for the namecraft library.
//
// Import path: github.com/ldecampos/namecraft/ncerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [EmptyInputError]: case conversion on input that tokenizes to zero words
//   - [FormatError]: value/text codec grammar violations
//   - [ConfigError]: invalid rename plan or option configuration
//   - [RenameError]: scene-graph rename failures
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrEmptyInput]: Matches any [EmptyInputError]
//   - [ErrFormat]: Matches any [FormatError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrRename]: Matches any [RenameError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	camel, err := casing.ToCamel(name)
//	if errors.Is(err, ncerrors.ErrEmptyInput) {
//	    // Name held no letters or digits; keep the original
//	}
//
// Extract error details with errors.As():
//
//	var fmtErr *ncerrors.FormatError
//	if errors.As(err, &fmtErr) {
//	    fmt.Printf("bad value token: %s\n", fmtErr.Input)
//	}
//
// # Error Chaining
//
// FormatError and RenameError support error chaining via the Cause field and
// Unwrap() method, so root causes remain reachable through the standard error
// chain.
package ncerrors
