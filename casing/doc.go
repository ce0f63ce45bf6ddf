// Package casing detects and converts the case style of identifiers.
//
// Import path: github.com/ldecampos/namecraft/casing
//
// The package recognizes four case styles (camelCase, PascalCase,
// snake_case, and kebab-case) and converts identifiers between them by
// splitting the input into word tokens and reassembling. Tokenization
// understands camelCase humps, '_'/'-'/space delimiters, digit runs, and
// trailing acronyms, so mixed-convention names such as
// "Another_Example-Here99" split cleanly into their words.
//
// Classify an identifier:
//
//	style := casing.Classify("nameOfVariable") // casing.StyleCamel
//
// Convert between styles:
//
//	snake := casing.ToSnake("nameOfVariable") // "name_of_variable"
//	camel, err := casing.ToCamel("name_of_variable") // "nameOfVariable"
//
// Conversions accept the StripDigits option, which removes digit runs
// from the converted name:
//
//	clean := casing.ToSnake("name-of-variable_32", casing.StripDigits())
//	// "name_of_variable"
//
// All functions are pure and safe for concurrent use. Inputs are expected
// to be ASCII letters, digits, and the '_'/'-' delimiters; other characters
// are dropped during tokenization rather than rejected.
package casing
