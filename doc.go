// Package namecraft provides string-naming utilities for scene-graph node
// names: case-style detection and conversion, numeric and alphabetic
// suffix sequencing, and a value/text token codec.
//
// namecraft grew out of rigging tooling where node names carry structured
// information (case style, index suffixes, bracketed indices, encoded
// values) and scripts constantly convert between conventions. Every
// function in the library is a pure computation over plain strings; the
// host scene graph is reached only through the small renamer.Graph
// contract, never directly.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - casing: detect case styles and convert identifiers between
//     camelCase, PascalCase, snake_case, and kebab-case
//   - sequencer: extract digit runs and increment/decrement numeric or
//     alphabetic name suffixes
//   - valuecodec: encode signed decimal values into identifier-safe
//     tokens and back
//   - renamer: compose the above against a scene graph, with batch
//     rename plans and collision-free name generation
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/ldecampos/namecraft
//
// # Quick Start
//
// Convert an identifier between case styles:
//
//	import "github.com/ldecampos/namecraft/casing"
//
//	snake := casing.ToSnake("nameOfVariable")
//	fmt.Println(snake) // name_of_variable
//
// Increment a name's numeric suffix:
//
//	import "github.com/ldecampos/namecraft/sequencer"
//
//	next := sequencer.IncrementDigits("arm_ctrl_01", 0)
//	fmt.Println(next) // arm_ctrl_02
//
// Preview a batch rename without touching the scene:
//
//	import "github.com/ldecampos/namecraft/renamer"
//
//	plan := renamer.Plan{Rules: []renamer.Rule{{Style: casing.StyleSnake}}}
//	renames, err := plan.Preview([]string{"leftArmCtrl"})
//
// # Error Handling
//
// Structured errors live in the ncerrors package and support errors.Is and
// errors.As; see that package's documentation for the taxonomy.
package namecraft
