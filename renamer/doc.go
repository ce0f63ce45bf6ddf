// Package renamer composes the namecraft string utilities against a scene
// graph: collision-free name generation and batch rename plans.
//
// Import path: github.com/ldecampos/namecraft/renamer
//
// The scene graph itself lives in the host application; this package sees
// it only through the two-method [Graph] contract (does a name exist,
// rename a node). [MemoryGraph] implements the contract in memory for
// tests and offline previews.
//
// A [Plan] is an ordered list of rename rules, typically loaded from a
// YAML file:
//
//	rules:
//	  - match: Ctrl
//	    style: snake_case
//	    suffix: ctrl
//	  - renumber: true
//	    pad: 2
//
// Preview computes the renames without touching the graph; Apply carries
// them out, bumping numeric suffixes to dodge name collisions the same
// way the host application does.
package renamer
