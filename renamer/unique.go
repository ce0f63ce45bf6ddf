package renamer

import "github.com/ldecampos/namecraft/sequencer"

// UniqueName returns name if the graph does not already hold it;
// otherwise it bumps the trailing digit run (appending one when missing,
// zero-filled to pad) until a free name is found. This mirrors the
// auto-unique numbering host applications apply on node creation.
//
// Example: graph holds "box" and "box01" -> UniqueName(g, "box", 2) == "box02"
func UniqueName(g Graph, name string, pad int) string {
	candidate := name
	for g.Exists(candidate) {
		candidate = sequencer.IncrementDigits(candidate, pad)
	}
	return candidate
}
