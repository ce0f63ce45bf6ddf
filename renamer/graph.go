package renamer

import (
	"sort"
	"sync"

	"github.com/ldecampos/namecraft/ncerrors"
)

// Graph is the scene-graph capability the renamer needs: existence
// queries and renames. Everything else about the host scene graph
// (hierarchy, transforms, attributes) is out of scope.
type Graph interface {
	// Exists reports whether a node with the given name is present.
	Exists(name string) bool
	// Rename renames the node from -> to.
	Rename(from, to string) error
}

// MemoryGraph is an in-memory Graph for tests and offline previews.
// The zero value is not usable; construct with NewMemoryGraph. Safe for
// concurrent use.
type MemoryGraph struct {
	mu    sync.RWMutex
	nodes map[string]struct{}
}

// NewMemoryGraph returns a MemoryGraph holding the given node names.
func NewMemoryGraph(names ...string) *MemoryGraph {
	g := &MemoryGraph{nodes: make(map[string]struct{}, len(names))}
	for _, name := range names {
		g.nodes[name] = struct{}{}
	}
	return g
}

// Add inserts a node name into the graph.
func (g *MemoryGraph) Add(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[name] = struct{}{}
}

// Exists reports whether name is present in the graph.
func (g *MemoryGraph) Exists(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[name]
	return ok
}

// Rename renames from -> to. Renaming a missing node or onto an existing
// name returns an *ncerrors.RenameError.
func (g *MemoryGraph) Rename(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return &ncerrors.RenameError{From: from, To: to, Message: "node does not exist"}
	}
	if from == to {
		return nil
	}
	if _, ok := g.nodes[to]; ok {
		return &ncerrors.RenameError{From: from, To: to, Message: "target name already in use"}
	}
	delete(g.nodes, from)
	g.nodes[to] = struct{}{}
	return nil
}

// Names returns the node names currently in the graph, sorted.
func (g *MemoryGraph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
