// Package scene tracks the nodes that render into layers. Layers hold a
// NodeID, never a pointer, so a label lookup can outlive the node itself
// without extending its lifetime.
package scene

import (
	"fmt"
	"sync"
)

// NodeID identifies a registered node. The zero value never resolves.
type NodeID uint64

// Node describes one producer of layer content, for diagnostics only.
type Node struct {
	Name   string
	Width  int
	Height int
}

var (
	mu     sync.RWMutex
	nextID NodeID
	nodes  = make(map[NodeID]*Node)
)

// Register adds n and returns its id.
func Register(n *Node) NodeID {
	mu.Lock()
	defer mu.Unlock()
	nextID++
	nodes[nextID] = n
	return nextID
}

// Unregister removes id. Layers still holding the id keep working; their
// labels just go empty.
func Unregister(id NodeID) {
	mu.Lock()
	defer mu.Unlock()
	delete(nodes, id)
}

// Lookup returns the node for id, if it is still registered.
func Lookup(id NodeID) (*Node, bool) {
	mu.RLock()
	defer mu.RUnlock()
	n, ok := nodes[id]
	return n, ok
}

// Label formats a diagnostic label for id, like "toolbar 256x64".
// Returns "" when the node is gone or the id is zero.
func Label(id NodeID) string {
	n, ok := Lookup(id)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %dx%d", n.Name, n.Width, n.Height)
}
