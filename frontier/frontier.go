package frontier

import (
	"github.com/katalvlaran/gridsearch/grid"
)

// listFrontier backs both uninformed strategies with one slice: Stack
// removes from the tail, Queue removes from the head. Membership testing
// is shared, which is the point of the single implementation.
type listFrontier struct {
	nodes []*Node
	lifo  bool
}

// Add appends n to the tail. O(1) amortized.
func (f *listFrontier) Add(n *Node) {
	f.nodes = append(f.nodes, n)
}

// ContainsState scans pending nodes for state equality. O(n).
func (f *listFrontier) ContainsState(s grid.State) bool {
	for _, n := range f.nodes {
		if n.State == s {
			return true
		}
	}

	return false
}

// Empty reports whether no nodes are pending. O(1).
func (f *listFrontier) Empty() bool { return len(f.nodes) == 0 }

// Remove pops from the tail (Stack) or shifts from the head (Queue).
// Panics on an empty frontier; the stepper guards this via Empty.
func (f *listFrontier) Remove() *Node {
	if len(f.nodes) == 0 {
		panic(panicEmptyRemove)
	}
	var n *Node
	if f.lifo {
		last := len(f.nodes) - 1
		n = f.nodes[last]
		f.nodes[last] = nil // release reference for GC
		f.nodes = f.nodes[:last]
	} else {
		n = f.nodes[0]
		f.nodes[0] = nil
		f.nodes = f.nodes[1:]
	}

	return n
}

// Label returns "" — uninformed strategies have no priority to display.
func (f *listFrontier) Label(*Node) string { return "" }
