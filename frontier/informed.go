package frontier

import (
	"strconv"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/pqueue"
)

// priorityFn computes the removal key of a node: h for Greedy, g+h for A*.
type priorityFn func(n *Node) int

// greedyPriority orders by heuristic alone (greedy best-first).
func greedyPriority(n *Node) int { return n.Heuristic }

// astarPriority orders by path cost plus heuristic (A*).
func astarPriority(n *Node) int { return n.PathCost + n.Heuristic }

// heapFrontier backs both informed strategies with one comparator heap;
// the priority function is the only difference between Greedy and A*.
// Ties between equal-priority nodes surface in sift order — no FIFO
// guarantee, matching the priority queue's contract.
type heapFrontier struct {
	pq       *pqueue.Queue[*Node]
	priority priorityFn
}

// newHeapFrontier builds an empty informed frontier ordered by fn.
func newHeapFrontier(fn priorityFn) *heapFrontier {
	return &heapFrontier{
		pq:       pqueue.New(func(a, b *Node) bool { return fn(a) < fn(b) }),
		priority: fn,
	}
}

// Add pushes n into the heap. O(log n).
func (f *heapFrontier) Add(n *Node) { f.pq.Push(n) }

// ContainsState scans the heap for state equality. O(n).
func (f *heapFrontier) ContainsState(s grid.State) bool {
	_, ok := f.pq.Find(func(n *Node) bool { return n.State == s })

	return ok
}

// Empty reports whether no nodes are pending. O(1).
func (f *heapFrontier) Empty() bool { return f.pq.Empty() }

// Remove pops the smallest-priority node. O(log n).
// Panics on an empty frontier; the stepper guards this via Empty.
func (f *heapFrontier) Remove() *Node {
	if f.pq.Empty() {
		panic(panicEmptyRemove)
	}

	return f.pq.Pop()
}

// Label renders the node's removal priority in decimal: its h value for
// Greedy, its g+h value for A*.
func (f *heapFrontier) Label(n *Node) string {
	return strconv.Itoa(f.priority(n))
}
