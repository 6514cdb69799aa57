// Package frontier defines the Node record, strategy selectors, and
// sentinel errors for the frontier subpackage of
// github.com/katalvlaran/gridsearch.
package frontier

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
)

// ErrUnknownStrategy is returned by New for an unrecognized selector.
var ErrUnknownStrategy = errors.New("frontier: unknown strategy")

// panicEmptyRemove is the contract-violation message for Remove on an
// empty frontier (a caller bug, never a normal search outcome).
const panicEmptyRemove = "frontier: Remove on empty frontier"

// Node is an immutable search-tree record. Parent is a shared, read-only
// back-link used solely for path reconstruction; live nodes always form
// a tree rooted at the start node, because a state marked Explored is
// never re-expanded and so no child can point back into its ancestors.
type Node struct {
	// State is the grid coordinate this node stands for.
	State grid.State
	// Parent is the node this one was discovered from; nil for the root.
	Parent *Node
	// Action is how State was reached from Parent; ActionNone for the root.
	Action grid.Action
	// PathCost is the number of edges from the root (root = 0).
	PathCost int
	// Heuristic is the Manhattan distance from State to the goal,
	// computed once at creation.
	Heuristic int
}

// NewRoot builds the root node for a search from start toward goal.
func NewRoot(start, goal grid.State) *Node {
	return &Node{
		State:     start,
		Action:    grid.ActionNone,
		PathCost:  0,
		Heuristic: grid.Manhattan(start, goal),
	}
}

// Child builds the node reached from n by taking move m, with path cost
// n.PathCost+1 and the Manhattan heuristic toward goal.
func (n *Node) Child(m grid.Move, goal grid.State) *Node {
	return &Node{
		State:     m.To,
		Parent:    n,
		Action:    m.Action,
		PathCost:  n.PathCost + 1,
		Heuristic: grid.Manhattan(m.To, goal),
	}
}

// Strategy selects one of the four frontier removal orders.
type Strategy uint8

const (
	// StackStrategy removes the most-recently-added node first (DFS).
	StackStrategy Strategy = iota
	// QueueStrategy removes the least-recently-added node first (BFS).
	QueueStrategy
	// GreedyStrategy removes the smallest-heuristic node first.
	GreedyStrategy
	// AStarStrategy removes the smallest cost-plus-heuristic node first.
	AStarStrategy
)

// String returns the human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StackStrategy:
		return "Stack"
	case QueueStrategy:
		return "Queue"
	case GreedyStrategy:
		return "Greedy"
	case AStarStrategy:
		return "A*"
	default:
		return "Unknown"
	}
}

// Frontier is the common contract over the four strategies. At most one
// in-progress search owns a Frontier; it is created at search start and
// discarded at search end or on reset, never reused across runs.
type Frontier interface {
	// Add inserts a discovered node.
	Add(n *Node)
	// ContainsState reports whether a node with the given state is
	// already pending. O(n) linear scan by state equality.
	ContainsState(s grid.State) bool
	// Empty reports whether no nodes are pending.
	Empty() bool
	// Remove pops the highest-priority node under the strategy's order.
	// Panics if the frontier is empty; callers must check Empty first.
	Remove() *Node
	// Label renders the node's priority for display on its cell:
	// decimal h for Greedy, decimal g+h for A*, "" for Stack and Queue.
	Label(n *Node) string
}

// New constructs an empty Frontier for the chosen strategy.
// Returns ErrUnknownStrategy for a selector outside the four variants.
func New(s Strategy) (Frontier, error) {
	switch s {
	case StackStrategy:
		return &listFrontier{lifo: true}, nil
	case QueueStrategy:
		return &listFrontier{lifo: false}, nil
	case GreedyStrategy:
		return newHeapFrontier(greedyPriority), nil
	case AStarStrategy:
		return newHeapFrontier(astarPriority), nil
	default:
		return nil, ErrUnknownStrategy
	}
}
