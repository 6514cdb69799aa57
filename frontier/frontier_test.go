package frontier_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// node is a test helper building a standalone node at (row,col) with the
// given path cost, heuristic computed toward goal.
func node(row, col, cost int, goal grid.State) *frontier.Node {
	n := frontier.NewRoot(grid.State{Row: row, Col: col}, goal)
	n.PathCost = cost

	return n
}

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_UnknownStrategy verifies the sentinel for a bad selector.
func TestNew_UnknownStrategy(t *testing.T) {
	if _, err := frontier.New(frontier.Strategy(42)); !errors.Is(err, frontier.ErrUnknownStrategy) {
		t.Errorf("New(42) error = %v; want ErrUnknownStrategy", err)
	}
}

// TestStrategy_String covers the selector names.
func TestStrategy_String(t *testing.T) {
	cases := map[frontier.Strategy]string{
		frontier.StackStrategy:  "Stack",
		frontier.QueueStrategy:  "Queue",
		frontier.GreedyStrategy: "Greedy",
		frontier.AStarStrategy:  "A*",
		frontier.Strategy(42):   "Unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Strategy(%d).String() = %q; want %q", s, got, want)
		}
	}
}

//----------------------------------------------------------------------------//
// Node Tests
//----------------------------------------------------------------------------//

// TestNode_RootAndChild checks cost accounting, heuristics, and the
// parent back-link.
func TestNode_RootAndChild(t *testing.T) {
	goal := grid.State{Row: 2, Col: 2}
	root := frontier.NewRoot(grid.State{Row: 0, Col: 0}, goal)
	if root.Parent != nil || root.Action != grid.ActionNone {
		t.Errorf("root = %+v; want nil parent and ActionNone", root)
	}
	if root.PathCost != 0 || root.Heuristic != 4 {
		t.Errorf("root cost/h = %d/%d; want 0/4", root.PathCost, root.Heuristic)
	}

	child := root.Child(grid.Move{Action: grid.Down, To: grid.State{Row: 1, Col: 0}}, goal)
	if child.Parent != root {
		t.Error("child.Parent does not point at root")
	}
	if child.Action != grid.Down || child.PathCost != 1 || child.Heuristic != 3 {
		t.Errorf("child = %+v; want Down/cost 1/h 3", child)
	}
}

//----------------------------------------------------------------------------//
// Removal-Order Tests
//----------------------------------------------------------------------------//

// TestRemovalOrder adds the same three nodes to each strategy and checks
// the strategy-specific removal sequence.
func TestRemovalOrder(t *testing.T) {
	goal := grid.State{Row: 0, Col: 0}
	// Heuristics toward (0,0): a=6, b=2, c=4. Costs: a=1, b=9, c=2.
	a := node(3, 3, 1, goal) // h=6, g+h=7
	b := node(1, 1, 9, goal) // h=2, g+h=11
	c := node(2, 2, 2, goal) // h=4, g+h=6

	cases := []struct {
		strategy frontier.Strategy
		want     []*frontier.Node
	}{
		{frontier.StackStrategy, []*frontier.Node{c, b, a}},  // LIFO
		{frontier.QueueStrategy, []*frontier.Node{a, b, c}},  // FIFO
		{frontier.GreedyStrategy, []*frontier.Node{b, c, a}}, // by h
		{frontier.AStarStrategy, []*frontier.Node{c, a, b}},  // by g+h
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			f, err := frontier.New(tc.strategy)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			for _, n := range []*frontier.Node{a, b, c} {
				f.Add(n)
			}
			for i, want := range tc.want {
				if f.Empty() {
					t.Fatalf("Empty after %d removals; want %d nodes", i, len(tc.want))
				}
				if got := f.Remove(); got != want {
					t.Errorf("Remove()[%d] = %v; want %v", i, got.State, want.State)
				}
			}
			if !f.Empty() {
				t.Error("frontier not empty after full drain")
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Membership, Label, and Contract Tests
//----------------------------------------------------------------------------//

// TestContainsState exercises the shared linear membership scan.
func TestContainsState(t *testing.T) {
	goal := grid.State{Row: 0, Col: 0}
	for _, s := range []frontier.Strategy{
		frontier.StackStrategy, frontier.QueueStrategy,
		frontier.GreedyStrategy, frontier.AStarStrategy,
	} {
		f, err := frontier.New(s)
		if err != nil {
			t.Fatalf("New(%v) error: %v", s, err)
		}
		f.Add(node(1, 2, 0, goal))
		if !f.ContainsState(grid.State{Row: 1, Col: 2}) {
			t.Errorf("%v: ContainsState(present) = false", s)
		}
		if f.ContainsState(grid.State{Row: 2, Col: 1}) {
			t.Errorf("%v: ContainsState(absent) = true", s)
		}
	}
}

// TestLabel checks the strategy-specific priority rendering.
func TestLabel(t *testing.T) {
	goal := grid.State{Row: 0, Col: 0}
	n := node(2, 3, 4, goal) // h=5, g+h=9
	cases := []struct {
		strategy frontier.Strategy
		want     string
	}{
		{frontier.StackStrategy, ""},
		{frontier.QueueStrategy, ""},
		{frontier.GreedyStrategy, "5"},
		{frontier.AStarStrategy, "9"},
	}
	for _, tc := range cases {
		f, err := frontier.New(tc.strategy)
		if err != nil {
			t.Fatalf("New(%v) error: %v", tc.strategy, err)
		}
		if got := f.Label(n); got != tc.want {
			t.Errorf("%v: Label = %q; want %q", tc.strategy, got, tc.want)
		}
	}
}

// TestRemove_EmptyPanics verifies the assertion-level contract for all
// four strategies.
func TestRemove_EmptyPanics(t *testing.T) {
	for _, s := range []frontier.Strategy{
		frontier.StackStrategy, frontier.QueueStrategy,
		frontier.GreedyStrategy, frontier.AStarStrategy,
	} {
		t.Run(s.String(), func(t *testing.T) {
			f, err := frontier.New(s)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			defer func() {
				if recover() == nil {
					t.Error("Remove on empty frontier did not panic")
				}
			}()
			_ = f.Remove()
		})
	}
}
