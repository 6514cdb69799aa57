package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// Stepper encapsulates the mutable state of one search run. It owns its
// Frontier exclusively; the Grid's per-cell annotations are mutated in
// place and must not be shared with another active search.
type Stepper struct {
	grid     *grid.Grid
	front    frontier.Frontier
	goal     grid.State
	opts     Options
	outcome  Outcome
	explored int
	solution *frontier.Node // goal node once found, for Path
}

// NewStepper validates the grid, builds the root node, seeds the
// frontier, marks the start cell, and returns a Stepper in the Continue
// state ready for Step calls.
//
// Validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. g must hold exactly one Start and one Goal (grid topology
//     sentinels) — surfaced here, never mid-search.
//  3. strategy must be one of the four variants (frontier.ErrUnknownStrategy).
//  4. options must be valid (ErrOptionViolation).
func NewStepper(g *grid.Grid, strategy frontier.Strategy, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	goal, err := g.Goal()
	if err != nil {
		return nil, err
	}
	f, err := frontier.New(strategy)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Stepper{
		grid:    g,
		front:   f,
		goal:    goal,
		opts:    o,
		outcome: Continue,
	}
	f.Add(frontier.NewRoot(start, goal))
	g.SetState(start, grid.Frontier)

	return s, nil
}

// Step advances the search by exactly one node expansion:
//
//  1. Empty frontier → NoSolution (terminal).
//  2. Remove one node; count it as explored.
//  3. Goal reached → mark the parent chain SolutionPath → FoundSolution
//     (terminal).
//  4. Otherwise mark the node's cell Explored.
//  5. For each walkable neighbor, in Up/Down/Left/Right order: skip
//     states already pending or already Explored; otherwise create the
//     child node, add it, label its cell, and mark it Frontier.
//
// Once terminal, further calls return the terminal outcome unchanged.
func (s *Stepper) Step() Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}
	defer func() { s.opts.OnStep(s.outcome, s.explored) }()

	// 1. Exhausted frontier is the normal failure outcome, not an error.
	if s.front.Empty() {
		s.outcome = NoSolution

		return s.outcome
	}

	// 2. One removal per step; guarded by the Empty check above.
	n := s.front.Remove()
	s.explored++

	// 3. Goal test on removal, not on discovery: informed strategies may
	// discover the goal early but must expand it at its true priority.
	if n.State == s.goal {
		s.markSolution(n)
		s.solution = n
		s.outcome = FoundSolution

		return s.outcome
	}

	// 4. Expanded.
	s.grid.SetState(n.State, grid.Explored)

	// 5. Discover neighbors in the fixed tie-break order.
	for _, m := range s.grid.Neighbors(n.State) {
		if s.front.ContainsState(m.To) || s.grid.StateAt(m.To) == grid.Explored {
			continue
		}
		child := n.Child(m, s.goal)
		s.front.Add(child)
		s.grid.SetLabel(m.To, s.front.Label(child))
		s.grid.SetState(m.To, grid.Frontier)
	}

	return s.outcome
}

// markSolution walks the parent chain from the goal node to the root,
// marking every visited cell SolutionPath.
func (s *Stepper) markSolution(n *frontier.Node) {
	for cur := n; cur != nil; cur = cur.Parent {
		s.grid.SetState(cur.State, grid.SolutionPath)
	}
}

// Outcome returns the stepper's current state-machine position.
func (s *Stepper) Outcome() Outcome { return s.outcome }

// Explored returns the number of nodes removed from the frontier so far.
// It increases monotonically, one per non-terminal Step call.
func (s *Stepper) Explored() int { return s.explored }

// Path returns the reconstructed start→goal states, or nil until the
// outcome is FoundSolution. The path length in edges equals the goal
// node's path cost.
func (s *Stepper) Path() []grid.State {
	if s.solution == nil {
		return nil
	}
	// Walk goal→start, then reverse.
	path := make([]grid.State, 0, s.solution.PathCost+1)
	for cur := s.solution; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Run drives Step until a terminal outcome, checking the configured
// context once per iteration and honoring the MaxSteps budget.
// Returns the final (or last reached) outcome; the error is non-nil only
// for cancellation or budget exhaustion — NoSolution is not an error.
func (s *Stepper) Run() (Outcome, error) {
	steps := 0
	for !s.outcome.Terminal() {
		// cancellation check (once per step)
		select {
		case <-s.opts.Ctx.Done():
			return s.outcome, s.opts.Ctx.Err()
		default:
		}

		s.Step()
		if steps++; s.opts.MaxSteps > 0 && steps >= s.opts.MaxSteps && !s.outcome.Terminal() {
			return s.outcome, fmt.Errorf("%w: %d", ErrStepLimit, s.opts.MaxSteps)
		}
	}

	return s.outcome, nil
}
