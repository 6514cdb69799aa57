// Package search implements the step-driven state machine at the heart of
// gridsearch: one call, one node expansion, fully observable progress.
//
// What:
//
//   - Stepper owns one Grid, one Frontier, an explored-node counter, and
//     the current Outcome (Pending → Continue → FoundSolution/NoSolution).
//   - Step advances the search by exactly one frontier removal and its
//     consequent neighbor expansions, updating per-cell annotations as it
//     goes. Terminal outcomes are sticky: further Step calls return them
//     unchanged.
//   - Run drives Step to completion for callers that do not animate,
//     honoring context cancellation and an optional step budget.
//   - Path reconstructs the start→goal solution by walking parent links
//     once the goal has been found.
//
// Why:
//
//   - Animation: an external scheduler (UI loop, timer, test harness)
//     decides when each expansion happens and renders between calls. The
//     engine is passive — no internal timers, goroutines, or waiting.
//   - Determinism: given a fixed grid and strategy, every run expands the
//     same nodes in the same order.
//
// Concurrency model:
//
//   - Single-threaded and cooperative. At most one search may be active
//     per Grid; start a new one only after discarding the old Stepper and
//     calling Grid.Reset. A paused search retains frontier and grid state
//     exactly as of the last completed step and resumes on the next call.
//
// Errors:
//
//   - ErrGridNil: nil grid passed to NewStepper.
//   - grid topology sentinels (ErrNoStart etc.) surface from NewStepper
//     before any search begins, never mid-step.
//   - ErrOptionViolation: invalid option (e.g. negative step budget).
//   - ErrStepLimit: Run exhausted its budget before a terminal outcome.
//
// NoSolution and FoundSolution are normal terminal outcomes, not errors.
//
// Complexity:
//
//   - Step: O(F) for the frontier membership scans (F = frontier size),
//     plus O(log F) removal for informed strategies.
//   - A full run terminates after at most W×H expansions: the frontier is
//     bounded by the walkable cell count and no state is re-added after
//     being marked Explored.
package search
