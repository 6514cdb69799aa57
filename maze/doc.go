// Package maze generates random solvable grids with a recursive
// backtracking carver.
//
// What:
//
//   - Generate starts from an all-Wall grid, carves passages between
//     cells two steps apart (removing the wall between) in a uniformly
//     shuffled direction order, and finally designates two distinct
//     carved cells as Start and Goal.
//
// Why:
//
//   - Demo and test input for the search stepper: every generated grid
//     satisfies the exactly-one-Start/Goal invariant, and the carving
//     adjacency guarantees Start and Goal are connected, so a search
//     always terminates with FoundSolution.
//
// Determinism:
//
//   - WithSeed (or WithRand) locks the carve order and the Start/Goal
//     draw, making generated mazes reproducible across runs.
//
// Errors:
//
//   - ErrDimension: either dimension below the 3-cell minimum the
//     two-step carving lattice needs.
//
// Complexity: O(W×H) time and memory — each lattice cell is carved once.
package maze
