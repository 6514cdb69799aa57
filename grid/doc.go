// Package grid models a rectangular 2D maze as fixed cell topology plus
// mutable per-cell exploration annotations.
//
// What:
//
//   - Grid wraps a Height×Width board of Cells, each with an immutable
//     CellType (Space/Wall/Start/Goal) and a mutable CellState
//     (Unexplored/Explored/Frontier/SolutionPath/Unreachable).
//   - Parses the text template encoding ('#'=Wall, 'A'=Start, 'B'=Goal,
//     ' '=Space, one line per row) and serializes back to it.
//   - Enumerates walkable neighbors of a State in fixed Up/Down/Left/Right
//     order — the deterministic tie-break for uninformed search.
//   - Resets all exploration annotations between search runs.
//
// Why:
//
//   - Search engines: the topology/annotation split lets one immutable
//     board host many independent solve-and-render runs.
//   - Renderers: per-cell (type, state, label) is the full display model.
//   - Editors: cell types are set at construction or by an external
//     painter, never by the search engine.
//
// Complexity:
//
//   - Parse / String / Reset: O(W×H).
//   - Neighbors / accessors / Manhattan: O(1) (Neighbors emits ≤ 4 steps).
//   - Start / Goal: O(W×H) scan (grids are small; no index is kept).
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions below one row or column.
//   - ErrEmptyTemplate: template has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (strict policy).
//   - ErrMalformedTemplate: unrecognized template character.
//   - ErrNoStart / ErrMultipleStart: Start cell count ≠ 1.
//   - ErrNoGoal / ErrMultipleGoal: Goal cell count ≠ 1.
//
// All construction errors are surfaced synchronously, before any search
// begins; a successfully constructed Grid never raises them mid-search.
package grid
