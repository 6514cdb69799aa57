// Package frontier holds the discovered-but-not-yet-expanded nodes of a
// grid search, behind one contract with four removal strategies.
//
// What:
//
//   - Node is an immutable search-tree record: a grid State, a shared
//     read-only back-link to its parent, the Action that reached it, its
//     path cost (edges from the root) and its Manhattan heuristic.
//   - Frontier is the common contract: Add, ContainsState, Empty, Remove,
//     Label.
//   - Four variants share two implementations: Stack (LIFO) and Queue
//     (FIFO) are one slice-backed container differing only in removal
//     end; Greedy (order by h) and A* (order by g+h) are one heap-backed
//     container differing only in comparator.
//
// Why:
//
//   - The removal strategy is the entire difference between DFS, BFS,
//     greedy best-first and A* on an unweighted grid — everything else in
//     the engine is shared.
//
// Labels:
//
//   - Label renders the node's priority for display on frontier cells:
//     the h value for Greedy, the g+h value for A*, and the empty string
//     for the uninformed strategies, which have no priority to show.
//
// Contract violations:
//
//   - Remove on an empty frontier panics. The search stepper guards this
//     by checking Empty first; hitting it indicates a caller bug.
//
// Complexity:
//
//   - Stack/Queue Add/Remove: O(1) amortized. Greedy/A*: O(log n).
//   - ContainsState: O(n) linear scan for all variants.
package frontier
