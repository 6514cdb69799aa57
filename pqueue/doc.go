// Package pqueue implements a generic binary heap ordered by an injected
// strict "comes before" comparator.
//
// What:
//
//   - Queue[T] keeps the element for which less(root, x) holds for every
//     other element x at the root.
//   - Push restores the heap property by sift-up; Pop swaps the last
//     element to the root and sifts down.
//   - Find performs a linear scan with a caller predicate — an O(n)
//     membership test, accepted because typical frontiers are small.
//
// Why:
//
//   - Informed search frontiers: Greedy (order by h) and A* (order by
//     g+h) differ only in the comparator they inject.
//   - Any small priority-ordered workload where a full indexed heap is
//     overkill.
//
// Ordering guarantees:
//
//   - For every non-root element e with parent p, !less(e, p) holds after
//     each operation.
//   - No stability among equal-priority elements: ties surface in
//     whatever order push sequence and sift mechanics produce. Do not
//     assume FIFO among ties.
//
// Contract violations:
//
//   - Pop and Peek on an empty queue panic. Callers must check Empty
//     first; this is a programmer error, not a recoverable condition.
//
// Complexity:
//
//   - Push / Pop: O(log n). Peek / Len / Empty: O(1). Find: O(n).
package pqueue
