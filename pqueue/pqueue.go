package pqueue

// Less reports whether a must come out of the queue before b.
// It must be a strict ordering: Less(a, b) and Less(b, a) never both hold.
type Less[T any] func(a, b T) bool

// panic messages for contract violations (programmer errors, assertion-level).
const (
	panicNilLess  = "pqueue: nil comparator"
	panicEmptyPop = "pqueue: Pop on empty queue"
)

// Queue is a binary heap whose root is the element that comes before all
// others under the injected comparator. The zero value is not usable;
// construct with New.
type Queue[T any] struct {
	less  Less[T]
	items []T
}

// New constructs an empty Queue ordered by less.
// Panics if less is nil — a nil comparator is a programmer error.
func New[T any](less Less[T]) *Queue[T] {
	if less == nil {
		panic(panicNilLess)
	}

	return &Queue[T]{less: less}
}

// Len returns the number of queued elements. O(1).
func (q *Queue[T]) Len() int { return len(q.items) }

// Empty reports whether the queue holds no elements. O(1).
func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

// Push adds v and restores the heap property by sift-up. O(log n).
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the root element. O(log n).
// Panics if the queue is empty; check Empty first.
func (q *Queue[T]) Pop() T {
	if len(q.items) == 0 {
		panic(panicEmptyPop)
	}
	root := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	var zero T
	q.items[last] = zero // release reference for GC
	q.items = q.items[:last]
	if last > 0 {
		q.siftDown(0)
	}

	return root
}

// Peek returns the root element without removing it. O(1).
// Panics if the queue is empty; check Empty first.
func (q *Queue[T]) Peek() T {
	if len(q.items) == 0 {
		panic(panicEmptyPop)
	}

	return q.items[0]
}

// Find scans the queue in internal (heap) order and returns the first
// element satisfying pred. The second return is false if none matches.
// O(n); intended for small queues such as search frontiers.
func (q *Queue[T]) Find(pred func(T) bool) (T, bool) {
	for _, v := range q.items {
		if pred(v) {
			return v, true
		}
	}
	var zero T

	return zero, false
}

// siftUp moves items[i] toward the root until its parent comes before it.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves items[i] toward the leaves, swapping with whichever
// child comes first, until both children come after it.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left, right := 2*i+1, 2*i+2
		first := i
		if left < n && q.less(q.items[left], q.items[first]) {
			first = left
		}
		if right < n && q.less(q.items[right], q.items[first]) {
			first = right
		}
		if first == i {
			return
		}
		q.items[i], q.items[first] = q.items[first], q.items[i]
		i = first
	}
}
