package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/gridsearch/pqueue"
)

// intMin is the comparator used throughout: smaller ints come first.
func intMin(a, b int) bool { return a < b }

//----------------------------------------------------------------------------//
// Construction and Contract Tests
//----------------------------------------------------------------------------//

// TestNew_NilComparator verifies that a nil comparator panics.
func TestNew_NilComparator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(nil) did not panic")
		}
	}()
	_ = pqueue.New[int](nil)
}

// TestPop_Empty verifies that Pop on an empty queue panics.
func TestPop_Empty(t *testing.T) {
	q := pqueue.New(intMin)
	defer func() {
		if recover() == nil {
			t.Fatal("Pop on empty queue did not panic")
		}
	}()
	_ = q.Pop()
}

// TestPeek_Empty verifies that Peek on an empty queue panics.
func TestPeek_Empty(t *testing.T) {
	q := pqueue.New(intMin)
	defer func() {
		if recover() == nil {
			t.Fatal("Peek on empty queue did not panic")
		}
	}()
	_ = q.Peek()
}

//----------------------------------------------------------------------------//
// Ordering Tests
//----------------------------------------------------------------------------//

// TestPushPop_SortedDrain pushes a shuffled sequence and expects Pop to
// drain in ascending order.
func TestPushPop_SortedDrain(t *testing.T) {
	q := pqueue.New(intMin)
	values := []int{9, 3, 7, 1, 8, 2, 6, 0, 5, 4}
	for _, v := range values {
		q.Push(v)
	}
	if q.Len() != len(values) {
		t.Fatalf("Len = %d; want %d", q.Len(), len(values))
	}
	for want := 0; want < len(values); want++ {
		if got := q.Peek(); got != want {
			t.Errorf("Peek = %d; want %d", got, want)
		}
		if got := q.Pop(); got != want {
			t.Errorf("Pop = %d; want %d", got, want)
		}
	}
	if !q.Empty() {
		t.Errorf("queue not empty after full drain")
	}
}

// TestInterleaved_HeapProperty interleaves random pushes and pops and
// checks each Pop returns the minimum of what remains.
func TestInterleaved_HeapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pqueue.New(intMin)
	var mirror []int

	for i := 0; i < 2000; i++ {
		if q.Empty() || rng.Intn(3) > 0 {
			v := rng.Intn(1000)
			q.Push(v)
			mirror = append(mirror, v)
			continue
		}
		got := q.Pop()
		sort.Ints(mirror)
		want := mirror[0]
		mirror = mirror[1:]
		if got != want {
			t.Fatalf("op %d: Pop = %d; want %d", i, got, want)
		}
	}
}

// TestMaxHeap verifies that inverting the comparator yields a max-heap.
func TestMaxHeap(t *testing.T) {
	q := pqueue.New(func(a, b int) bool { return a > b })
	for _, v := range []int{2, 9, 4, 7} {
		q.Push(v)
	}
	for _, want := range []int{9, 7, 4, 2} {
		if got := q.Pop(); got != want {
			t.Errorf("Pop = %d; want %d", got, want)
		}
	}
}

//----------------------------------------------------------------------------//
// Find Tests
//----------------------------------------------------------------------------//

// TestFind scans for present and absent elements.
func TestFind(t *testing.T) {
	q := pqueue.New(intMin)
	for _, v := range []int{5, 1, 4, 2} {
		q.Push(v)
	}
	if v, ok := q.Find(func(x int) bool { return x == 4 }); !ok || v != 4 {
		t.Errorf("Find(==4) = (%d,%v); want (4,true)", v, ok)
	}
	if _, ok := q.Find(func(x int) bool { return x == 99 }); ok {
		t.Errorf("Find(==99) reported a hit on an absent element")
	}
	// Find must not disturb removal order.
	for _, want := range []int{1, 2, 4, 5} {
		if got := q.Pop(); got != want {
			t.Errorf("Pop after Find = %d; want %d", got, want)
		}
	}
}
