// Package heap provides a binary max-heap over a caller-supplied ordering,
// plus an in-place heap-sort. It is a standalone utility with no ties to
// the rest of the module.
package heap

// Heap is a binary max-heap. The less function defines the ordering; the
// element for which less reports false against every other element sits at
// the top.
//
// Methods with a bool second return value report whether the first value is
// meaningful: popping or peeking an empty heap yields (zero, false).
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewFromSlice heapifies data in place and returns a heap backed by it.
// The caller must not use the slice directly afterwards.
func NewFromSlice[T any](data []T, less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{data: data, less: less}
	for i := len(data)/2 - 1; i >= 0; i-- {
		h.siftDown(i, len(data))
	}
	return h
}

// Len reports the number of elements on the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Peek returns the maximum element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Pop removes and returns the maximum element.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0, last)
	}
	return top, true
}

// Sort sorts data in place into ascending order under less.
func Sort[T any](data []T, less func(a, b T) bool) {
	SortRange(data, 0, len(data), less)
}

// SortRange sorts data[start:start+n] in place, leaving the rest untouched.
func SortRange[T any](data []T, start, n int, less func(a, b T) bool) {
	seg := data[start : start+n]
	h := &Heap[T]{data: seg, less: less}
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i, n)
	}
	for end := n - 1; end > 0; end-- {
		seg[0], seg[end] = seg[end], seg[0]
		h.siftDown(0, end)
	}
}

// siftDown restores the heap property below index i, treating size as the
// heap boundary within the backing slice.
func (h *Heap[T]) siftDown(i, size int) {
	for {
		li := left(i)
		if li >= size {
			return
		}
		child := li
		if ri := right(i); ri < size && h.less(h.data[li], h.data[ri]) {
			child = ri
		}
		if !h.less(h.data[i], h.data[child]) {
			return
		}
		h.data[i], h.data[child] = h.data[child], h.data[i]
		i = child
	}
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.data[p], h.data[i]) {
			return
		}
		h.data[p], h.data[i] = h.data[i], h.data[p]
		i = p
	}
}

func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
func parent(i int) int { return (i - 1) / 2 }
