package gapbuf

// FoldSlice folds fn forward over the elements with logical indices in
// [from, to]. Bounds are inclusive and defensive: indices outside the buffer
// are skipped, so a caller streaming a window needs no bounds math. No
// intermediate sequence is materialized.
func FoldSlice[A, B, T any](b Buffer[A, B], from, to int, acc T, fn func(T, A) T) T {
	for i := max(from, 0); i <= min(to, b.length-1); i++ {
		if elem, ok := b.Get(i); ok {
			acc = fn(acc, elem)
		}
	}
	return acc
}

// FoldSliceReverse folds fn over [from, to] like FoldSlice, visiting
// elements in reverse index order.
func FoldSliceReverse[A, B, T any](b Buffer[A, B], from, to int, acc T, fn func(T, A) T) T {
	for i := min(to, b.length-1); i >= max(from, 0); i-- {
		if elem, ok := b.Get(i); ok {
			acc = fn(acc, elem)
		}
	}
	return acc
}

// FoldIndexed folds fn forward over the whole buffer, passing each logical
// index alongside its element.
func FoldIndexed[A, B, T any](b Buffer[A, B], acc T, fn func(T, int, A) T) T {
	for i := 0; i < b.length; i++ {
		if elem, ok := b.Get(i); ok {
			acc = fn(acc, i, elem)
		}
	}
	return acc
}

// FoldIndexedReverse folds fn over the whole buffer in reverse index order,
// passing each logical index alongside its element.
func FoldIndexedReverse[A, B, T any](b Buffer[A, B], acc T, fn func(T, int, A) T) T {
	for i := b.length - 1; i >= 0; i-- {
		if elem, ok := b.Get(i); ok {
			acc = fn(acc, i, elem)
		}
	}
	return acc
}

// Iterator walks a sub-range of a buffer in index order.
type Iterator[A, B any] struct {
	buf  Buffer[A, B]
	idx  int
	end  int
	cur  A
	curi int
}

// Elements returns an iterator over the elements with logical indices in
// [from, to), clamped to the buffer bounds.
func (b Buffer[A, B]) Elements(from, to int) *Iterator[A, B] {
	return &Iterator[A, B]{
		buf: b,
		idx: max(from, 0),
		end: min(to, b.length),
	}
}

// All returns an iterator over every element in the buffer.
func (b Buffer[A, B]) All() *Iterator[A, B] {
	return b.Elements(0, b.length)
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *Iterator[A, B]) Next() bool {
	if it.idx >= it.end {
		return false
	}
	elem, ok := it.buf.Get(it.idx)
	if !ok {
		return false
	}
	it.cur = elem
	it.curi = it.idx
	it.idx++
	return true
}

// Elem returns the current element.
func (it *Iterator[A, B]) Elem() A {
	return it.cur
}

// Index returns the logical index of the current element.
func (it *Iterator[A, B]) Index() int {
	return it.curi
}
