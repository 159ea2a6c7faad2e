package gapbuf

// ToFocus derives the focus view for a stored element.
type ToFocus[A, B any] func(A) B

// FromFocus converts a focus view back into a stored element. prev is the
// element immediately before the focus, or nil when the focus is at index 0.
// The pointer is only valid for the duration of the call.
type FromFocus[A, B any] func(prev *A, view B) A

// Buffer is an immutable gap buffer over elements of type A with a single
// optional focus exposed as type B. Operations return new Buffer values; the
// original is never modified. This enables cheap version chains and
// thread-safe concurrent read access.
//
// The sequence is stored in three zones: head holds indices [0, at) while
// focused (or the whole sequence while unfocused), the focus slot holds
// index at, and tail holds indices (at, length).
type Buffer[A, B any] struct {
	head      []A
	focus     *focus[A, B]
	length    int
	toFocus   ToFocus[A, B]
	fromFocus FromFocus[A, B]
}

// focus holds the focused view together with its index and everything after
// it. The three fields only exist as a unit: a buffer is either unfocused
// (nil) or carries all of them.
type focus[A, B any] struct {
	view B
	at   int
	tail []A
}

// New creates an empty, unfocused buffer with the given transform pair. The
// transforms are retained for the buffer's lifetime and are not validated.
func New[A, B any](toFocus ToFocus[A, B], fromFocus FromFocus[A, B]) Buffer[A, B] {
	return Buffer[A, B]{toFocus: toFocus, fromFocus: fromFocus}
}

// FromSlice creates an unfocused buffer containing elems. The elements are
// copied, so mutating elems afterwards does not affect the buffer.
func FromSlice[A, B any](toFocus ToFocus[A, B], fromFocus FromFocus[A, B], elems []A) Buffer[A, B] {
	head := make([]A, len(elems))
	copy(head, elems)
	return Buffer[A, B]{
		head:      head,
		length:    len(elems),
		toFocus:   toFocus,
		fromFocus: fromFocus,
	}
}

// Len returns the total element count.
func (b Buffer[A, B]) Len() int {
	return b.length
}

// IsEmpty returns true if the buffer contains no elements.
func (b Buffer[A, B]) IsEmpty() bool {
	return b.length == 0
}

// Focus returns the focused index and its view.
// Returns ok=false if the buffer is unfocused.
func (b Buffer[A, B]) Focus() (at int, view B, ok bool) {
	if b.focus == nil {
		var zero B
		return 0, zero, false
	}
	return b.focus.at, b.focus.view, true
}

// Get returns the element at logical index idx.
// Returns ok=false if idx is outside [0, Len()).
func (b Buffer[A, B]) Get(idx int) (A, bool) {
	if idx < 0 || idx >= b.length {
		var zero A
		return zero, false
	}
	f := b.focus
	switch {
	case f == nil || idx < f.at:
		return b.head[idx], true
	case idx == f.at:
		return b.synthesize(), true
	default:
		return f.tail[idx-f.at-1], true
	}
}

// synthesize rebuilds the stored element for the focus slot by running the
// view back through fromFocus with its left context. The preceding element
// is copied so the transform cannot alias buffer storage.
func (b Buffer[A, B]) synthesize() A {
	f := b.focus
	var prev *A
	if f.at > 0 {
		p := b.head[f.at-1]
		prev = &p
	}
	return b.fromFocus(prev, f.view)
}

// Slice returns the elements with logical indices in [from, to), clamped to
// the buffer bounds. The result is freshly allocated and assembles up to
// three contributions: the head overlap, the synthesized focus element, and
// the tail overlap, in index order.
func (b Buffer[A, B]) Slice(from, to int) []A {
	if from < 0 {
		from = 0
	}
	if to > b.length {
		to = b.length
	}
	if from >= to {
		return nil
	}

	f := b.focus
	out := make([]A, 0, to-from)
	if f == nil {
		return append(out, b.head[from:to]...)
	}
	if from < f.at {
		out = append(out, b.head[from:min(to, f.at)]...)
	}
	if from <= f.at && f.at < to {
		out = append(out, b.synthesize())
	}
	if to > f.at+1 {
		lo := max(from, f.at+1)
		out = append(out, f.tail[lo-f.at-1:to-f.at-1]...)
	}
	return out
}
