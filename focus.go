package gapbuf

// FocusAt moves the focus to idx and returns the rebuilt buffer. Negative
// indices clamp to 0. Indices at or past Len() park the focus off the end:
// the result is unfocused with every element in head. Focusing the index
// that is already focused returns the buffer unchanged.
//
// Every other navigation and edit operation reduces to this rebuild.
// Refocusing linearizes only the span between the old and new focus plus the
// near zone; the zone that does not cross the gap is shared with the
// previous version. Shared backing arrays are sound because stored slices
// are never appended to or written through in place.
func (b Buffer[A, B]) FocusAt(idx int) Buffer[A, B] {
	if idx < 0 {
		idx = 0
	}
	if idx >= b.length {
		return b.defocus()
	}

	f := b.focus
	switch {
	case f == nil:
		// The whole sequence is in head; split it around idx without
		// copying.
		b.focus = &focus[A, B]{
			view: b.toFocus(b.head[idx]),
			at:   idx,
			tail: b.head[idx+1:],
		}
		b.head = b.head[:idx]

	case idx == f.at:
		return b

	case idx < f.at:
		// Moving left: the old focus and the crossed head span fold into
		// the new tail; the remaining head prefix is shared.
		elem := b.head[idx]
		tail := make([]A, 0, b.length-idx-1)
		tail = append(tail, b.head[idx+1:f.at]...)
		tail = append(tail, b.synthesize())
		tail = append(tail, f.tail...)
		b.focus = &focus[A, B]{view: b.toFocus(elem), at: idx, tail: tail}
		b.head = b.head[:idx]

	default:
		// Moving right: head, the old focus, and the crossed tail span
		// become the new head; the remaining tail suffix is shared.
		rel := idx - f.at - 1
		elem := f.tail[rel]
		head := make([]A, 0, idx)
		head = append(head, b.head...)
		head = append(head, b.synthesize())
		head = append(head, f.tail[:rel]...)
		b.focus = &focus[A, B]{view: b.toFocus(elem), at: idx, tail: f.tail[rel+1:]}
		b.head = head
	}
	return b
}

// defocus folds the focused element back into head, producing the
// all-in-head representation used for the unfocused and off-end states.
func (b Buffer[A, B]) defocus() Buffer[A, B] {
	f := b.focus
	if f == nil {
		return b
	}
	head := make([]A, 0, b.length)
	head = append(head, b.head...)
	head = append(head, b.synthesize())
	head = append(head, f.tail...)
	b.head = head
	b.focus = nil
	return b
}

// GetFocus moves the focus to idx and returns the rebuilt buffer together
// with the resulting focus view. Returns ok=false if idx was off the end and
// the buffer is therefore unfocused.
func (b Buffer[A, B]) GetFocus(idx int) (Buffer[A, B], B, bool) {
	b = b.FocusAt(idx)
	if b.focus == nil {
		var zero B
		return b, zero, false
	}
	return b, b.focus.view, true
}

// SetFocus moves the focus to idx and overwrites its view with view. The
// write targets whatever focus results from the move, so an off-end idx
// leaves the buffer unfocused and unwritten.
func (b Buffer[A, B]) SetFocus(idx int, view B) Buffer[A, B] {
	b = b.FocusAt(idx)
	if f := b.focus; f != nil {
		b.focus = &focus[A, B]{view: view, at: f.at, tail: f.tail}
	}
	return b
}

// UpdateFocus moves the focus to idx and replaces its view v with fn(v), if
// a focus exists after the move.
func (b Buffer[A, B]) UpdateFocus(idx int, fn func(B) B) Buffer[A, B] {
	b = b.FocusAt(idx)
	if f := b.focus; f != nil {
		b.focus = &focus[A, B]{view: fn(f.view), at: f.at, tail: f.tail}
	}
	return b
}

// InsertAt inserts a new element at logical index idx, shifting every
// element at or after idx one index higher, and focuses the new element with
// the given view. idx == Len() appends. Outside [0, Len()] the buffer is
// returned unchanged.
func (b Buffer[A, B]) InsertAt(idx int, view B) Buffer[A, B] {
	if idx < 0 || idx > b.length {
		return b
	}
	head := b.Slice(0, idx)
	tail := b.Slice(idx, b.length)
	b.head = head
	b.focus = &focus[A, B]{view: view, at: idx, tail: tail}
	b.length++
	return b
}

// Delete removes the element at logical index idx, shifting later indices
// down by one. The focus moves to the element now at idx, if any; deleting
// the last element leaves the focus off the end. Out-of-range indices are a
// no-op.
func (b Buffer[A, B]) Delete(idx int) Buffer[A, B] {
	if idx < 0 || idx >= b.length {
		return b
	}
	b = b.FocusAt(idx)
	f := b.focus
	if len(f.tail) == 0 {
		b.focus = nil
	} else {
		b.focus = &focus[A, B]{view: b.toFocus(f.tail[0]), at: idx, tail: f.tail[1:]}
	}
	b.length--
	return b
}

// AdvanceFocus applies next to the current focus view. A (view, true) result
// replaces the view in place without moving the focus; a false result steps
// the focus forward one index, possibly off the end. Returns ok=false, with
// the buffer unchanged, when there is no current focus.
//
// The replace-without-move branch lets a step function over nested buffers
// advance an inner buffer while holding the outer position still.
func (b Buffer[A, B]) AdvanceFocus(next func(B) (B, bool)) (Buffer[A, B], bool) {
	f := b.focus
	if f == nil {
		return b, false
	}
	if view, replaced := next(f.view); replaced {
		b.focus = &focus[A, B]{view: view, at: f.at, tail: f.tail}
		return b, true
	}
	return b.FocusAt(f.at + 1), true
}
