// Package gapbuf provides an immutable, focus-addressable sequence container
// for backing interactive editors over large linear collections.
//
// A Buffer stores elements of one type A and exposes the single element under
// focus as a second, derived view type B. The sequence is held in three
// zones: everything before the focus, the focused element itself, and
// everything after it. Edits near the focus touch only the focus slot, while
// random reads and range extraction stay cheap regardless of where the focus
// sits.
//
// Key features:
//   - Immutable operations return new buffers; originals are never modified
//   - A caller-supplied transform pair (ToFocus/FromFocus) derives the focus
//     view and converts it back, with access to the preceding element
//   - Out-of-range indices clamp or no-op; no operation returns an error
//   - Ripple re-derives a bounded run of elements after an edit and reports
//     whether propagation finished or was cut off by the caller's window
//   - Folds and iterators stream sub-ranges without materializing them
//
// Basic usage:
//
//	buf := gapbuf.FromSlice(
//	    func(a int) int { return a },
//	    func(_ *int, v int) int { return v },
//	    []int{10, 20, 30},
//	)
//	buf = buf.FocusAt(1)
//	buf = buf.SetFocus(1, 25)
//	elem, _ := buf.Get(1) // 25
//
// Because a given buffer value is never mutated in place, independent
// versions may be read concurrently from different goroutines without
// synchronization. Refocusing across the gap linearizes the crossed span, so
// moving the focus costs O(distance moved) while cursor-adjacent operations
// stay cheap relative to the buffer's total size.
package gapbuf
