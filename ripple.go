package gapbuf

// RippleOutcome reports how a Ripple pass ended. The two states are
// distinct: Done means propagation is provably finished (the predicate
// declined or the sequence ran out), while StoppedAt means the pass was
// merely truncated by the caller's window and should be resumed from the
// reported index.
type RippleOutcome struct {
	index   int
	stopped bool
}

// RippleDone is the outcome of a finished propagation.
func RippleDone() RippleOutcome {
	return RippleOutcome{}
}

// RippleStoppedAt is the outcome of a propagation truncated by its window,
// resumable from idx.
func RippleStoppedAt(idx int) RippleOutcome {
	return RippleOutcome{index: idx, stopped: true}
}

// Done reports whether propagation finished.
func (o RippleOutcome) Done() bool {
	return !o.stopped
}

// StoppedAt returns the index to resume from.
// Returns ok=false if the pass finished instead.
func (o RippleOutcome) StoppedAt() (int, bool) {
	return o.index, o.stopped
}

// Ripple re-derives the contiguous run of elements after from, walking
// forward at most to-from elements. Each element cur is recomputed as
// fromFocus(prev, toFocus(cur)), where prev is the already-settled element
// before it, then becomes prev for the next step. The walk stops when cont
// returns false (the run has stabilized), when the sequence ends, or when
// the window bound is reached; only the window stop yields a resumable
// StoppedAt outcome.
//
// Focusing from off the end returns the buffer unchanged with a Done
// outcome. A window stop on the final index collapses to Done, since no
// work can remain beyond it.
func (b Buffer[A, B]) Ripple(from, to int, cont func(prev, cur A) bool) (Buffer[A, B], RippleOutcome) {
	b = b.FocusAt(from)
	f := b.focus
	if f == nil {
		return b, RippleDone()
	}
	from = f.at // FocusAt may have clamped a negative index

	prev := b.synthesize()
	limit := to - from
	tail := f.tail

	step := 0
	stopped := false
	for {
		if step >= len(tail) {
			break
		}
		if step >= limit {
			stopped = true
			break
		}
		if !cont(prev, tail[step]) {
			break
		}
		next := b.fromFocus(&prev, b.toFocus(tail[step]))
		if step == 0 {
			// First write: clone so the previous version keeps its tail.
			tail = make([]A, len(f.tail))
			copy(tail, f.tail)
		}
		tail[step] = next
		prev = next
		step++
	}

	if step > 0 {
		b.focus = &focus[A, B]{view: f.view, at: f.at, tail: tail}
	}
	if !stopped || from+step >= b.length-1 {
		return b, RippleDone()
	}
	return b, RippleStoppedAt(from + step)
}
