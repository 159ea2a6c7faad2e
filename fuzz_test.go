package gapbuf

import (
	"slices"
	"testing"
)

// FuzzOperations drives a random operation stream against the buffer and a
// plain slice model, checking contents, length, and zone invariants after
// every step. Each operation consumes two script bytes: an opcode and an
// argument.
func FuzzOperations(f *testing.F) {
	f.Add(5, []byte{0, 2, 1, 7, 2, 0, 3, 1})
	f.Add(0, []byte{2, 0, 2, 1, 3, 0})
	f.Add(12, []byte{0, 11, 4, 1, 4, 0, 5, 3})
	f.Add(3, []byte{1, 200, 2, 255, 0, 0, 3, 128})

	f.Fuzz(func(t *testing.T, n int, script []byte) {
		n = n % 64
		if n < 0 {
			n = -n
		}
		model := iota0(n)
		buf := intBuf(model...)

		for i := 0; i+1 < len(script); i += 2 {
			op := int(script[i]) % 6
			arg := int(script[i+1])
			idx := arg
			if len(model) > 0 {
				idx = arg % (len(model) + 1)
			}

			switch op {
			case 0: // FocusAt
				buf = buf.FocusAt(idx)

			case 1: // SetFocus
				buf = buf.SetFocus(idx, arg)
				if idx < len(model) {
					model[idx] = arg
				}

			case 2: // InsertAt
				buf = buf.InsertAt(idx, arg)
				if idx >= 0 && idx <= len(model) {
					model = slices.Insert(model, idx, arg)
				}

			case 3: // Delete
				buf = buf.Delete(idx)
				if idx >= 0 && idx < len(model) {
					model = slices.Delete(model, idx, idx+1)
				}

			case 4: // AdvanceFocus
				at, _, focused := buf.Focus()
				replace := arg%2 == 0
				buf, _ = buf.AdvanceFocus(func(v int) (int, bool) {
					return v + 1, replace
				})
				if focused && replace {
					model[at]++
				}

			case 5: // Ripple with identity transforms rewrites nothing
				buf, _ = buf.Ripple(idx, idx+4, func(prev, cur int) bool {
					return cur != prev
				})
			}

			checkInvariants(t, buf)
			if buf.Len() != len(model) {
				t.Fatalf("op %d at step %d: Len() = %d, model %d",
					op, i/2, buf.Len(), len(model))
			}
			if got := buf.Slice(0, buf.Len()); !slices.Equal(got, model) {
				t.Fatalf("op %d at step %d: contents %v, model %v", op, i/2, got, model)
			}
		}
	})
}

// FuzzRipple checks the outcome contract: a window stop is always resumable
// strictly before the last index, and resuming converges.
func FuzzRipple(f *testing.F) {
	f.Add(10, 0, 3)
	f.Add(10, 9, 20)
	f.Add(1, 0, 0)
	f.Add(0, 0, 5)

	f.Fuzz(func(t *testing.T, n, from, to int) {
		n = n % 48
		if n < 0 {
			n = -n
		}
		b := renumberBuf(iota0(n)...)

		b, outcome := b.Ripple(from, to, alwaysCont)
		checkInvariants(t, b)

		if idx, stopped := outcome.StoppedAt(); stopped {
			if idx >= n-1 {
				t.Fatalf("StoppedAt(%d) on length %d is not resumable", idx, n)
			}
			// Resuming with an unbounded window must finish.
			b, outcome = b.Ripple(idx, n, alwaysCont)
			if !outcome.Done() {
				t.Fatal("unbounded resume did not finish")
			}
			checkInvariants(t, b)
		}
	})
}
