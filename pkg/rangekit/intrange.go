package rangekit

import (
	"fmt"
	"iter"
)

// Int creates an integer range from start to end.
// The end is inclusive, and it can be unbounded with PosInf or NegInf.
func Int(start int, end Bound, opts ...Option) (*IntRange, error) {
	c, err := newCursor(start, end, opts)
	if err != nil {
		return nil, err
	}
	return &IntRange{c: c}, nil
}

// IntRange is a lazily evaluated, single-pass range of ints.
type IntRange struct {
	c cursor
}

func (r *IntRange) sealed() {}

// Domain is always Integer.
func (r *IntRange) Domain() Domain { return Integer }

// Start returns the first value of the range.
func (r *IntRange) Start() int {
	n, _ := r.c.start.Int()
	return n
}

// End returns the inclusive end, which may be unbounded.
func (r *IntRange) End() Bound { return r.c.end }

// Step returns the current step.
func (r *IntRange) Step() int { return r.c.step }

// SetStep changes the step of the remaining iteration.
// An invalid step is rejected and leaves the range unchanged.
func (r *IntRange) SetStep(step int) error { return r.c.setStep(step) }

// Len returns the number of values left, it reports false for an unbounded range.
func (r *IntRange) Len() (int, bool) { return r.c.remaining() }

// Next advances the range.
func (r *IntRange) Next() bool { return r.c.advance() }

// Value returns the value produced by the last successful Next call.
func (r *IntRange) Value() int { return r.c.value }

// Err is always nil.
func (r *IntRange) Err() error { return nil }

// Close exhausts the range.
func (r *IntRange) Close() error {
	r.c.done = true
	return nil
}

// Seq yields the remaining values.
// It shares the cursor with Next, so it is single use.
func (r *IntRange) Seq() iter.Seq[int] {
	return seqOf(r.Next, r.Value)
}

// String describes the range without enumerating it, since it may be infinite.
func (r *IntRange) String() string {
	return fmt.Sprintf("rangekit.IntRange{Start: %d, End: %s, Step: %d}", r.Start(), r.c.end, r.c.step)
}
