// Package rangekit provides lazily evaluated ranges over integers and single characters.
//
// # Summary
//
// A range is described by a start, an end and a step.
// Values are produced one at a time on demand,
// starting from start and advancing by step until the cursor steps past end.
// The end is inclusive, so Int(1, Finite(3)) yields 1, 2 and 3.
//
// Exactly two domains are supported, and each has its own type:
//
//   - *IntRange works on ints, its end can be unbounded with PosInf or NegInf.
//   - *CharRange works on runes, stepping through their code points.
//
// Both are single-pass pull iterators: Next advances, Value returns the current element.
// Seq exposes the same cursor as an iter.Seq, so ranging over it consumes the range.
// To start over, construct a new range.
//
// New infers the domain from its arguments, and returns the Range interface,
// which is sealed to the two types above.
package rangekit

import (
	"fmt"
	"iter"
	"math"
	"unicode/utf8"

	"go.llib.dev/frameless/port/option"

	"go.llib.dev/sugar"
	"go.llib.dev/sugar/internal/intkit"
)

// Domain tells which kind of values a range produces.
type Domain int

const (
	Integer Domain = iota + 1
	Character
)

func (d Domain) String() string {
	switch d {
	case Integer:
		return "integer"
	case Character:
		return "character"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// Range is the domain independent view of a range.
// It is implemented only by *IntRange and *CharRange,
// use a type switch to access the typed values.
type Range interface {
	// Domain returns the domain which was inferred at construction.
	Domain() Domain
	// Step returns the current step.
	Step() int
	// SetStep validates the new step against the range's start and end, and only then applies it.
	// On failure the range is left unchanged.
	SetStep(step int) error
	// Len returns how many values remain, it reports false when the range is unbounded.
	Len() (int, bool)
	// Next advances the cursor, it returns false once the range is exhausted,
	// and keeps returning false after that.
	Next() bool
	// Err is always nil, exhaustion is not an error.
	Err() error
	// Close exhausts the range.
	Close() error
	// String renders the range.
	// For a *CharRange this consumes the remaining values.
	String() string

	sealed()
}

// Option configures the construction of a range.
type Option = option.Option[config]

type config struct {
	Step    int
	HasStep bool
}

// WithStep overrides the default step.
// Without it, the step is +1 when end is greater than start, and -1 otherwise.
func WithStep(step int) Option {
	return option.Func[config](func(c *config) {
		c.Step = step
		c.HasStep = true
	})
}

// New creates a range and infers its domain from start and end.
//
// Integer-like values are all Go integer kinds and Bound,
// ±Inf float values are accepted as unbounded ends as well.
// Single-character values are strings that hold exactly one rune.
// Note that a rune literal is an int32, thus it makes an integer range.
//
// When step is nil the default step is used, otherwise it must be an integer.
func New(start, end, step any) (Range, error) {
	if isUnbounded(start) {
		return nil, sugar.ErrDomain.F("cannot start range from infinity")
	}
	var (
		sb, isIntStart  = toBound(start)
		eb, isIntEnd    = toBound(end)
		sc, isCharStart = toChar(start)
		ec, isCharEnd   = toChar(end)
	)
	var domain Domain
	switch {
	case isIntStart && isIntEnd:
		domain = Integer
	case isCharStart && isCharEnd:
		domain = Character
	default:
		return nil, sugar.ErrTypeMismatch.F("unknown range: %#v to %#v", start, end)
	}
	var opts []Option
	if step != nil {
		n, ok := intkit.FromAny(step)
		if !ok {
			return nil, sugar.ErrTypeMismatch.F("step must be an integer: %#v", step)
		}
		opts = append(opts, WithStep(n))
	}
	if domain == Character {
		return Char(sc, ec, opts...)
	}
	begin, _ := sb.Int()
	return Int(begin, eb, opts...)
}

func isUnbounded(v any) bool {
	b, ok := toBound(v)
	return ok && !b.IsFinite()
}

func toBound(v any) (Bound, bool) {
	switch v := v.(type) {
	case Bound:
		return v, true
	case float64:
		return floatBound(v)
	case float32:
		return floatBound(float64(v))
	}
	n, ok := intkit.FromAny(v)
	if !ok {
		return Bound{}, false
	}
	return Finite(n), true
}

func floatBound(f float64) (Bound, bool) {
	switch {
	case math.IsInf(f, 1):
		return PosInf, true
	case math.IsInf(f, -1):
		return NegInf, true
	default:
		return Bound{}, false
	}
}

func toChar(v any) (rune, bool) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError && s != string(utf8.RuneError) {
		return 0, false
	}
	return c, true
}

func defaultStep(start, end Bound) int {
	if 0 < end.Compare(start) {
		return 1
	}
	return -1
}

// validate is shared by construction and SetStep.
// A range where start equals end accepts any nonzero step and yields exactly one value.
func validate(start, end Bound, step int) error {
	if step == 0 {
		return sugar.ErrInvalidStep.F("step cannot be zero")
	}
	switch c := start.Compare(end); {
	case c < 0 && step < 0:
		return sugar.ErrDirection.F("increasing range with negative step (%s to %s by %d)", start, end, step)
	case 0 < c && 0 < step:
		return sugar.ErrDirection.F("decreasing range with positive step (%s to %s by %d)", start, end, step)
	}
	return nil
}

// cursor is the stepping engine behind both range types.
// Characters are stepped through their code points.
type cursor struct {
	start Bound
	end   Bound
	step  int

	next  int
	value int
	done  bool
}

func newCursor(start int, end Bound, opts []Option) (cursor, error) {
	c := option.ToConfig[config](opts)
	begin := Finite(start)
	step := defaultStep(begin, end)
	if c.HasStep {
		step = c.Step
	}
	if err := validate(begin, end, step); err != nil {
		return cursor{}, err
	}
	return cursor{start: begin, end: end, step: step, next: start}, nil
}

func (c *cursor) advance() bool {
	if c.done {
		return false
	}
	pos := Finite(c.next)
	if (0 < c.step && 0 < pos.Compare(c.end)) || (c.step < 0 && pos.Compare(c.end) < 0) {
		c.done = true
		return false
	}
	c.value = c.next
	n := c.next + c.step
	if (0 < c.step && n < c.next) || (c.step < 0 && c.next < n) {
		// the cursor can't move further without overflowing int
		c.done = true
	}
	c.next = n
	return true
}

func (c *cursor) setStep(step int) error {
	if err := validate(c.start, c.end, step); err != nil {
		return err
	}
	c.step = step
	return nil
}

// remaining counts the values left, computed over unsigned distances to avoid overflow.
func (c *cursor) remaining() (int, bool) {
	if c.done {
		return 0, true
	}
	end, ok := c.end.Int()
	if !ok {
		return 0, false
	}
	var dist, step uint
	switch {
	case 0 < c.step:
		if end < c.next {
			return 0, true
		}
		dist, step = uint(end)-uint(c.next), uint(c.step)
	default:
		if c.next < end {
			return 0, true
		}
		dist, step = uint(c.next)-uint(end), uint(-c.step)
	}
	n := dist/step + 1
	if n == 0 || math.MaxInt < n {
		return math.MaxInt, true
	}
	return int(n), true
}

func seqOf[T any](next func() bool, value func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for next() {
			if !yield(value()) {
				return
			}
		}
	}
}
