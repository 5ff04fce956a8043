package rangekit

import (
	"iter"
	"strings"
	"unicode/utf8"

	"go.llib.dev/sugar"
)

// Char creates a character range from start to end, both inclusive.
// Stepping is done on the code points, surrogates in between are skipped.
// Both ends must be valid runes, otherwise ErrDomain is returned.
func Char(start, end rune, opts ...Option) (*CharRange, error) {
	if !utf8.ValidRune(start) || !utf8.ValidRune(end) {
		return nil, sugar.ErrDomain.F("invalid character range: %U to %U", start, end)
	}
	c, err := newCursor(int(start), Finite(int(end)), opts)
	if err != nil {
		return nil, err
	}
	return &CharRange{c: c}, nil
}

// CharRange is a lazily evaluated, single-pass range of runes.
type CharRange struct {
	c cursor
}

func (r *CharRange) sealed() {}

// Domain is always Character.
func (r *CharRange) Domain() Domain { return Character }

// Start returns the first character of the range.
func (r *CharRange) Start() rune { return rune(r.c.start.value) }

// End returns the inclusive last character.
func (r *CharRange) End() rune { return rune(r.c.end.value) }

// Step returns the current step.
func (r *CharRange) Step() int { return r.c.step }

// SetStep changes the step, an invalid step leaves the range unchanged.
func (r *CharRange) SetStep(step int) error { return r.c.setStep(step) }

// Len returns the number of characters left.
func (r *CharRange) Len() (int, bool) {
	n, _ := r.c.remaining()
	return n - surrogatesAhead(r.c.next, r.c.step, n), true
}

// Next advances the range.
// Surrogate code points (U+D800 to U+DFFF) are not characters, so they are skipped.
func (r *CharRange) Next() bool {
	for r.c.advance() {
		if !isSurrogate(r.c.value) {
			return true
		}
	}
	return false
}

// Value returns the character produced by the last successful Next call.
func (r *CharRange) Value() rune { return rune(r.c.value) }

// Err is always nil.
func (r *CharRange) Err() error { return nil }

// Close exhausts the range.
func (r *CharRange) Close() error {
	r.c.done = true
	return nil
}

// Seq yields the remaining characters.
// It shares the cursor with Next, so it is single use.
func (r *CharRange) Seq() iter.Seq[rune] {
	return seqOf(r.Next, r.Value)
}

// String concatenates the remaining characters.
// It consumes the range, a second call returns an empty string.
func (r *CharRange) String() string {
	var sb strings.Builder
	for c := range r.Seq() {
		sb.WriteRune(c)
	}
	return sb.String()
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func isSurrogate(c int) bool { return surrogateMin <= c && c <= surrogateMax }

// surrogatesAhead counts the surrogates among the next n values of the cursor.
func surrogatesAhead(next, step, n int) int {
	if n == 0 {
		return 0
	}
	var first, last int
	if 0 < step {
		first, last = ceilDiv(surrogateMin-next, step), floorDiv(surrogateMax-next, step)
	} else {
		first, last = ceilDiv(next-surrogateMax, -step), floorDiv(next-surrogateMin, -step)
	}
	first, last = max(first, 0), min(last, n-1)
	if last < first {
		return 0
	}
	return last - first + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && 0 < a {
		q++
	}
	return q
}
