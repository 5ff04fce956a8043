package rangekit

import (
	"cmp"
	"strconv"
)

type boundKind int

const (
	finite boundKind = iota
	positiveUnbounded
	negativeUnbounded
)

// Bound is an endpoint of an integer range.
// It is either a finite value or one of the unbounded sentinels, PosInf and NegInf.
// The zero Bound equals Finite(0).
type Bound struct {
	kind  boundKind
	value int
}

var (
	// PosInf is the positive infinity sentinel, a range that ends here never terminates on its own.
	PosInf = Bound{kind: positiveUnbounded}
	// NegInf is the negative infinity sentinel.
	NegInf = Bound{kind: negativeUnbounded}
)

// Finite returns a Bound that holds n.
func Finite(n int) Bound {
	return Bound{kind: finite, value: n}
}

// IsFinite reports whether b is neither PosInf nor NegInf.
func (b Bound) IsFinite() bool { return b.kind == finite }

// Int returns the finite value of the Bound.
// It reports false for the unbounded sentinels.
func (b Bound) Int() (int, bool) {
	if b.kind != finite {
		return 0, false
	}
	return b.value, true
}

// Compare returns -1 when b is less than oth, 0 when they are equal and +1 when b is greater.
// NegInf is less than every finite value, PosInf is greater than every finite value.
func (b Bound) Compare(oth Bound) int {
	if b.kind == finite && oth.kind == finite {
		return cmp.Compare(b.value, oth.value)
	}
	return cmp.Compare(b.order(), oth.order())
}

func (b Bound) order() int {
	switch b.kind {
	case negativeUnbounded:
		return -1
	case positiveUnbounded:
		return 1
	default:
		return 0
	}
}

func (b Bound) String() string {
	switch b.kind {
	case positiveUnbounded:
		return "+inf"
	case negativeUnbounded:
		return "-inf"
	default:
		return strconv.Itoa(b.value)
	}
}
