package rangekit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Product returns the Cartesian product of lhs and rhs in left-major order:
// rhs is enumerated fully for each value of lhs.
//
// rhs is collected when lhs yields its first value, and then replayed,
// thus single-use sequences like (*CharRange).Seq are fine on the right-hand side.
//
// # WARNING
//
// An unbounded rhs never yields, as it has to be collected first.
// An unbounded lhs with a non-empty rhs yields forever.
func Product[L, R any](lhs iter.Seq[L], rhs iter.Seq[R]) iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		var (
			rvs       []R
			collected bool
		)
		for l := range lhs {
			if !collected {
				rvs = iterkit.Collect(rhs)
				collected = true
			}
			if len(rvs) == 0 {
				return
			}
			for _, r := range rvs {
				if !yield(l, r) {
					return
				}
			}
		}
	}
}
