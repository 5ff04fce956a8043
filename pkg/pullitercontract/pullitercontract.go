// Package pullitercontract holds the behavioural contract of the single-pass pull iterators in this module.
package pullitercontract

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// PullIter is the pull iterator behaviour shared by ranges and sequence walkers.
type PullIter[T any] interface {
	Next() bool
	Value() T
	Err() error
	Close() error
	Seq() iter.Seq[T]
}

// Subject is what a contract case iterates.
// Expected must contain every value Iterator produces, in order, and at least two of them.
type Subject[T any] struct {
	Iterator PullIter[T]
	Expected []T
}

// Iterator returns the contract every single-pass pull iterator in this module has to satisfy.
func Iterator[T any](mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		sub := mk(t)
		assert.True(t, 2 <= len(sub.Expected), "the contract needs at least two expected values")
		return sub
	})

	collect := func(i PullIter[T]) []T {
		var vs []T
		for i.Next() {
			vs = append(vs, i.Value())
		}
		return vs
	}

	s.Then("Next and Value yield the expected values in order", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, sub.Expected, collect(sub.Iterator))
		assert.NoError(t, sub.Iterator.Err())
	})

	s.Then("Value is repeatable without side effects", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, sub.Iterator.Next())
		t.Random.Repeat(2, 5, func() {
			assert.Equal(t, sub.Expected[0], sub.Iterator.Value())
		})
		assert.True(t, sub.Iterator.Next())
		assert.Equal(t, sub.Expected[1], sub.Iterator.Value())
	})

	s.Then("exhaustion is idempotent", func(t *testcase.T) {
		sub := subject.Get(t)
		collect(sub.Iterator)
		t.Random.Repeat(3, 7, func() {
			assert.False(t, sub.Iterator.Next())
		})
		assert.NoError(t, sub.Iterator.Err())
	})

	s.Then("Seq shares the cursor with Next", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, sub.Iterator.Next())
		assert.Equal(t, sub.Expected[1:], iterkit.Collect(sub.Iterator.Seq()))
		assert.Empty(t, iterkit.Collect(sub.Iterator.Seq()))
	})

	s.Then("breaking out of Seq keeps the rest for Next", func(t *testcase.T) {
		sub := subject.Get(t)
		for v := range sub.Iterator.Seq() {
			assert.Equal(t, sub.Expected[0], v)
			break
		}
		assert.Equal(t, sub.Expected[1:], collect(sub.Iterator))
	})

	s.Then("Close stops the iteration", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, sub.Iterator.Next())
		assert.NoError(t, sub.Iterator.Close())
		assert.False(t, sub.Iterator.Next())
		assert.NoError(t, sub.Iterator.Err())
	})

	return s.AsSuite("PullIter")
}
