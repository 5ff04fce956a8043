// Package seqkit walks an existing finite ordered sequence lazily, from an arbitrary offset to its end.
//
// The walked sequence is owned by the caller.
// An Iterator never copies or mutates it,
// so many iterators can read the same sequence concurrently,
// as long as its owner doesn't change it meanwhile.
// Use an immutable sequence, like *immutable.List from github.com/benbjohnson/immutable, to guarantee that.
package seqkit

import (
	"iter"
	"reflect"

	"go.llib.dev/sugar"
	"go.llib.dev/sugar/internal/intkit"
)

// Sequence is a finite ordered collection with random access.
// *immutable.List[T] implements it as is.
type Sequence[T any] interface {
	Len() int
	Get(index int) T
}

// Slice adapts a slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) Get(index int) T { return s[index] }

// New returns an Iterator that starts at offset.
// The offset must be a valid index of seq.
func New[T any](seq Sequence[T], offset int) (*Iterator[T], error) {
	if isNil(seq) {
		return nil, sugar.ErrTypeMismatch.F("sequence is missing")
	}
	if offset < 0 || seq.Len() <= offset {
		return nil, sugar.ErrRange.F("start must be between 0 and %d, got %d", seq.Len()-1, offset)
	}
	return &Iterator[T]{seq: seq, pos: offset - 1}, nil
}

// isNil also catches nil pointers stored in the interface, like a nil *immutable.List[T].
func isNil[T any](seq Sequence[T]) bool {
	if seq == nil {
		return true
	}
	rv := reflect.ValueOf(seq)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// FromSlice is a shorthand for New(Slice[T](vs), offset).
func FromSlice[T any](vs []T, offset int) (*Iterator[T], error) {
	return New[T](Slice[T](vs), offset)
}

// Of is the dynamically typed counterpart of New.
// seq must be a slice or an array, offset must be of an integer kind.
func Of(seq, offset any) (*Iterator[any], error) {
	rv := reflect.ValueOf(seq)
	if seq == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, sugar.ErrTypeMismatch.F("sequence must be either a slice or an array, got %T", seq)
	}
	n, ok := intkit.FromAny(offset)
	if !ok {
		return nil, sugar.ErrTypeMismatch.F("start must be an int, got %T", offset)
	}
	return New[any](reflectSequence{V: rv}, n)
}

type reflectSequence struct{ V reflect.Value }

func (s reflectSequence) Len() int { return s.V.Len() }

func (s reflectSequence) Get(index int) any { return s.V.Index(index).Interface() }

// Iterator is a forward-only, single-pass walker over a Sequence.
type Iterator[T any] struct {
	seq    Sequence[T]
	pos    int
	value  T
	closed bool
}

// Next moves to the next element.
// Once the end of the sequence is reached, it keeps returning false.
func (i *Iterator[T]) Next() bool {
	if i.closed {
		return false
	}
	length := i.seq.Len()
	if i.pos < length {
		i.pos++
	}
	if length <= i.pos {
		return false
	}
	i.value = i.seq.Get(i.pos)
	return true
}

func (i *Iterator[T]) Value() T { return i.value }

func (i *Iterator[T]) Err() error { return nil }

func (i *Iterator[T]) Close() error {
	i.closed = true
	return nil
}

// Position is the index of the current element.
// Before the first Next, it is offset-1.
func (i *Iterator[T]) Position() int { return i.pos }

// Seq yields the remaining elements through the same cursor, so it is single use.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}
