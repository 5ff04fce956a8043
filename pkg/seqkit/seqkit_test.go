package seqkit_test

import (
	"math"
	"sync"
	"testing"

	"github.com/benbjohnson/immutable"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/sugar"
	"go.llib.dev/sugar/pkg/pullitercontract"
	"go.llib.dev/sugar/pkg/seqkit"
)

func TestFromSlice_smoke(t *testing.T) {
	it := assert.MakeIt(t)

	i, err := seqkit.FromSlice([]int{10, 20, 30}, 1)
	it.Must.NoError(err)
	it.Must.Equal([]int{20, 30}, iterkit.Collect(i.Seq()))

	_, err = seqkit.FromSlice([]int{10, 20, 30}, 3)
	it.Must.ErrorIs(sugar.ErrRange, err)
}

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = testcase.Let(s, func(t *testcase.T) []string {
			var vs []string
			t.Random.Repeat(1, 7, func() {
				vs = append(vs, t.Random.String())
			})
			return vs
		})
		offset = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntN(len(values.Get(t)))
		})
	)
	act := func(t *testcase.T) (*seqkit.Iterator[string], error) {
		return seqkit.New[string](seqkit.Slice[string](values.Get(t)), offset.Get(t))
	}

	s.Then("the elements from the offset are yielded", func(t *testcase.T) {
		i, err := act(t)
		t.Must.NoError(err)
		t.Must.Equal(values.Get(t)[offset.Get(t):], iterkit.Collect(i.Seq()))
	})

	s.Then("the position starts one before the offset", func(t *testcase.T) {
		i, err := act(t)
		t.Must.NoError(err)
		t.Must.Equal(offset.Get(t)-1, i.Position())
		t.Must.True(i.Next())
		t.Must.Equal(offset.Get(t), i.Position())
	})

	s.Then("exhaustion is idempotent", func(t *testcase.T) {
		i, err := act(t)
		t.Must.NoError(err)
		iterkit.Collect(i.Seq())
		t.Random.Repeat(2, 5, func() {
			t.Must.False(i.Next())
		})
		t.Must.Equal(len(values.Get(t)), i.Position())
	})

	s.When("offset is the last index", func(s *testcase.Spec) {
		offset.Let(s, func(t *testcase.T) int {
			return len(values.Get(t)) - 1
		})

		s.Then("only the last element is yielded", func(t *testcase.T) {
			i, err := act(t)
			t.Must.NoError(err)
			vs := values.Get(t)
			t.Must.Equal([]string{vs[len(vs)-1]}, iterkit.Collect(i.Seq()))
		})
	})

	s.When("offset equals the length", func(s *testcase.Spec) {
		offset.Let(s, func(t *testcase.T) int {
			return len(values.Get(t))
		})

		s.Then("ErrRange is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrRange, err)
		})
	})

	s.When("offset is negative", func(s *testcase.Spec) {
		offset.Let(s, func(t *testcase.T) int {
			return -1 * t.Random.IntB(1, 10)
		})

		s.Then("ErrRange is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrRange, err)
		})
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		values.LetValue(s, nil)
		offset.LetValue(s, 0)

		s.Then("ErrRange is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrRange, err)
		})
	})
}

func TestNew_nilSequence(t *testing.T) {
	_, err := seqkit.New[int](nil, 0)
	assert.ErrorIs(t, sugar.ErrTypeMismatch, err)

	t.Run("nil list", func(t *testing.T) {
		var l *immutable.List[int]
		_, err := seqkit.New[int](l, 0)
		assert.ErrorIs(t, sugar.ErrTypeMismatch, err)
	})
	t.Run("nil slice is an empty sequence", func(t *testing.T) {
		_, err := seqkit.FromSlice[int](nil, 0)
		assert.ErrorIs(t, sugar.ErrRange, err)
	})
}

func TestNew_immutableList(t *testing.T) {
	s := testcase.NewSpec(t)

	n := let.IntB(s, 2, 10)
	list := testcase.Let(s, func(t *testcase.T) *immutable.List[int] {
		l := immutable.NewList[int]()
		for i := 0; i < n.Get(t); i++ {
			l = l.Append(i * 10)
		}
		return l
	})

	s.Then("an immutable list is walked like a slice", func(t *testcase.T) {
		i, err := seqkit.New[int](list.Get(t), 1)
		t.Must.NoError(err)

		var exp []int
		for j := 1; j < n.Get(t); j++ {
			exp = append(exp, j*10)
		}
		t.Must.Equal(exp, iterkit.Collect(i.Seq()))
	})

	s.Then("many iterators can read the same list concurrently", func(t *testcase.T) {
		var (
			wg      sync.WaitGroup
			m       sync.Mutex
			results [][]int
		)
		for w := 0; w < 4; w++ {
			i, err := seqkit.New[int](list.Get(t), 0)
			t.Must.NoError(err)
			wg.Add(1)
			go func() {
				defer wg.Done()
				vs := iterkit.Collect(i.Seq())
				m.Lock()
				defer m.Unlock()
				results = append(results, vs)
			}()
		}
		wg.Wait()

		var exp []int
		for j := 0; j < n.Get(t); j++ {
			exp = append(exp, j*10)
		}
		t.Must.Equal(4, len(results))
		for _, vs := range results {
			t.Must.Equal(exp, vs)
		}
	})
}

func TestOf(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		seq    = testcase.LetValue[any](s, []int{10, 20, 30})
		offset = testcase.LetValue[any](s, 0)
	)
	act := func(t *testcase.T) (*seqkit.Iterator[any], error) {
		return seqkit.Of(seq.Get(t), offset.Get(t))
	}

	s.Then("the slice elements are yielded", func(t *testcase.T) {
		i, err := act(t)
		t.Must.NoError(err)
		t.Must.Equal([]any{10, 20, 30}, iterkit.Collect(i.Seq()))
	})

	s.When("the sequence is an array", func(s *testcase.Spec) {
		seq.LetValue(s, [3]string{"a", "b", "c"})
		offset.LetValue(s, int8(2))

		s.Then("it is walked as well", func(t *testcase.T) {
			i, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal([]any{"c"}, iterkit.Collect(i.Seq()))
		})
	})

	s.When("the sequence is not an ordered collection", func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) any {
			return t.Random.SliceElement([]any{map[int]int{1: 1}, "abc", 42, nil})
		})

		s.Then("ErrTypeMismatch is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrTypeMismatch, err)
		})
	})

	s.When("offset is not an integer", func(s *testcase.Spec) {
		offset.Let(s, func(t *testcase.T) any {
			return t.Random.SliceElement([]any{"1", 1.0, nil})
		})

		s.Then("ErrTypeMismatch is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrTypeMismatch, err)
		})
	})

	s.When("offset is of any integer kind", func(s *testcase.Spec) {
		offset.Let(s, func(t *testcase.T) any {
			return t.Random.SliceElement([]any{
				int(1), int8(1), int16(1), int32(1), int64(1),
				uint(1), uint8(1), uint16(1), uint32(1), uint64(1), uintptr(1),
			})
		})

		s.Then("it is accepted", func(t *testcase.T) {
			i, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal([]any{20, 30}, iterkit.Collect(i.Seq()))
		})
	})

	s.When("offset does not fit into an int", func(s *testcase.Spec) {
		offset.LetValue(s, uint64(math.MaxUint64))

		s.Then("ErrTypeMismatch is returned instead of a wrapped negative offset", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrTypeMismatch, err)
		})
	})

	s.When("offset is out of range", func(s *testcase.Spec) {
		offset.LetValue(s, 3)

		s.Then("ErrRange is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(sugar.ErrRange, err)
		})
	})
}

func TestIterator_implementsPullIter(t *testing.T) {
	pullitercontract.Iterator[int](func(tb testing.TB) pullitercontract.Subject[int] {
		t := testcase.ToT(&tb)
		vs := []int{t.Random.Int(), t.Random.Int(), t.Random.Int(), t.Random.Int()}
		offset := t.Random.IntB(0, 2)
		i, err := seqkit.FromSlice(vs, offset)
		t.Must.NoError(err)
		return pullitercontract.Subject[int]{Iterator: i, Expected: vs[offset:]}
	}).Test(t)
}
