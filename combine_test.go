package future

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Run("preserves the input order", func(t *testing.T) {
		p1 := New[int]()
		p2 := New[int]()
		p3 := New[int]()
		f := All(p1.Future, p2.Future, p3.Future)

		// resolve out of order; the result slice must still follow the
		// argument order.
		p3.Resolve(3)
		p1.Resolve(1)
		p2.Resolve(2)

		vals, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, vals)
	})

	t.Run("empty input resolves immediately", func(t *testing.T) {
		f := All[int]()
		assert.Equal(t, Resolved, f.State())

		vals, err := f.Await()
		require.NoError(t, err)
		assert.Empty(t, vals)
	})

	t.Run("first rejection wins", func(t *testing.T) {
		wantErr := newStrError()
		p1 := New[int]()
		p2 := New[int]()
		f := All(p1.Future, p2.Future)

		p2.Reject(wantErr)

		// p1 is still pending, yet the combined future is already
		// rejected.
		_, err := f.Await()
		assert.Equal(t, wantErr, err)
		assert.Equal(t, Pending, p1.State())
	})

	t.Run("later rejections are ignored", func(t *testing.T) {
		first := testStrError("first")
		p1 := New[int]()
		p2 := New[int]()
		f := All(p1.Future, p2.Future)

		p1.Reject(first)
		p2.Reject(testStrError("second"))

		_, err := f.Await()
		assert.Equal(t, error(first), err)
	})

	t.Run("already settled inputs", func(t *testing.T) {
		f := All(Wrap(Val(1)), Wrap(Val(2)))

		vals, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, vals)
	})
}

func TestAny(t *testing.T) {
	t.Run("first resolution wins", func(t *testing.T) {
		p1 := New[int]()
		p2 := New[int]()
		f := Any(p1.Future, p2.Future)

		p1.Reject(newStrError())
		p2.Resolve(7)

		val, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 7, val)
	})

	t.Run("rejections do not settle while one is pending", func(t *testing.T) {
		p1 := New[int]()
		p2 := New[int]()
		f := Any(p1.Future, p2.Future)

		p1.Reject(newStrError())
		assert.Equal(t, Pending, f.State())

		p2.Resolve(1)
		val, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 1, val)
	})

	t.Run("all rejected aggregates the causes", func(t *testing.T) {
		err1 := testStrError("cause_1")
		err2 := testStrError("cause_2")
		f := Any(Wrap(Err[int](err1)), Wrap(Err[int](err2)))

		_, err := f.Await()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAggregateFailure)

		var agg *AggregateError
		require.ErrorAs(t, err, &agg)
		assert.Equal(t, []error{error(err1), error(err2)}, agg.Errors())
	})

	t.Run("empty input panics", func(t *testing.T) {
		assert.PanicsWithValue(t, emptyAnyPanicMsg, func() {
			Any[int]()
		})
	})
}

func TestReduce(t *testing.T) {
	t.Run("folds in input order", func(t *testing.T) {
		fs := []*Future[int]{
			Go(func() (int, error) { return 1, nil }),
			Go(func() (int, error) { return 2, nil }),
			Go(func() (int, error) { return 3, nil }),
		}
		f := Reduce(fs, 10, func(acc, val int) (int, error) {
			return acc + val, nil
		})

		sum, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 16, sum)
	})

	t.Run("empty input yields the initial value", func(t *testing.T) {
		f := Reduce(nil, "seed", func(acc string, val int) (string, error) {
			return acc, nil
		})

		val, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "seed", val)
	})

	t.Run("combine error rejects", func(t *testing.T) {
		wantErr := newStrError()
		fs := []*Future[int]{Wrap(Val(1)), Wrap(Val(2))}
		f := Reduce(fs, 0, func(acc, val int) (int, error) {
			return 0, wantErr
		})

		_, err := f.Await()
		assert.Equal(t, wantErr, err)
	})

	t.Run("input rejection rejects", func(t *testing.T) {
		wantErr := newStrError()
		fs := []*Future[int]{Wrap(Val(1)), Wrap(Err[int](wantErr))}

		var called bool
		f := Reduce(fs, 0, func(acc, val int) (int, error) {
			called = true
			return acc + val, nil
		})

		_, err := f.Await()
		assert.Equal(t, wantErr, err)
		assert.False(t, called)
	})

	t.Run("nil combine panics", func(t *testing.T) {
		assert.PanicsWithValue(t, nilCallbackPanicMsg, func() {
			Reduce[int, int](nil, 0, nil)
		})
	})
}

func TestMerge(t *testing.T) {
	t.Run("pairs the two values", func(t *testing.T) {
		fa := Go(func() (int, error) { return 42, nil })
		fb := Go(func() (string, error) { return "42", nil })

		pair, err := Merge(fa, fb).Await()
		require.NoError(t, err)
		assert.Equal(t, Tuple2[int, string]{First: 42, Second: "42"}, pair)
	})

	t.Run("either rejection rejects the pair", func(t *testing.T) {
		wantErr := newStrError()
		pa := New[int]()
		fb := Wrap(Err[string](wantErr))

		_, err := Merge(pa.Future, fb).Await()
		assert.Equal(t, wantErr, err)
	})
}

func TestMerge3(t *testing.T) {
	t.Run("triples the three values", func(t *testing.T) {
		fa := Wrap(Val(1))
		fb := Wrap(Val("b"))
		fc := Wrap(Val(true))

		got, err := Merge3(fa, fb, fc).Await()
		require.NoError(t, err)
		assert.Equal(t, Tuple3[int, string, bool]{First: 1, Second: "b", Third: true}, got)
	})

	t.Run("slowest input completes the triple", func(t *testing.T) {
		fa := Wrap(Val(1))
		fb := Wrap(Val("b"))
		pc := New[bool]()
		f := Merge3(fa, fb, pc.Future)

		assert.Equal(t, Pending, f.State())

		go func() {
			time.Sleep(10 * time.Millisecond)
			pc.Resolve(true)
		}()

		got, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, Tuple3[int, string, bool]{First: 1, Second: "b", Third: true}, got)
	})

	t.Run("rejection wins over partial completion", func(t *testing.T) {
		wantErr := newStrError()
		fa := Wrap(Val(1))
		pb := New[string]()
		fc := Wrap(Err[bool](wantErr))

		_, err := Merge3(fa, pb.Future, fc).Await()
		assert.Equal(t, wantErr, err)
	})
}
