package future

import (
	"go.uber.org/atomic"
)

// Tuple2 is the value of a Future returned by Merge.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the value of a Future returned by Merge3.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// All returns a Future that resolves once every input Future resolves,
// with the values in input order, independent of completion order.
// It rejects with the first error observed from any input, without waiting
// for the rest. An empty input resolves immediately with an empty slice.
//
// The aggregate settles exactly once even when inputs complete
// concurrently; the per-input callbacks share the remaining-count and the
// aggregate's own single-fire transition.
func All[T any](fs ...*Future[T]) *Future[[]T] {
	if len(fs) == 0 {
		return Wrap(Val([]T{}))
	}

	next := newFuture[[]T]()
	vals := make([]T, len(fs))
	pending := atomic.NewInt32(int32(len(fs)))

	for i, f := range fs {
		i, f := i, f
		f.registerSuccess(Immediate, func(val T) {
			vals[i] = val
			if pending.Dec() == 0 {
				next.settle(Val(vals))
			}
		})
		f.registerFailure(Immediate, func(err error) {
			next.settle(Err[[]T](err))
		})
	}
	return next
}

// Any returns a Future that resolves with the value of whichever input
// resolves first, and rejects only if every input rejects. The rejection
// carries an AggregateError combining the individual causes, matching
// ErrAggregateFailure through errors.Is.
//
// Calling Any with no futures is a contract violation, and panics: with no
// inputs there's no possible result.
func Any[T any](fs ...*Future[T]) *Future[T] {
	if len(fs) == 0 {
		panic(emptyAnyPanicMsg)
	}

	next := newFuture[T]()
	errs := make([]error, len(fs))
	pending := atomic.NewInt32(int32(len(fs)))

	for i, f := range fs {
		i, f := i, f
		f.registerSuccess(Immediate, func(val T) {
			next.settle(Val(val))
		})
		f.registerFailure(Immediate, func(err error) {
			errs[i] = err
			// only rejections count down, so reaching zero means every
			// input rejected.
			if pending.Dec() == 0 {
				next.settle(Err[T](newAggregateError(errs)))
			}
		})
	}
	return next
}

// Reduce waits for all input Futures like All, then folds combine over
// the resolved values left-to-right, in input order, starting from
// initial. The fold runs on the background worker executor.
// A rejection of any input, or an error or panic from combine, rejects
// the result.
//
// It panics if combine is nil.
func Reduce[T, B any](fs []*Future[T], initial B, combine func(acc B, val T) (B, error)) *Future[B] {
	if combine == nil {
		panic(nilCallbackPanicMsg)
	}
	return ThenOn(BackgroundExecutor(), All(fs...), func(vals []T) (B, error) {
		acc := initial
		for _, val := range vals {
			var err error
			acc, err = combine(acc, val)
			if err != nil {
				return acc, err
			}
		}
		return acc, nil
	})
}

// Merge returns a Future that resolves with the pair of both inputs'
// values once both resolve, the tuple fields matching argument order, and
// rejects with the first error observed from either input.
func Merge[A, B any](fa *Future[A], fb *Future[B]) *Future[Tuple2[A, B]] {
	next := newFuture[Tuple2[A, B]]()
	var t Tuple2[A, B]
	pending := atomic.NewInt32(2)

	reject := func(err error) {
		next.settle(Err[Tuple2[A, B]](err))
	}

	fa.registerSuccess(Immediate, func(val A) {
		t.First = val
		if pending.Dec() == 0 {
			next.settle(Val(t))
		}
	})
	fa.registerFailure(Immediate, reject)

	fb.registerSuccess(Immediate, func(val B) {
		t.Second = val
		if pending.Dec() == 0 {
			next.settle(Val(t))
		}
	})
	fb.registerFailure(Immediate, reject)

	return next
}

// Merge3 is the 3-ary variant of Merge.
func Merge3[A, B, C any](fa *Future[A], fb *Future[B], fc *Future[C]) *Future[Tuple3[A, B, C]] {
	next := newFuture[Tuple3[A, B, C]]()
	var t Tuple3[A, B, C]
	pending := atomic.NewInt32(3)

	reject := func(err error) {
		next.settle(Err[Tuple3[A, B, C]](err))
	}

	fa.registerSuccess(Immediate, func(val A) {
		t.First = val
		if pending.Dec() == 0 {
			next.settle(Val(t))
		}
	})
	fa.registerFailure(Immediate, reject)

	fb.registerSuccess(Immediate, func(val B) {
		t.Second = val
		if pending.Dec() == 0 {
			next.settle(Val(t))
		}
	})
	fb.registerFailure(Immediate, reject)

	fc.registerSuccess(Immediate, func(val C) {
		t.Third = val
		if pending.Dec() == 0 {
			next.settle(Val(t))
		}
	})
	fc.registerFailure(Immediate, reject)

	return next
}
