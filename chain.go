// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package future

import "time"

// Then registers a success callback, delivered on the default callback
// executor, and returns the receiver, so side-effecting chain links can be
// stacked.
//
// If the Future is already Resolved, cb is scheduled immediately with the
// stored value. If it's already Rejected, cb is never called.
//
// It panics if cb is nil.
func (f *Future[T]) Then(cb func(val T)) *Future[T] {
	return f.ThenOn(DefaultExecutor(), cb)
}

// ThenOn is like Then, but delivers cb on the given executor.
func (f *Future[T]) ThenOn(exec Executor, cb func(val T)) *Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	f.registerSuccess(exec, cb)
	return f
}

// Fail registers a failure callback, delivered on the default callback
// executor, and returns the receiver.
//
// If the Future is already Rejected, cb is scheduled immediately with the
// stored error. If it's already Resolved, cb is never called.
//
// It panics if cb is nil.
func (f *Future[T]) Fail(cb func(err error)) *Future[T] {
	return f.FailOn(DefaultExecutor(), cb)
}

// FailOn is like Fail, but delivers cb on the given executor.
func (f *Future[T]) FailOn(exec Executor, cb func(err error)) *Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	f.registerFailure(exec, cb)
	return f
}

// Finally registers a completion callback, delivered on the default
// callback executor, and returns the receiver.
//
// The callback runs on either outcome, after the outcome-specific
// callbacks that were registered before the terminal transition.
//
// It panics if cb is nil.
func (f *Future[T]) Finally(cb func()) *Future[T] {
	return f.FinallyOn(DefaultExecutor(), cb)
}

// FinallyOn is like Finally, but delivers cb on the given executor.
func (f *Future[T]) FinallyOn(exec Executor, cb func()) *Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	f.registerCompletion(exec, cb)
	return f
}

// Timeout schedules a one-shot timer that rejects the Future with
// ErrTimeout if it's still Pending when the timer fires, and returns the
// receiver.
//
// A Future that settles first cancels the timer; whichever transition
// happens first wins, and the loser is a no-op. Calling Timeout again
// replaces a previously armed timer.
func (f *Future[T]) Timeout(d time.Duration) *Future[T] {
	f.armTimeout(d)
	return f
}

// Then returns a new Future, of possibly different value type, that
// adopts fn's outcome once f resolves: Resolved with fn's value, or
// Rejected with its error.
//
// fn runs on the default callback executor, exactly once, and only if f
// resolves. If f rejects, the new Future rejects with the same error,
// and fn never runs. A panic inside fn becomes a rejection with
// PanicError.
//
// It panics if fn is nil.
func Then[A, B any](f *Future[A], fn func(val A) (B, error)) *Future[B] {
	return ThenOn(DefaultExecutor(), f, fn)
}

// ThenOn is like Then, but runs fn on the given executor.
func ThenOn[A, B any](exec Executor, f *Future[A], fn func(val A) (B, error)) *Future[B] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	next := newFuture[B](WithLabel(f.label))
	f.registerSuccess(exec, func(val A) {
		next.settle(runProducer(func() (B, error) {
			return fn(val)
		}))
	})
	f.registerFailure(Immediate, func(err error) {
		next.settle(Err[B](err))
	})
	return next
}

// ThenFuture returns a new Future that, once f resolves, adopts the
// eventual outcome of the Future returned by fn: the nested computation is
// flattened, and a failure of either f, fn, or the inner Future rejects
// the result.
//
// fn runs on the default callback executor. A panic inside fn becomes a
// rejection with PanicError; a nil inner Future rejects with
// ErrUnspecified.
//
// It panics if fn is nil.
func ThenFuture[A, B any](f *Future[A], fn func(val A) *Future[B]) *Future[B] {
	return ThenFutureOn(DefaultExecutor(), f, fn)
}

// ThenFutureOn is like ThenFuture, but runs fn on the given executor.
func ThenFutureOn[A, B any](exec Executor, f *Future[A], fn func(val A) *Future[B]) *Future[B] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	next := newFuture[B](WithLabel(f.label))
	f.registerSuccess(exec, func(val A) {
		inner := runProducer(func() (*Future[B], error) {
			return fn(val), nil
		})
		if inner.State() == Rejected {
			next.settle(Err[B](inner.Err()))
			return
		}
		innerF := inner.Val()
		if innerF == nil {
			next.settle(Err[B](ErrUnspecified))
			return
		}
		innerF.registerSuccess(Immediate, func(val B) {
			next.settle(Val(val))
		})
		innerF.registerFailure(Immediate, func(err error) {
			next.settle(Err[B](err))
		})
	})
	f.registerFailure(Immediate, func(err error) {
		next.settle(Err[B](err))
	})
	return next
}
