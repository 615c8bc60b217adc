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

// panic messages
const (
	nilCallbackPanicMsg = "future: the provided callback is nil"
	nilResChanPanicMsg  = "future: the provided resChan is nil"
	emptyAnyPanicMsg    = "future: Any called with no futures"
)

// Promise is a Future exposed together with the capability to resolve or
// reject it. It's handed to producer code, which must call Resolve or
// Reject exactly once; later calls are silent no-ops.
//
// All of the Future's read-side operations are available on the Promise.
type Promise[T any] struct {
	*Future[T]
}

// New returns a pending Promise.
func New[T any](opts ...Option) *Promise[T] {
	return &Promise[T]{Future: newFuture[T](opts...)}
}

// Resolve transitions the promise from Pending to Resolved with val, and
// flushes the success and completion queues.
// It reports whether this call performed the transition; it returns false,
// without any effect, when the promise is already terminal.
func (p *Promise[T]) Resolve(val T) (ok bool) {
	return p.settle(Val(val))
}

// Reject transitions the promise from Pending to Rejected with err, and
// flushes the failure and completion queues.
// The err value may be nil, for rejections without a specific cause.
// It reports whether this call performed the transition; it returns false,
// without any effect, when the promise is already terminal.
func (p *Promise[T]) Reject(err error) (ok bool) {
	return p.settle(Err[T](err))
}

// Go runs fn on the background worker executor and returns a Future for
// its outcome: Resolved with fn's value, or Rejected with its error.
// A panic inside fn is recovered and becomes a rejection with PanicError.
//
// If the calling goroutine is already a background worker, fn runs inline
// (see WorkerExecutor).
//
// It panics if fn is nil.
func Go[T any](fn func() (T, error), opts ...Option) *Future[T] {
	return GoOn(BackgroundExecutor(), fn, opts...)
}

// GoOn is like Go, but runs fn on the given executor.
func GoOn[T any](exec Executor, fn func() (T, error), opts ...Option) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	f := newFuture[T](opts...)
	exec.Do(func() {
		f.settle(runProducer(fn))
	})
	return f
}

// Resolver runs fn on the background worker executor, passing it the write
// capability of a new Future as a pair of functions. The first effective
// call to either function settles the Future; the rest are no-ops.
// A panic inside fn rejects the Future with PanicError, unless it's
// already terminal.
//
// It panics if fn is nil.
func Resolver[T any](fn func(resolve func(T), reject func(error)), opts ...Option) *Future[T] {
	if fn == nil {
		panic(nilCallbackPanicMsg)
	}
	p := New[T](opts...)
	BackgroundExecutor().Do(func() {
		defer func() {
			if v := recover(); v != nil {
				p.settle(Err[T](PanicError{V: v}))
			}
		}()
		fn(
			func(val T) { p.Resolve(val) },
			func(err error) { p.Reject(err) },
		)
	})
	return p.Future
}

// Wrap returns a Future that's already settled to res.
func Wrap[T any](res Result[T], opts ...Option) *Future[T] {
	f := newFuture[T](opts...)
	f.settle(res)
	return f
}

// Chan returns a Future that settles to the first Result received on
// resChan. Sending a nil Result, or closing the channel, rejects the
// Future with ErrUnspecified.
//
// It panics if resChan is nil.
func Chan[T any](resChan <-chan Result[T], opts ...Option) *Future[T] {
	if resChan == nil {
		panic(nilResChanPanicMsg)
	}
	f := newFuture[T](opts...)
	go func() {
		res := <-resChan
		if res == nil {
			res = Err[T](ErrUnspecified)
		}
		f.settle(res)
	}()
	return f
}
