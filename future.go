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

import (
	"sync"
	"time"
)

// Future is a single-assignment container for a value that will become
// available (Resolved) or fail (Rejected) exactly once.
//
// A Future is created Pending and transitions to a terminal state through
// exactly one effective resolve or reject call; later calls are silent
// no-ops. Continuations registered while Pending are queued in FIFO order
// and flushed on the terminal transition; continuations registered after
// it are scheduled immediately with the stored outcome.
//
// All methods are safe for concurrent use by multiple goroutines, on the
// same Future value.
//
// The zero value is not usable; obtain Future values from the package's
// constructors or from the chaining operations.
type Future[T any] struct {
	label string

	// mu guards res, the three callback queues, and the timer handle.
	// every mutation of those goes through this one critical section.
	mu    sync.Mutex
	res   Result[T] // nil while pending, immutable once set
	timer *time.Timer

	onSuccess    []successEntry[T]
	onFailure    []failureEntry
	onCompletion []completionEntry

	// done is closed exactly once, on the terminal transition, while mu is
	// held. It's the latch Wait, Done and Await block on, kept separate
	// from the callback mechanism.
	done chan struct{}
}

// Option configures a Future at construction.
type Option func(*options)

type options struct {
	label string
}

// WithLabel attaches a diagnostic label to the Future. The label shows up
// in the package's debug logs and has no semantic effect.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

func newFuture[T any](opts ...Option) *Future[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Future[T]{
		label: o.label,
		done:  make(chan struct{}),
	}
}

// settle performs the terminal transition. Exactly one caller, across any
// number of concurrent settle calls, observes true; all others find the
// future already terminal and return false without side effects.
func (f *Future[T]) settle(res Result[T]) bool {
	f.mu.Lock()
	if f.res != nil {
		f.mu.Unlock()
		return false
	}
	f.res = res
	if f.timer != nil {
		// win the race against a pending timeout: once the result is
		// stored, a timer that already fired settles as a no-op, and a
		// timer that didn't is cancelled here.
		f.timer.Stop()
		f.timer = nil
	}
	success := f.onSuccess
	failure := f.onFailure
	completion := f.onCompletion
	f.onSuccess, f.onFailure, f.onCompletion = nil, nil, nil
	close(f.done)
	f.mu.Unlock()

	logSettled(f.label, res)

	// flush the outcome queue, then the completion queue, preserving
	// registration order within each.
	if res.State() == Resolved {
		val := res.Val()
		for _, e := range success {
			e.dispatch(val)
		}
	} else {
		err := res.Err()
		for _, e := range failure {
			e.dispatch(err)
		}
	}
	for _, e := range completion {
		e.dispatch()
	}
	return true
}

func (f *Future[T]) registerSuccess(exec Executor, cb func(T)) {
	f.mu.Lock()
	if f.res == nil {
		f.onSuccess = append(f.onSuccess, successEntry[T]{exec: exec, cb: cb})
		f.mu.Unlock()
		return
	}
	res := f.res
	f.mu.Unlock()

	if res.State() == Resolved {
		logLateCallback(f.label, "success")
		successEntry[T]{exec: exec, cb: cb}.dispatch(res.Val())
	}
}

func (f *Future[T]) registerFailure(exec Executor, cb func(error)) {
	f.mu.Lock()
	if f.res == nil {
		f.onFailure = append(f.onFailure, failureEntry{exec: exec, cb: cb})
		f.mu.Unlock()
		return
	}
	res := f.res
	f.mu.Unlock()

	if res.State() == Rejected {
		logLateCallback(f.label, "failure")
		failureEntry{exec: exec, cb: cb}.dispatch(res.Err())
	}
}

func (f *Future[T]) registerCompletion(exec Executor, cb func()) {
	f.mu.Lock()
	if f.res == nil {
		f.onCompletion = append(f.onCompletion, completionEntry{exec: exec, cb: cb})
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	logLateCallback(f.label, "completion")
	completionEntry{exec: exec, cb: cb}.dispatch()
}

// armTimeout schedules the one-shot rejection timer. Re-arming replaces
// the previous timer. A terminal future is left untouched.
func (f *Future[T]) armTimeout(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.res != nil {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(d, func() {
		f.settle(Err[T](ErrTimeout))
	})
	logTimerArmed(f.label, d)
}

// Label returns the Future's diagnostic label, if any.
func (f *Future[T]) Label() string { return f.label }

// State returns the Future's current resolution state, without blocking.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.res == nil {
		return Pending
	}
	return f.res.State()
}

// Done returns a channel that's closed once the Future reaches a terminal
// state. It's closed before any queued continuation is dispatched.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks the calling goroutine until the Future reaches a terminal
// state. The same restriction as Await applies: don't call it from the
// default callback executor.
func (f *Future[T]) Wait() {
	<-f.done
}

// Res waits for the Future to reach a terminal state, and returns its
// Result.
func (f *Future[T]) Res() Result[T] {
	<-f.done
	// res is immutable once done is closed, and the close synchronizes
	// with the receive above, so this read needs no lock.
	return f.res
}
