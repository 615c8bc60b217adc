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

const awaitOnCallbackExecPanicMsg = "future: Await called from the default callback executor"

// Await blocks the calling goroutine until the Future reaches a terminal
// state, then returns the stored value, or the stored error if the Future
// was rejected. A rejection that carries no cause is returned as
// ErrUnspecified. An already-terminal Future returns immediately.
//
// It blocks on the Future's latch, not on the callback mechanism, so it
// needs no continuation slot and observes the single, final outcome.
//
// Calling Await from the default callback executor is a programming
// error: that executor can never make progress delivering the callbacks
// this Future may depend on while it's blocked here. Await detects that
// case and panics instead of deadlocking.
func (f *Future[T]) Await() (T, error) {
	if ex, ok := DefaultExecutor().(reentrant); ok && ex.inContext() {
		panic(awaitOnCallbackExecPanicMsg)
	}

	res := f.Res()
	if res.State() == Rejected {
		err := res.Err()
		if err == nil {
			err = ErrUnspecified
		}
		var zero T
		return zero, err
	}
	return res.Val(), nil
}

// Val waits for the Future to reach a terminal state, and returns its
// value: the resolution value, or the zero value on rejection.
func (f *Future[T]) Val() T {
	return f.Res().Val()
}

// Err waits for the Future to reach a terminal state, and returns its
// rejection error, or nil if it resolved. Unlike Await, it returns the
// stored error as-is, which may be nil even for a rejection.
func (f *Future[T]) Err() error {
	return f.Res().Err()
}
