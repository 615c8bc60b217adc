// Copyright 2023 Ahmad Sameh(asmsh)
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

// Each registered continuation is stored as an entry pairing the callback
// with the Executor it must be dispatched on. The three entry kinds map to
// the three per-future queues: on-success, on-failure, on-completion.

type successEntry[T any] struct {
	exec Executor
	cb   func(T)
}

type failureEntry struct {
	exec Executor
	cb   func(error)
}

type completionEntry struct {
	exec Executor
	cb   func()
}

// dispatch enqueues the callback on its executor. It never runs the
// callback on the calling goroutine unless the executor itself does.
func (e successEntry[T]) dispatch(val T) {
	e.exec.Do(func() { e.cb(val) })
}

func (e failureEntry) dispatch(err error) {
	e.exec.Do(func() { e.cb(err) })
}

func (e completionEntry) dispatch() {
	e.exec.Do(e.cb)
}

// runProducer runs a producer computation (or a chained transform) and
// converts its outcome to a Result, recovering panics into PanicError
// rejections, so that no failure escapes across the future boundary.
func runProducer[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = Err[T](PanicError{V: v})
		}
	}()

	val, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Val(val)
}
