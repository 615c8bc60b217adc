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
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/asmsh/future/internal/goid"
)

// Executor runs zero-argument units of work on some execution context, a
// thread-pool-like set of goroutines, a single ordered goroutine, or the
// calling goroutine itself.
//
// Callback registration methods accept an Executor per registration; the
// package default (see DefaultExecutor) is used when none is given.
type Executor interface {
	Do(task func())
}

// reentrant is implemented by executors that can tell whether the calling
// goroutine is already running one of their tasks.
type reentrant interface {
	inContext() bool
}

// Immediate is an Executor that runs each task inline on the calling
// goroutine, before Do returns.
var Immediate Executor = immediateExecutor{}

type immediateExecutor struct{}

func (immediateExecutor) Do(task func()) { runTask(task) }

// SerialExecutor runs tasks one at a time, in submission order, on a single
// dedicated goroutine. It's the package's default callback context, playing
// the role a UI/main thread plays in other environments.
//
// Use NewSerialExecutor to create one.
type SerialExecutor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool

	// id of the drain goroutine, for the re-entrancy and the Await
	// fail-fast checks.
	gid *atomic.Int64
}

// NewSerialExecutor creates a SerialExecutor and starts its drain goroutine.
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{gid: atomic.NewInt64(0)}
	e.cond = sync.NewCond(&e.mu)
	go e.loop()
	return e
}

func (e *SerialExecutor) loop() {
	e.gid.Store(goid.Get())

	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.stopped {
			e.cond.Wait()
		}
		if len(e.queue) == 0 {
			// stopped, and fully drained
			e.mu.Unlock()
			return
		}
		task := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		runTask(task)
	}
}

// Do submits a task. Tasks submitted from inside one of the executor's own
// tasks run inline, to keep recursive submissions from deadlocking behind
// the task that made them.
// Once the executor is stopped, the caller runs the task directly.
func (e *SerialExecutor) Do(task func()) {
	if e.inContext() {
		runTask(task)
		return
	}

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		runTask(task)
		return
	}
	e.queue = append(e.queue, task)
	e.mu.Unlock()
	e.cond.Signal()
}

// Stop stops the executor after the already-submitted tasks drain.
// New tasks submitted after Stop are executed directly by the caller.
func (e *SerialExecutor) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
	e.cond.Signal()
}

func (e *SerialExecutor) inContext() bool {
	return e.gid.Load() == goid.Get()
}

// WorkerExecutor runs tasks concurrently on a bounded pool of goroutines.
// It's the package's default background context, the one producer
// computations (Go, Resolver, Reduce folds) are dispatched on.
//
// A task submitted from inside one of the executor's own workers runs
// inline instead of being re-enqueued. Without that rule, a future whose
// completion depends on another future created from within worker code
// could fill the pool with blocked workers and deadlock.
//
// Use NewWorkerExecutor to create one.
type WorkerExecutor struct {
	pool *ants.Pool

	// ids of goroutines currently running one of this executor's tasks.
	active sync.Map // int64 -> struct{}
}

const workerIdleDuration = time.Minute

// NewWorkerExecutor creates a WorkerExecutor with at most size concurrent
// workers. If size is 0 or less, 4 * GOMAXPROCS is used.
func NewWorkerExecutor(size int) *WorkerExecutor {
	if size < 1 {
		size = 4 * runtime.GOMAXPROCS(0)
	}
	e := &WorkerExecutor{}
	e.pool, _ = ants.NewPool(size, ants.WithExpiryDuration(workerIdleDuration))
	return e
}

// Do submits a task to the pool, blocking while all workers are busy.
// If the calling goroutine is already one of the executor's workers, the
// task runs inline instead. If the pool has been stopped, the caller runs
// the task directly.
func (e *WorkerExecutor) Do(task func()) {
	if e.inContext() {
		runTask(task)
		return
	}

	err := e.pool.Submit(func() {
		id := goid.Get()
		e.active.Store(id, struct{}{})
		defer e.active.Delete(id)
		runTask(task)
	})
	if err != nil {
		logPoolFallback(err)
		runTask(task)
	}
}

// Stop releases the pool's workers.
// New tasks submitted after Stop are executed directly by the caller.
func (e *WorkerExecutor) Stop() {
	e.pool.Release()
}

func (e *WorkerExecutor) inContext() bool {
	_, ok := e.active.Load(goid.Get())
	return ok
}

// runTask keeps task panics from escaping into an executor's goroutine.
// Transform callbacks convert their panics to rejections before reaching
// here; this recover only covers side-effecting callbacks, whose panics
// have no downstream future to reject.
func runTask(task func()) {
	defer func() {
		if v := recover(); v != nil {
			logCallbackPanic(v)
		}
	}()
	task()
}

// package-level default contexts, created lazily.
var defaultExecs struct {
	mu         sync.Mutex
	callback   Executor
	background Executor
}

// DefaultExecutor returns the executor Then, Fail and Finally deliver
// callbacks on when no per-registration executor is given. It defaults to
// a SerialExecutor, so default callback delivery is globally ordered.
func DefaultExecutor() Executor {
	defaultExecs.mu.Lock()
	defer defaultExecs.mu.Unlock()
	if defaultExecs.callback == nil {
		defaultExecs.callback = NewSerialExecutor()
	}
	return defaultExecs.callback
}

// SetDefaultExecutor replaces the default callback executor.
// It doesn't affect callbacks already registered.
func SetDefaultExecutor(ex Executor) {
	defaultExecs.mu.Lock()
	defer defaultExecs.mu.Unlock()
	defaultExecs.callback = ex
}

// BackgroundExecutor returns the executor producer computations run on.
// It defaults to a WorkerExecutor, and is always distinct from the default
// callback executor.
func BackgroundExecutor() Executor {
	defaultExecs.mu.Lock()
	defer defaultExecs.mu.Unlock()
	if defaultExecs.background == nil {
		defaultExecs.background = NewWorkerExecutor(0)
	}
	return defaultExecs.background
}

// SetBackgroundExecutor replaces the background executor.
// It doesn't affect computations already dispatched.
func SetBackgroundExecutor(ex Executor) {
	defaultExecs.mu.Lock()
	defer defaultExecs.mu.Unlock()
	defaultExecs.background = ex
}
