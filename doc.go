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

// Package future provides a generic, thread-safe future/promise primitive:
// a single-assignment container for a value that will become available or
// fail exactly once, with composable continuation chains and a blocking
// bridge into synchronous code.
//
// A Future has three states, and it can be in only one of them, at any time:
// Pending: no outcome has been produced yet.
// Resolved: an outcome value has been stored.
// Rejected: a failure (possibly without a specific cause) has been stored.
//
// The transition out of Pending happens exactly once; a second resolve or
// reject call is a silent no-op, never an error, so a timeout-triggered
// rejection may race a concurrently-completing resolution safely.
//
//
// Callback Notes:-
//
// * Continuations registered while the Future is Pending are queued, and
// flushed on the terminal transition, in registration order per queue.
//
// * Continuations registered after the terminal transition are scheduled
// immediately with the stored outcome; the producer never re-runs.
//
// * Success callbacks are discarded on rejection, failure callbacks are
// discarded on resolution, and completion callbacks always run, after the
// outcome-specific ones.
//
// * A panic inside a transform (Then, ThenFuture, Reduce's combine) is
// recovered and becomes the derived Future's rejection, as a PanicError;
// failures never escape across a future boundary. Await is the one place
// a stored failure re-surfaces, as an error return.
//
//
// Execution Contexts:-
//
// * Every registration carries the Executor its callback is delivered on.
// The default, a SerialExecutor, delivers callbacks one at a time in a
// single, globally-ordered context, the role a main/UI thread plays in
// other environments.
//
// * Producer computations (Go, Resolver, Reduce folds) run on a separate
// WorkerExecutor, never on the callback context. A worker that submits to
// its own pool runs the task inline, so futures that recursively depend
// on futures created from worker code can't deadlock the pool.
//
// * Await must not be called from the default callback executor: that
// context can't deliver the callbacks the awaited Future may depend on
// while it's blocked. Await detects the case and panics.
package future
