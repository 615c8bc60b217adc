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

import "fmt"

// Result is the terminal outcome of a Future.
//
// It's a tagged value, either a resolution value or a rejection error,
// never both. A Future whose Result hasn't been produced yet is Pending.
type Result[T any] interface {
	Val() T
	Err() error
	State() State
}

// Val returns a Result representing a successful resolution with val.
func Val[T any](val T) Result[T] {
	return valResult[T]{val: val}
}

// Err returns a Result representing a rejection with err.
// The err value may be nil, for rejections that carry no specific cause;
// Future.Await substitutes ErrUnspecified for such rejections.
func Err[T any](err error) Result[T] {
	return errResult[T]{err: err}
}

type valResult[T any] struct{ val T }
type errResult[T any] struct{ err error }

func (r valResult[T]) Val() (v T)   { return r.val }
func (r errResult[T]) Val() (v T)   { return v }
func (r valResult[T]) Err() error   { return nil }
func (r errResult[T]) Err() error   { return r.err }
func (r valResult[T]) State() State { return Resolved }
func (r errResult[T]) State() State { return Rejected }

func (r valResult[T]) String() string {
	return fmt.Sprintf("resolved: %v", r.val)
}
func (r errResult[T]) String() string {
	if r.err == nil {
		return "rejected: <no cause>"
	}
	return fmt.Sprintf("rejected: %s", r.err.Error())
}
