// Copyright 2020 Ahmad Sameh(asmsh)
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

// Waiter is the waiting side of a Future, satisfied by Future values of
// any value type, so futures of different types can be waited together.
type Waiter interface {
	Wait()
}

// WaitAll waits all the provided futures to reach a terminal state then
// returns true, or returns false if no futures are provided.
func WaitAll(fs ...Waiter) (waited bool) {
	if len(fs) == 0 {
		return false
	}

	for _, f := range fs {
		f.Wait()
	}
	return true
}
