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

// Package goid resolves the id of the calling goroutine.
//
// The id is parsed from the first line of the goroutine's stack trace,
// which has the form "goroutine N [state]:". The runtime offers no
// supported way to read the id, and the id itself carries no meaning
// beyond identity, which is all the executors need for their
// re-entrancy checks.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

var prefix = []byte("goroutine ")

// Get returns the id of the calling goroutine.
func Get() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	b := buf[:n]

	b = bytes.TrimPrefix(b, prefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}

	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		// the stack header format is stable across all supported
		// runtime versions, so this is effectively unreachable.
		panic("goid: malformed stack header: " + string(buf[:n]))
	}
	return id
}
