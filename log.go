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
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// the package logs lifecycle events at debug level only.
// the default logger is a nop, so the library is silent unless a caller
// opts in through SetLogger.
var pkgLogger = atomic.NewPointer[zap.Logger](zap.NewNop())

// SetLogger sets the logger used for the package's debug-level lifecycle
// events (terminal transitions, timeout timers, late callback scheduling,
// executor activity). Passing nil restores the default nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}

func logSettled[T any](label string, res Result[T]) {
	if ce := logger().Check(zap.DebugLevel, "future settled"); ce != nil {
		ce.Write(
			zap.String("label", label),
			zap.Stringer("state", res.State()),
			zap.Error(res.Err()),
		)
	}
}

func logTimerArmed(label string, d time.Duration) {
	if ce := logger().Check(zap.DebugLevel, "timeout timer armed"); ce != nil {
		ce.Write(zap.String("label", label), zap.Duration("after", d))
	}
}

func logLateCallback(label string, kind string) {
	if ce := logger().Check(zap.DebugLevel, "callback registered after settlement"); ce != nil {
		ce.Write(zap.String("label", label), zap.String("kind", kind))
	}
}

func logCallbackPanic(v any) {
	logger().Error("callback panicked", zap.Any("value", v))
}

func logPoolFallback(err error) {
	logger().Debug("worker pool unavailable, caller runs task", zap.Error(err))
}
