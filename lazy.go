// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"sync"
	"sync/atomic"
)

// Lazy is a memoized zero-argument computation: the producer runs at most
// once, on first Get, and every later read returns the cached value.
//
// Concurrent first access is guarded: callers racing into Get queue onto a
// single producer invocation and all observe the same cached value.
// A producer panic is also memoized — every Get observes the same panic
// value, and the producer is never re-run.
type Lazy[T any] struct {
	once      sync.Once
	fn        func() T
	value     T
	panicked  any
	evaluated atomic.Bool
}

// NewLazy creates a Lazy from a producer function.
// The producer is not invoked until the first Get.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Get evaluates the producer on first call, caches the value, and returns
// it; later calls return the cached value without re-invoking the producer.
// If the producer panicked, Get re-panics with the memoized panic value.
func (l *Lazy[T]) Get() T {
	l.once.Do(l.eval)
	if l.panicked != nil {
		panic(l.panicked)
	}
	return l.value
}

func (l *Lazy[T]) eval() {
	defer func() {
		if r := recover(); r != nil {
			l.panicked = r
			panic(r)
		}
	}()
	l.value = l.fn()
	l.fn = nil
	l.evaluated.Store(true)
}

// Evaluated returns true once the producer has completed successfully.
// Never blocks.
func (l *Lazy[T]) Evaluated() bool {
	return l.evaluated.Load()
}

// Result evaluates inside a failure boundary: Ok(value) on success,
// Err of the normalized panic value if the producer panics.
func (l *Lazy[T]) Result() (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Err[T](AsError(rec))
		}
	}()
	return Ok(l.Get())
}

// Kind returns [KindLazy].
func (l *Lazy[T]) Kind() Kind {
	return KindLazy
}
