// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"sync/atomic"
)

// Future states. futureSettling is an internal transition state: the
// settling goroutine has won the CAS and is committing the payload, but
// the terminal state is not yet published.
const (
	futurePending int32 = iota
	futureSettling
	futureFulfilled
	futureRejected
)

// Future wraps a single asynchronous computation and exposes its settlement
// state synchronously.
//
// Future is built by composition over Go's native settlement primitives —
// a goroutine producing into the struct and a channel closed on settlement —
// not by wrapping a foreign promise type. A Future settles exactly once:
// the first resolve or reject wins and every later attempt is a no-op.
// The payload is committed before the terminal state is published, and the
// state is published before the done channel closes, so no observer can see
// a terminal state without the payload in place, and every released waiter
// observes the terminal state.
//
// All methods are safe for concurrent use; the discriminant queries never
// block. Multiple concurrent waiters all observe the same settlement.
type Future[T any] struct {
	state atomic.Int32
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// fulfill commits v and publishes Fulfilled. No-op if already settling.
func (f *Future[T]) fulfill(v T) {
	if !f.state.CompareAndSwap(futurePending, futureSettling) {
		return
	}
	f.value = v
	f.state.Store(futureFulfilled)
	close(f.done)
}

// reject commits the normalized error and publishes Rejected.
// No-op if already settling.
func (f *Future[T]) reject(err error) {
	if !f.state.CompareAndSwap(futurePending, futureSettling) {
		return
	}
	f.err = AsError(err)
	f.state.Store(futureRejected)
	close(f.done)
}

// NewFuture creates a Future from an executor receiving resolve and reject
// hooks, mirroring native promise construction. The executor runs on its
// own goroutine; a panic in the executor rejects the future with the
// normalized panic value.
func NewFuture[T any](executor func(resolve func(T), reject func(error))) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.reject(AsError(r))
			}
		}()
		executor(f.fulfill, f.reject)
	}()
	return f
}

// GoFuture runs fn on its own goroutine and settles the returned Future
// with fn's result: a nil error fulfills, a non-nil error rejects, and a
// panic rejects with the normalized panic value.
func GoFuture[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.reject(AsError(r))
			}
		}()
		v, err := fn()
		if err != nil {
			f.reject(err)
			return
		}
		f.fulfill(v)
	}()
	return f
}

// Fulfilled creates an already-fulfilled Future holding v.
func Fulfilled[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.fulfill(v)
	return f
}

// Rejected creates an already-rejected Future carrying the normalized err.
func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.reject(err)
	return f
}

// IsPending returns true while the computation has not settled.
// Never blocks.
func (f *Future[T]) IsPending() bool {
	return f.state.Load() <= futureSettling
}

// IsFulfilled returns true once the computation has settled successfully.
// Never blocks.
func (f *Future[T]) IsFulfilled() bool {
	return f.state.Load() == futureFulfilled
}

// IsRejected returns true once the computation has settled with an error.
// Never blocks.
func (f *Future[T]) IsRejected() bool {
	return f.state.Load() == futureRejected
}

// Done returns a channel closed on settlement, for select-based awaiting.
// The settled value must still be read through [Future.Wait] or
// [Future.Result].
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until settlement and returns the native (value, error) pair:
// the fulfilled value with a nil error, or the zero value with the stored
// rejection error verbatim.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	if f.state.Load() == futureRejected {
		var zero T
		return zero, f.err
	}
	return f.value, nil
}

// Result blocks until settlement and converts it to a Result:
// Ok(value) on fulfillment, Err(error) on rejection. Result never panics —
// it is the bridge from "may fail asynchronously" to an inspectable
// outcome.
func (f *Future[T]) Result() Result[T] {
	return From(f.Wait())
}

// Kind returns [KindFuture].
func (f *Future[T]) Kind() Kind {
	return KindFuture
}
