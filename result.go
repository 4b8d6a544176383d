// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "fmt"

// Result represents a computation that is either Ok (success with a value)
// or Err (failure with an error). The two sides are mutually exclusive.
//
// The discriminant is an explicit field, never inferred from the payload:
// Ok(0), Ok("") and Ok(false) report IsOk. Result is an immutable value
// type; every transformation returns a new Result.
type Result[T any] struct {
	value T
	err   error
	isOK  bool
}

// Ok creates a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, isOK: true}
}

// Err creates a failed Result carrying err.
// A nil err yields Ok of the zero value: absence of an error is success.
func Err[T any](err error) Result[T] {
	if err == nil {
		return Result[T]{isOK: true}
	}
	return Result[T]{err: err}
}

// Errf creates a failed Result carrying a message-only error,
// formatted in the manner of fmt.Errorf.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// From lifts Go's native (value, error) pair: Ok(v) when err is nil,
// Err(err) otherwise.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v, isOK: true}
}

// IsOk returns true if the result is a success.
func (r Result[T]) IsOk() bool {
	return r.isOK
}

// IsErr returns true if the result is a failure.
func (r Result[T]) IsErr() bool {
	return !r.isOK
}

// Get returns the native (value, error) pair: (value, nil) on Ok,
// (zero, error) on Err.
func (r Result[T]) Get() (T, error) {
	if !r.isOK {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Err returns the stored error, or nil on Ok.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value.
// Panics with the stored error verbatim on Err — no wrapping.
func (r Result[T]) Unwrap() T {
	if !r.isOK {
		panic(r.err)
	}
	return r.value
}

// UnwrapErr returns the stored error.
// Panics with [ErrInvalidState] on Ok.
func (r Result[T]) UnwrapErr() error {
	if r.isOK {
		panic(ErrInvalidState)
	}
	return r.err
}

// UnwrapOr returns the value, or fallback on Err.
func (r Result[T]) UnwrapOr(fallback T) T {
	if !r.isOK {
		return fallback
	}
	return r.value
}

// UnwrapOrElse returns the value, or f(err) on Err.
// f is not invoked on Ok.
func (r Result[T]) UnwrapOrElse(f func(error) T) T {
	if !r.isOK {
		return f(r.err)
	}
	return r.value
}

// Expect returns the value.
// Panics with an [*ExpectationError] carrying msg on Err.
func (r Result[T]) Expect(msg string) T {
	if !r.isOK {
		expectFailed(msg)
	}
	return r.value
}

// ExpectErr returns the stored error.
// Panics with an [*ExpectationError] carrying msg on Ok.
func (r Result[T]) ExpectErr(msg string) error {
	if r.isOK {
		expectFailed(msg)
	}
	return r.err
}

// MapErr transforms the error side; an Ok result passes through unchanged.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.isOK {
		return r
	}
	return Result[T]{err: f(r.err)}
}

// And returns other if r is Ok, r's error otherwise.
// Note other replaces r's value; the two are not combined.
func (r Result[T]) And(other Result[T]) Result[T] {
	if !r.isOK {
		return r
	}
	return other
}

// AndThen returns f(value) if r is Ok; an Err short-circuits without
// invoking f. Type-changing bind is [FlatMapResult].
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if !r.isOK {
		return r
	}
	return f(r.value)
}

// Or returns r if Ok, other otherwise.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.isOK {
		return r
	}
	return other
}

// OrElse returns r if Ok, f(err) otherwise.
// f is not invoked on Ok.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.isOK {
		return r
	}
	return f(r.err)
}

// Inspect is a pass-through validation guard: an Ok value that satisfies
// pred passes through unchanged; a rejected value becomes Err wrapping
// [ErrInspection]. An Err passes through unchanged and pred is not invoked.
func (r Result[T]) Inspect(pred func(T) bool) Result[T] {
	if r.isOK && !pred(r.value) {
		return Result[T]{err: fmt.Errorf("%w: value", ErrInspection)}
	}
	return r
}

// InspectErr is the error-side validation guard: an Err whose error
// satisfies pred passes through unchanged; a rejected error becomes Err
// wrapping [ErrInspection]. An Ok passes through unchanged and pred is
// not invoked.
func (r Result[T]) InspectErr(pred func(error) bool) Result[T] {
	if !r.isOK && !pred(r.err) {
		return Result[T]{err: fmt.Errorf("%w: error: %v", ErrInspection, r.err)}
	}
	return r
}

// Value converts the success side to an Option: Some(value) on Ok,
// None on Err.
func (r Result[T]) Value() Option[T] {
	if !r.isOK {
		return Option[T]{}
	}
	return Some(r.value)
}

// Failure converts the error side to an Option: Some(error) on Err,
// None on Ok.
func (r Result[T]) Failure() Option[error] {
	if r.isOK {
		return Option[error]{}
	}
	return Some(r.err)
}

// Kind returns [KindResult].
func (r Result[T]) Kind() Kind {
	return KindResult
}

// MapResult applies f to the value of an Ok result; the error side passes
// through unchanged, with no renormalization.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.isOK {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// FlatMapResult sequences two fallible computations (monadic bind).
// An Err short-circuits without invoking f.
func FlatMapResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.isOK {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// MapOrResult folds to a plain value: f(value) on Ok, fallback on Err.
func MapOrResult[T, U any](r Result[T], fallback U, f func(T) U) U {
	if !r.isOK {
		return fallback
	}
	return f(r.value)
}

// MapOrElseResult folds to a plain value: f(value) on Ok,
// fallback(err) on Err.
func MapOrElseResult[T, U any](r Result[T], fallback func(error) U, f func(T) U) U {
	if !r.isOK {
		return fallback(r.err)
	}
	return f(r.value)
}

// MatchResult pattern matches on the result, calling onOk or onErr.
func MatchResult[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	if r.isOK {
		return onOk(r.value)
	}
	return onErr(r.err)
}
