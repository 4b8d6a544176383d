// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"errors"
	"fmt"
)

// Sentinel errors for wrapper contract violations.
//
// Unwrap-family methods panic with these values (or with the stored error
// itself, for [Result.Unwrap]); callers that recover can discriminate with
// errors.Is.

// ErrEmptyValue is the panic value of [Option.Unwrap] on None.
var ErrEmptyValue = errors.New("sum: empty value")

// ErrInvalidState is the panic value of [Result.UnwrapErr] on an Ok result.
var ErrInvalidState = errors.New("sum: no error in ok result")

// ErrInspection is wrapped by the Err branch produced when an
// [Result.Inspect] or [Result.InspectErr] predicate rejects its input.
var ErrInspection = errors.New("sum: inspection rejected")

// ExpectationError is the panic value of the Expect family.
// It carries the caller-supplied message verbatim.
type ExpectationError struct {
	Msg string
}

func (e *ExpectationError) Error() string { return e.Msg }

// expectFailed panics with the caller-supplied expectation message.
// Extracted as a noinline function so that Expect methods remain inlineable.
//
//go:noinline
func expectFailed(msg string) {
	panic(&ExpectationError{Msg: msg})
}

// AsError normalizes an arbitrary failure value into an error.
// An error passes through unchanged, a string becomes an error carrying
// that string as its message, and any other value is formatted.
//
// AsError is the single normalization boundary of the package: it is applied
// at the recover boundaries of [NewFuture], [GoFuture] and [Lazy.Result],
// and nowhere else — errors stored in an existing Err are never
// renormalized by transformation.
func AsError(v any) error {
	switch e := v.(type) {
	case nil:
		return errors.New("sum: failure with no error value")
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("sum: failure: %v", e)
	}
}
