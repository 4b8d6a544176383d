// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// Option represents a value that is either Some (present) or None (absent).
//
// The discriminant is an explicit field: a present zero value (0, "", false)
// reports IsSome. Option is an immutable value type; every transformation
// returns a new Option.
type Option[T any] struct {
	value T
	valid bool
}

// Some creates a present Option holding v.
// Some stores exactly what it is given; lifting a possibly-absent raw value
// is the job of [FromPtr] and [FromOK].
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr lifts a nullable pointer: Some of the pointee, or None for nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return Option[T]{value: *p, valid: true}
}

// FromOK lifts a comma-ok pair: Some(v) when ok, None otherwise.
func FromOK[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Option[T]{value: v, valid: true}
}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.valid
}

// IsNone returns true if the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.valid
}

// IsSomeAnd returns true if the option holds a value that satisfies pred.
// pred is not invoked on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.valid && pred(o.value)
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

// Unwrap returns the value.
// Panics with [ErrEmptyValue] on None.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic(ErrEmptyValue)
	}
	return o.value
}

// UnwrapOr returns the value, or fallback on None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.valid {
		return fallback
	}
	return o.value
}

// UnwrapOrElse returns the value, or f() on None.
// f is not invoked on Some.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.valid {
		return f()
	}
	return o.value
}

// Expect returns the value.
// Panics with an [*ExpectationError] carrying msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.valid {
		expectFailed(msg)
	}
	return o.value
}

// Filter keeps a present value that satisfies pred; everything else is None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.valid && pred(o.value) {
		return o
	}
	return Option[T]{}
}

// And returns other if o is Some, None otherwise.
// Note other replaces o's value; the two are not combined.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.valid {
		return Option[T]{}
	}
	return other
}

// AndThen returns f(value) if o is Some, None otherwise.
// Type-changing bind is [FlatMapOption].
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if !o.valid {
		return Option[T]{}
	}
	return f(o.value)
}

// Or returns o if Some, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.valid {
		return o
	}
	return other
}

// OrElse returns o if Some, f() otherwise.
// f is not invoked on Some.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.valid {
		return o
	}
	return f()
}

// Xor returns whichever of o and other is Some when exactly one is;
// both-present and both-absent collapse to None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.valid == other.valid {
		return Option[T]{}
	}
	if o.valid {
		return o
	}
	return other
}

// OkOr converts to a Result: Ok of the value, or Err(err) on None.
func (o Option[T]) OkOr(err error) Result[T] {
	if !o.valid {
		return Err[T](err)
	}
	return Ok(o.value)
}

// ToPtr returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) ToPtr() *T {
	if !o.valid {
		return nil
	}
	v := o.value
	return &v
}

// Kind returns [KindOption].
func (o Option[T]) Kind() Kind {
	return KindOption
}

// MapOption applies f to a present value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.valid {
		return Option[U]{}
	}
	return Some(f(o.value))
}

// FlatMapOption sequences two optional computations (monadic bind).
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.valid {
		return Option[U]{}
	}
	return f(o.value)
}

// MapOrOption folds to a plain value: f(value) on Some, fallback on None.
func MapOrOption[T, U any](o Option[T], fallback U, f func(T) U) U {
	if !o.valid {
		return fallback
	}
	return f(o.value)
}

// MapOrElseOption folds to a plain value: f(value) on Some, fallback() on None.
func MapOrElseOption[T, U any](o Option[T], fallback func() U, f func(T) U) U {
	if !o.valid {
		return fallback()
	}
	return f(o.value)
}

// MatchOption pattern matches on the option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.valid {
		return onSome(o.value)
	}
	return onNone()
}
