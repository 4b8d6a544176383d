// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"code.hybscloud.com/kont"
)

// Lifts into the [code.hybscloud.com/kont] effect system.
//
// These conversions are one-way: a wrapper becomes a kont representation
// (Either) or an effectful computation (Eff) that an effect handler runs.
// Run lifted computations with kont.RunError[error, T].

// ToEither converts a Result to kont's native sum representation:
// Right of the value on Ok, Left of the error on Err.
func ToEither[T any](r Result[T]) kont.Either[error, T] {
	if !r.isOK {
		return kont.Left[error, T](r.err)
	}
	return kont.Right[error](r.value)
}

// OptionEither converts an Option to kont's optional representation:
// Right of the value on Some, Left of unit on None.
func OptionEither[T any](o Option[T]) kont.Either[struct{}, T] {
	if !o.valid {
		return kont.Left[struct{}, T](struct{}{})
	}
	return kont.Right[struct{}](o.value)
}

// LiftOption lifts an Option into an effectful computation that yields the
// payload, or throws [ErrEmptyValue] through kont's Error effect on None.
func LiftOption[T any](o Option[T]) kont.Eff[T] {
	if !o.valid {
		return kont.ThrowError[error, T](ErrEmptyValue)
	}
	return kont.Pure(o.value)
}

// LiftResult lifts a Result into an effectful computation that returns the
// already-computed value, or throws the stored error verbatim on Err.
func LiftResult[T any](r Result[T]) kont.Eff[T] {
	if !r.isOK {
		return kont.ThrowError[error, T](r.err)
	}
	return kont.Pure(r.value)
}

// LiftFuture lifts a Future into an effectful computation whose body awaits
// the underlying settlement: the fulfilled value flows to the continuation,
// a rejection is thrown through kont's Error effect.
//
// The await happens when the computation runs, not when it is built;
// building the lift never blocks.
func LiftFuture[T any](f *Future[T]) kont.Eff[T] {
	return kont.Suspend(func(k func(T) kont.Resumed) kont.Resumed {
		v, err := f.Wait()
		if err != nil {
			return kont.ThrowError[error, T](err)(k)
		}
		return k(v)
	})
}
