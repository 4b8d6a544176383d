// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sum provides algebraic value wrappers in Go: optional values,
// fallible outcomes, single-settlement asynchronous results, and memoized
// computations.
//
// The wrappers replace nil checks, sentinel errors threaded by hand, and
// ad-hoc asynchronous state tracking with explicit, composable value types.
// Callers construct a wrapper from a raw value or computation, chain
// transformations that produce new instances, and unwrap at a point of
// their choosing. Failures never surface inside a combinator chain; only
// the unwrap family and explicit terminal-state inspection expose them.
//
// # Design Philosophy
//
// sum provides:
//   - Immutable value wrappers with explicit discriminant fields —
//     presence and success are never inferred from payload zero-ness
//   - Methods for type-preserving operations, free generic functions for
//     type-changing operations ([MapOption], [FlatMapResult], ...)
//   - Composition over Go's native primitives: [Future] owns a goroutine
//     boundary and a settlement channel rather than wrapping a foreign
//     promise type
//
// # Option
//
// [Option] represents presence or absence of a value:
//
//   - [Some], [None]: Constructors
//   - [FromPtr], [FromOK]: Lift Go's native nullable forms (nil pointer,
//     comma-ok pair)
//   - [Option.IsSome], [Option.IsNone], [Option.IsSomeAnd]: Discriminant queries
//   - [Option.Get]: Comma-ok accessor
//   - [Option.Unwrap], [Option.UnwrapOr], [Option.UnwrapOrElse],
//     [Option.Expect]: Terminal reads ([Option.Unwrap] panics with
//     [ErrEmptyValue] on None)
//   - [Option.Filter], [Option.And], [Option.AndThen], [Option.Or],
//     [Option.OrElse], [Option.Xor]: Short-circuit combinators
//   - [Option.OkOr]: Conversion to [Result]
//   - [MapOption], [FlatMapOption], [MapOrOption], [MapOrElseOption],
//     [MatchOption]: Type-changing transforms and pattern matching
//
// # Result
//
// [Result] represents success-with-value or failure-with-error, with the
// error side carried as Go's error interface:
//
//   - [Ok], [Err], [Errf], [From]: Constructors ([Err] of a nil error is
//     Ok; [From] lifts a native (value, error) pair)
//   - [Result.IsOk], [Result.IsErr]: Mutually exclusive discriminant queries
//   - [Result.Get], [Result.Err]: Native-pair accessors
//   - [Result.Unwrap]: Panics with the stored error verbatim on Err
//   - [Result.UnwrapErr]: Panics with [ErrInvalidState] on Ok
//   - [Result.Expect], [Result.ExpectErr]: Caller-message variants
//   - [Result.UnwrapOr], [Result.UnwrapOrElse]: Fallback reads
//   - [Result.MapErr], [Result.And], [Result.AndThen], [Result.Or],
//     [Result.OrElse]: Short-circuit combinators
//   - [Result.Inspect], [Result.InspectErr]: Pass-through validation guards
//   - [Result.Value], [Result.Failure]: Conversions to [Option]
//   - [MapResult], [FlatMapResult], [MapOrResult], [MapOrElseResult],
//     [MatchResult]: Type-changing transforms and pattern matching
//
// # Future
//
// [Future] wraps one asynchronous computation and exposes its settlement
// state synchronously. The state machine is Pending → {Fulfilled |
// Rejected}; settlement commits exactly once and later attempts are
// no-ops. The payload is committed before the terminal state is
// published, so discriminant reads never observe a settled state without
// its payload:
//
//   - [NewFuture]: From an executor receiving resolve/reject hooks
//   - [GoFuture]: From a producer function run on its own goroutine
//   - [Fulfilled], [Rejected]: Pre-settled conveniences
//   - [Future.IsPending], [Future.IsFulfilled], [Future.IsRejected]:
//     Non-blocking discriminant reads, at most one terminal state true
//   - [Future.Done]: Settlement channel for select-based awaiting
//   - [Future.Wait]: Block until settlement, rejection surfaced verbatim
//   - [Future.Result]: Block and convert to [Result] — never panics
//
// Cancellation and timeouts are the wrapped computation's concern: race
// the producer against a deadline at the call site if needed.
//
// # Lazy
//
// [Lazy] is a memoized zero-argument computation:
//
//   - [NewLazy]: Constructor; the producer does not run until first Get
//   - [Lazy.Get]: Evaluate at most once, return the cached value after
//   - [Lazy.Evaluated]: Non-blocking state query
//   - [Lazy.Result]: Evaluate inside a failure boundary
//
// Concurrent first calls to Get queue onto a single producer invocation.
//
// # Error Taxonomy
//
//   - [ErrEmptyValue]: Option unwrap on None
//   - [ErrInvalidState]: Result error-side unwrap on Ok
//   - [ErrInspection]: Inspection predicate rejection
//   - [ExpectationError]: Expect family, carrying the caller message
//   - [AsError]: The single string-or-error normalization routine,
//     applied at the package's recover boundaries
//
// Combinators never recover panics raised by caller-supplied functions;
// those propagate unchanged.
//
// # Wrapper Kinds
//
// Each wrapper carries an enumerated [Kind] tag checked structurally:
//
//   - [KindOf]: Discriminate a wrapper without static type information
//   - [IsOption], [IsResult], [IsFuture], [IsLazy]: Predicates
//
// # Effect System Lifts
//
// One-way lifts into [code.hybscloud.com/kont]:
//
//   - [ToEither]: Result → kont.Either
//   - [OptionEither]: Option → kont.Either with unit Left
//   - [LiftOption], [LiftResult], [LiftFuture]: Wrapper → kont.Eff,
//     absence and failure thrown through kont's Error effect
//
// Run lifted computations with kont.RunError:
//
//	eff := sum.LiftFuture(sum.GoFuture(fetch))
//	either := kont.RunError[error, Payload](eff)
//
// # Example
//
//	port := sum.FromPtr(cfg.Port).
//		Filter(func(p int) bool { return p > 0 }).
//		UnwrapOr(8080)
//
//	res := sum.From(strconv.Atoi(s)).
//		AndThen(func(n int) sum.Result[int] {
//			if n%2 != 0 {
//				return sum.Errf[int]("odd input %d", n)
//			}
//			return sum.Ok(n / 2)
//		})
//	if v, err := res.Get(); err == nil {
//		use(v)
//	}
package sum
