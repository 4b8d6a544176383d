// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/sum"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randOption returns None about a quarter of the time, otherwise Some of a
// random int.
func randOption(rng *rand.Rand) sum.Option[int] {
	if rng.IntN(4) == 0 {
		return sum.None[int]()
	}
	return sum.Some(randInt(rng))
}

// randResult returns Err about a quarter of the time, otherwise Ok of a
// random int.
func randResult(rng *rand.Rand) sum.Result[int] {
	if rng.IntN(4) == 0 {
		return sum.Errf[int]("e%d", rng.IntN(100))
	}
	return sum.Ok(randInt(rng))
}

// --- Group 1: Option Laws ---

// TestPropertyOptionFromRoundTrip: FromPtr(&v).Unwrap() ≡ v
func TestPropertyOptionFromRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		o := sum.FromPtr(&v)
		if !o.IsSome() {
			t.Fatal("FromPtr of non-nil: expected Some")
		}
		if got := o.Unwrap(); got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
	}
}

// TestPropertyOptionMapComposition: Map(Map(o, f), g) ≡ Map(o, g∘f)
func TestPropertyOptionMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x + 3 }
	g := func(x int) int { return x * 2 }
	for range propertyN {
		o := randOption(rng)
		left := sum.MapOption(sum.MapOption(o, f), g)
		right := sum.MapOption(o, func(x int) int { return g(f(x)) })
		if left != right {
			t.Fatalf("map composition: %v != %v", left, right)
		}
	}
}

// TestPropertyOptionMapIdentity: Map(o, id) ≡ o
func TestPropertyOptionMapIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		o := randOption(rng)
		if got := sum.MapOption(o, func(x int) int { return x }); got != o {
			t.Fatalf("map identity: %v != %v", got, o)
		}
	}
}

// TestPropertyOptionXor: exactly-one-present selects it; otherwise None.
func TestPropertyOptionXor(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randOption(rng)
		b := randOption(rng)
		x := a.Xor(b)
		switch {
		case a.IsSome() && b.IsNone():
			if x != a {
				t.Fatalf("xor: got %v, want left %v", x, a)
			}
		case a.IsNone() && b.IsSome():
			if x != b {
				t.Fatalf("xor: got %v, want right %v", x, b)
			}
		default:
			if x.IsSome() {
				t.Fatalf("xor of %v, %v: expected None", a, b)
			}
		}
	}
}

// TestPropertyOptionXorSymmetric: a.Xor(b) state ≡ b.Xor(a) state.
func TestPropertyOptionXorSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randOption(rng)
		b := randOption(rng)
		if a.Xor(b).IsSome() != b.Xor(a).IsSome() {
			t.Fatalf("xor symmetry broken for %v, %v", a, b)
		}
	}
}

// TestPropertyOptionOrIdentity: o.Or(None) ≡ o and None.Or(o) ≡ o.
func TestPropertyOptionOrIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	none := sum.None[int]()
	for range propertyN {
		o := randOption(rng)
		if got := o.Or(none); got != o {
			t.Fatalf("o.Or(None): got %v, want %v", got, o)
		}
		if got := none.Or(o); got != o {
			t.Fatalf("None.Or(o): got %v, want %v", got, o)
		}
	}
}

// TestPropertyOptionFilterImpliesPred: a surviving value satisfies pred.
func TestPropertyOptionFilterImpliesPred(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	even := func(x int) bool { return x%2 == 0 }
	for range propertyN {
		o := randOption(rng).Filter(even)
		if v, ok := o.Get(); ok && !even(v) {
			t.Fatalf("filter let through %d", v)
		}
	}
}

// --- Group 2: Result Laws ---

// TestPropertyResultOkDiscriminant: Ok(v) is Ok for every v, including
// zero values.
func TestPropertyResultOkDiscriminant(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		r := sum.Ok(v)
		if !r.IsOk() || r.IsErr() {
			t.Fatalf("Ok(%d): discriminant wrong", v)
		}
	}
}

// TestPropertyResultMapComposition: Map(Map(r, f), g) ≡ Map(r, g∘f)
func TestPropertyResultMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x - 7 }
	g := func(x int) int { return x * 3 }
	for range propertyN {
		r := randResult(rng)
		left := sum.MapResult(sum.MapResult(r, f), g)
		right := sum.MapResult(r, func(x int) int { return g(f(x)) })
		lv, le := left.Get()
		rv, re := right.Get()
		if lv != rv || le != re {
			t.Fatalf("map composition: (%d,%v) != (%d,%v)", lv, le, rv, re)
		}
	}
}

// TestPropertyResultBindLeftIdentity: FlatMap(Ok(a), f) ≡ f(a)
func TestPropertyResultBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) sum.Result[int] {
		if x < 0 {
			return sum.Errf[int]("negative")
		}
		return sum.Ok(x * 2)
	}
	for range propertyN {
		a := randInt(rng)
		left := sum.FlatMapResult(sum.Ok(a), f)
		right := f(a)
		lv, le := left.Get()
		rv, re := right.Get()
		if lv != rv || (le == nil) != (re == nil) {
			t.Fatalf("left identity: (%d,%v) != (%d,%v)", lv, le, rv, re)
		}
	}
}

// TestPropertyResultErrShortCircuit: FlatMap on Err never invokes f and
// preserves the identical error.
func TestPropertyResultErrShortCircuit(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		e := sum.Errf[int]("e%d", rng.IntN(100))
		orig := e.Err()
		got := sum.FlatMapResult(e, func(int) sum.Result[int] {
			t.Fatal("fn invoked on Err")
			return sum.Ok(0)
		})
		if got.Err() != orig {
			t.Fatalf("error not preserved verbatim: %v != %v", got.Err(), orig)
		}
	}
}

// TestPropertyResultValueFailureExclusive: exactly one of Value/Failure is
// present.
func TestPropertyResultValueFailureExclusive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		r := randResult(rng)
		if r.Value().IsSome() == r.Failure().IsSome() {
			t.Fatalf("Value/Failure not exclusive for %v", r)
		}
	}
}

// TestPropertyOptionResultRoundTrip: Some(v).OkOr(e).Value() ≡ Some(v)
func TestPropertyOptionResultRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		o := sum.Some(v).OkOr(sum.ErrEmptyValue).Value()
		if got := o.Unwrap(); got != v {
			t.Fatalf("round trip: got %d, want %d", got, v)
		}
	}
}

// --- Group 3: Lazy ---

// TestPropertyLazySingleEvaluation: any number of Get calls, one producer run.
func TestPropertyLazySingleEvaluation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		calls := 0
		v := randInt(rng)
		l := sum.NewLazy(func() int {
			calls++
			return v
		})
		n := rng.IntN(5) + 1
		for range n {
			if got := l.Get(); got != v {
				t.Fatalf("got %d, want %d", got, v)
			}
		}
		if calls != 1 {
			t.Fatalf("producer ran %d times, want 1", calls)
		}
	}
}
