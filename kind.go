// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// Kind is the enumerated tag identifying which wrapper family a value
// belongs to. Every wrapper in this package carries a Kind method, and
// [KindOf] discriminates wrappers structurally — by asserting the Kind
// capability, not by testing concrete type identity — so the check stays
// robust when wrapper types cross module boundaries.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no wrapper reports it.
	KindInvalid Kind = iota
	// KindOption tags [Option].
	KindOption
	// KindResult tags [Result].
	KindResult
	// KindFuture tags [Future].
	KindFuture
	// KindLazy tags [Lazy].
	KindLazy
)

// String returns the Kind name.
func (k Kind) String() string {
	switch k {
	case KindOption:
		return "Option"
	case KindResult:
		return "Result"
	case KindFuture:
		return "Future"
	case KindLazy:
		return "Lazy"
	default:
		return "Invalid"
	}
}

// KindOf reports the wrapper Kind of x, or (KindInvalid, false) when x is
// not a wrapper of this package family.
func KindOf(x any) (Kind, bool) {
	k, ok := x.(interface{ Kind() Kind })
	if !ok {
		return KindInvalid, false
	}
	return k.Kind(), true
}

// IsOption returns true if x is an Option of any payload type.
func IsOption(x any) bool {
	k, ok := KindOf(x)
	return ok && k == KindOption
}

// IsResult returns true if x is a Result of any payload type.
func IsResult(x any) bool {
	k, ok := KindOf(x)
	return ok && k == KindResult
}

// IsFuture returns true if x is a Future of any payload type.
func IsFuture(x any) bool {
	k, ok := KindOf(x)
	return ok && k == KindFuture
}

// IsLazy returns true if x is a Lazy of any payload type.
func IsLazy(x any) bool {
	k, ok := KindOf(x)
	return ok && k == KindLazy
}
