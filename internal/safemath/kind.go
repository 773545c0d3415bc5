package safemath

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is any fixed-width integer representation the checked operations support.
type Integer interface {
	constraints.Integer
}

// Kind selects which bounds reasoning applies to a representation.
type Kind uint8

const (
	// Unsigned representations have a lower bound of zero.
	Unsigned Kind = iota
	// Signed representations are two's complement, |MIN| == MAX+1.
	Signed
)

func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	default:
		return "unknown"
	}
}

// KindOf classifies T. The result depends on T alone, so it is constant
// within each instantiation.
func KindOf[T Integer]() Kind {
	var zero T
	if zero-1 < zero {
		return Signed
	}
	return Unsigned
}

// IsSigned reports whether T is a signed representation.
func IsSigned[T Integer]() bool {
	return KindOf[T]() == Signed
}

// Bits returns the width of T in bits.
func Bits[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Min returns the minimum value representable by T.
func Min[T Integer]() T {
	if KindOf[T]() == Unsigned {
		return 0
	}
	return T(1) << (Bits[T]() - 1)
}

// Max returns the maximum value representable by T.
func Max[T Integer]() T {
	if KindOf[T]() == Unsigned {
		var zero T
		return ^zero
	}
	return ^Min[T]()
}
