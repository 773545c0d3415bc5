package safemath

import (
	"errors"
)

var ErrOverflow = errors.New("number overflow")

// Add returns a+b, ok is false if the sum is not representable by T.
func Add[T Integer](a, b T) (T, bool) {
	if KindOf[T]() == Signed {
		return addSigned(a, b)
	}
	return addUnsigned(a, b)
}

func addUnsigned[T Integer](a, b T) (T, bool) {
	if b > Max[T]()-a {
		return 0, false
	}
	return a + b, true
}

func addSigned[T Integer](a, b T) (T, bool) {
	bMin, bMax := Min[T](), Max[T]()
	if a > 0 {
		bMax = Max[T]() - a
	} else if a < 0 {
		bMin = Min[T]() - a
	}
	if b < bMin || b > bMax {
		return 0, false
	}
	return a + b, true
}

// Sub returns a-b, ok is false if the difference is not representable by T.
func Sub[T Integer](a, b T) (T, bool) {
	if KindOf[T]() == Signed {
		return subSigned(a, b)
	}
	return subUnsigned(a, b)
}

func subUnsigned[T Integer](a, b T) (T, bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

func subSigned[T Integer](a, b T) (T, bool) {
	aMin, aMax := Min[T](), Max[T]()
	if b > 0 {
		aMin = Min[T]() + b
	} else if b < 0 {
		aMax = Max[T]() + b
	}
	if a < aMin || a > aMax {
		return 0, false
	}
	return a - b, true
}

// Mul returns a*b, ok is false if the product is not representable by T.
func Mul[T Integer](a, b T) (T, bool) {
	if a == 0 {
		return 0, true
	}
	if KindOf[T]() == Signed {
		return mulSigned(a, b)
	}
	return mulUnsigned(a, b)
}

func mulUnsigned[T Integer](a, b T) (T, bool) {
	if Max[T]()/a < b {
		return 0, false
	}
	return a * b, true
}

func mulSigned[T Integer](a, b T) (T, bool) {
	// MIN/-1 is the one quotient below that would itself overflow.
	if a == minusOne[T]() {
		if b == Min[T]() {
			return 0, false
		}
		return -b, true
	}
	bMax := Max[T]() / a
	bMin := Min[T]() / a
	if bMax < bMin {
		bMin, bMax = bMax, bMin
	}
	if b < bMin || b > bMax {
		return 0, false
	}
	return a * b, true
}

// Div returns a/b truncated toward zero. ok is false if b is zero or the
// quotient is not representable by T.
func Div[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if KindOf[T]() == Signed && b == minusOne[T]() && a == Min[T]() {
		return 0, false
	}
	return a / b, true
}

// Rem returns the truncated remainder a%b, ok is false if b is zero.
// MIN % -1 is defined and yields 0.
func Rem[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

// Neg returns -v, ok is false if the negation is not representable by T.
// For unsigned T only zero can be negated.
func Neg[T Integer](v T) (T, bool) {
	if KindOf[T]() == Unsigned {
		if v != 0 {
			return 0, false
		}
		return 0, true
	}
	if v == Min[T]() {
		return 0, false
	}
	return -v, true
}

// minusOne is -1 for signed T. Callers guard on the kind since the
// constant -1 is not representable by every T.
func minusOne[T Integer]() T {
	var zero T
	return ^zero
}

// Convert returns v as a To, ok is false if v is outside To's range.
func Convert[To, From Integer](v From) (To, bool) {
	if v < 0 {
		if KindOf[To]() == Unsigned || int64(v) < int64(Min[To]()) {
			return 0, false
		}
		return To(v), true
	}
	if uint64(v) > uint64(Max[To]()) {
		return 0, false
	}
	return To(v), true
}
