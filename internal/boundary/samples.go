package boundary

import (
	"github.com/eigerco/checkedint/internal/safemath"
)

// Samples returns the operand values a matrix is built from, ascending.
// The basic set is the bounds, zero and one, plus -1 for signed
// representations. The extended set adds the neighbours of every bound.
func Samples[T safemath.Integer](extended bool) []T {
	var zero T
	minV, maxV := safemath.Min[T](), safemath.Max[T]()

	if !safemath.IsSigned[T]() {
		if extended {
			return []T{0, 1, 2, maxV - 1, maxV}
		}
		return []T{0, 1, maxV}
	}
	if extended {
		return []T{minV, minV + 1, zero - 2, zero - 1, 0, 1, 2, maxV - 1, maxV}
	}
	return []T{minV, zero - 1, 0, 1, maxV}
}
