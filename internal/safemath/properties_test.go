package safemath

import (
	"testing"
)

func checkProperties[T Integer](t *testing.T, values []T) {
	t.Helper()
	for _, a := range values {
		if _, ok := Div(a, 0); ok {
			t.Errorf("Div(%d, 0) succeeded", a)
		}
		if _, ok := Rem(a, 0); ok {
			t.Errorf("Rem(%d, 0) succeeded", a)
		}

		if n, ok := Neg(a); ok {
			if back, ok := Neg(n); !ok || back != a {
				t.Errorf("Neg(Neg(%d)) = %d, %v", a, back, ok)
			}
		}

		for _, b := range values {
			ab, okAB := Add(a, b)
			ba, okBA := Add(b, a)
			if okAB != okBA || ab != ba {
				t.Errorf("Add(%d, %d) = %d, %v but Add(%d, %d) = %d, %v", a, b, ab, okAB, b, a, ba, okBA)
			}

			ab, okAB = Mul(a, b)
			ba, okBA = Mul(b, a)
			if okAB != okBA || ab != ba {
				t.Errorf("Mul(%d, %d) = %d, %v but Mul(%d, %d) = %d, %v", a, b, ab, okAB, b, a, ba, okBA)
			}

			// (a-b)+b must get back to a.
			if d, ok := Sub(a, b); ok {
				if sum, ok := Add(d, b); !ok || sum != a {
					t.Errorf("Add(Sub(%d, %d), %d) = %d, %v", a, b, b, sum, ok)
				}
			}
		}
	}
}

func TestProperties(t *testing.T) {
	t.Run("int8", func(t *testing.T) { checkProperties(t, allValues[int8]()) })
	t.Run("uint8", func(t *testing.T) { checkProperties(t, allValues[uint8]()) })
	t.Run("int32", func(t *testing.T) { checkProperties(t, boundaryValues[int32]()) })
	t.Run("int64", func(t *testing.T) { checkProperties(t, boundaryValues[int64]()) })
	t.Run("uint32", func(t *testing.T) { checkProperties(t, boundaryValues[uint32]()) })
	t.Run("uint64", func(t *testing.T) { checkProperties(t, boundaryValues[uint64]()) })
}
