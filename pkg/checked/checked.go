// Package checked provides fixed-width integer values whose arithmetic
// reports overflow instead of wrapping.
//
// Every operation checks its operands against the range that keeps the
// result representable before doing the native operation, so a Value
// never holds a wrapped result. A failed operation returns the zero Value
// and an error matching ErrOverflow.
//
// Values of different representations cannot be mixed; crossing
// representations goes through Convert.
package checked

import (
	"fmt"
	"strconv"

	"github.com/eigerco/checkedint/internal/safemath"
)

// Integer is the set of representations a Value can hold.
type Integer = safemath.Integer

// Kind tells signed and unsigned representations apart.
type Kind = safemath.Kind

const (
	Unsigned = safemath.Unsigned
	Signed   = safemath.Signed
)

// KindOf classifies T.
func KindOf[T Integer]() Kind {
	return safemath.KindOf[T]()
}

// Value holds one integer of representation T. The zero Value holds 0.
type Value[T Integer] struct {
	v T
}

type (
	Int8   = Value[int8]
	Int16  = Value[int16]
	Int32  = Value[int32]
	Int64  = Value[int64]
	Uint8  = Value[uint8]
	Uint16 = Value[uint16]
	Uint32 = Value[uint32]
	Uint64 = Value[uint64]
)

// New wraps v.
func New[T Integer](v T) Value[T] {
	return Value[T]{v: v}
}

// Get returns the wrapped integer.
func (x Value[T]) Get() T {
	return x.v
}

// Kind reports whether T is signed or unsigned.
func (x Value[T]) Kind() Kind {
	return safemath.KindOf[T]()
}

func (x Value[T]) String() string {
	if x.v < 0 {
		return strconv.FormatInt(int64(x.v), 10)
	}
	return strconv.FormatUint(uint64(x.v), 10)
}

// Min and Max return the bounds of T as Values.
func Min[T Integer]() Value[T] { return New(safemath.Min[T]()) }
func Max[T Integer]() Value[T] { return New(safemath.Max[T]()) }

// Add returns x+y.
func (x Value[T]) Add(y Value[T]) (Value[T], error) {
	r, ok := safemath.Add(x.v, y.v)
	if !ok {
		return Value[T]{}, overflow(OpAdd, x, y)
	}
	return New(r), nil
}

// Sub returns x-y.
func (x Value[T]) Sub(y Value[T]) (Value[T], error) {
	r, ok := safemath.Sub(x.v, y.v)
	if !ok {
		return Value[T]{}, overflow(OpSub, x, y)
	}
	return New(r), nil
}

// Mul returns x*y.
func (x Value[T]) Mul(y Value[T]) (Value[T], error) {
	r, ok := safemath.Mul(x.v, y.v)
	if !ok {
		return Value[T]{}, overflow(OpMul, x, y)
	}
	return New(r), nil
}

// Div returns x/y truncated toward zero. Division by zero reports ErrOverflow.
func (x Value[T]) Div(y Value[T]) (Value[T], error) {
	r, ok := safemath.Div(x.v, y.v)
	if !ok {
		return Value[T]{}, overflow(OpDiv, x, y)
	}
	return New(r), nil
}

// Rem returns the truncated remainder x%y.
func (x Value[T]) Rem(y Value[T]) (Value[T], error) {
	r, ok := safemath.Rem(x.v, y.v)
	if !ok {
		return Value[T]{}, overflow(OpRem, x, y)
	}
	return New(r), nil
}

// Neg returns -x.
func (x Value[T]) Neg() (Value[T], error) {
	r, ok := safemath.Neg(x.v)
	if !ok {
		return Value[T]{}, overflow(OpNeg, x)
	}
	return New(r), nil
}

// Convert returns x in representation To if its value fits.
func Convert[To, From Integer](x Value[From]) (Value[To], error) {
	r, ok := safemath.Convert[To](x.v)
	if !ok {
		var zero To
		return Value[To]{}, &OverflowError{Op: OpConvert, Operands: []string{x.String(), fmt.Sprintf("%T", zero)}}
	}
	return New(r), nil
}
