package checked

import (
	"fmt"
	"strings"
)

// Op names a checked operation.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpNeg
	OpConvert
)

// ArithmeticOps are the operations Apply dispatches, in display order.
var ArithmeticOps = []Op{OpAdd, OpSub, OpMul, OpDiv, OpRem, OpNeg}

var opNames = map[Op]string{
	OpAdd:     "add",
	OpSub:     "sub",
	OpMul:     "mul",
	OpDiv:     "div",
	OpRem:     "rem",
	OpNeg:     "neg",
	OpConvert: "convert",
}

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpRem: "%",
	OpNeg: "-",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Symbol returns the operator as written in an expression.
func (o Op) Symbol() string {
	return opSymbols[o]
}

// Unary reports whether the operation takes a single operand.
func (o Op) Unary() bool {
	return o == OpNeg
}

// ParseOp returns the Op with the given name, case-insensitively.
func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for op, n := range opNames {
		if n == name && op != OpConvert {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// Apply runs op on a and b. Unary operations ignore b.
func Apply[T Integer](op Op, a, b Value[T]) (Value[T], error) {
	switch op {
	case OpAdd:
		return a.Add(b)
	case OpSub:
		return a.Sub(b)
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		return a.Div(b)
	case OpRem:
		return a.Rem(b)
	case OpNeg:
		return a.Neg()
	default:
		return Value[T]{}, fmt.Errorf("operation %s cannot be applied to two operands", op)
	}
}
