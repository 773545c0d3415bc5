package checked

import (
	"fmt"
	"strings"

	"github.com/eigerco/checkedint/internal/safemath"
)

// ErrOverflow is the one error every checked operation reports. It covers
// overflow, underflow and operations undefined for their inputs, such as
// division by zero.
var ErrOverflow = safemath.ErrOverflow

// OverflowError describes a failed operation, errors.Is(err, ErrOverflow) holds for it.
type OverflowError struct {
	Op       Op
	Operands []string
}

func (e *OverflowError) Error() string {
	switch {
	case e.Op == OpConvert && len(e.Operands) == 2:
		return fmt.Sprintf("convert %s to %s: %s", e.Operands[0], e.Operands[1], ErrOverflow)
	case e.Op.Unary() && len(e.Operands) == 1:
		operand := e.Operands[0]
		if strings.HasPrefix(operand, "-") {
			operand = "(" + operand + ")"
		}
		return fmt.Sprintf("%s%s: %s", e.Op.Symbol(), operand, ErrOverflow)
	default:
		return fmt.Sprintf("%s: %s", strings.Join(e.Operands, " "+e.Op.Symbol()+" "), ErrOverflow)
	}
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

func overflow(op Op, operands ...fmt.Stringer) error {
	e := &OverflowError{Op: op, Operands: make([]string, len(operands))}
	for i, o := range operands {
		e.Operands[i] = o.String()
	}
	return e
}
