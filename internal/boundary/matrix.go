package boundary

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eigerco/checkedint/internal/safemath"
	"github.com/eigerco/checkedint/pkg/checked"
	"github.com/eigerco/checkedint/pkg/log"
)

// Separator ends the lines of one operand pair.
const Separator = "______________________________________________________________"

// Types lists the representation names RunNamed accepts.
var Types = []string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"}

// DefaultOps are the operations run when none are chosen.
var DefaultOps = []checked.Op{checked.OpAdd, checked.OpSub, checked.OpMul, checked.OpDiv, checked.OpNeg}

var ErrUnknownType = errors.New("unknown integer type")

// Outcome is the result of one operation on one operand pair.
type Outcome struct {
	Pair   int
	Op     checked.Op
	A, B   string
	Result string
	Err    error
}

// Expr renders the operation, e.g. "1 + 2" or "-(-1)".
func (o Outcome) Expr() string {
	if o.Op.Unary() {
		if strings.HasPrefix(o.A, "-") {
			return o.Op.Symbol() + "(" + o.A + ")"
		}
		return o.Op.Symbol() + o.A
	}
	return o.A + " " + o.Op.Symbol() + " " + o.B
}

// Line renders the outcome as "<expr>: <result>" or "<expr>: overflow".
func (o Outcome) Line() string {
	if o.Err != nil {
		return o.Expr() + ": overflow"
	}
	return o.Expr() + ": " + o.Result
}

// Matrix holds the outcomes of a run over every ordered pair of samples.
type Matrix struct {
	Type     string
	Outcomes []Outcome
}

// Run applies every op to every ordered pair of samples. Unary ops are
// applied to the first operand of each pair.
func Run[T safemath.Integer](samples []T, ops []checked.Op) Matrix {
	var zero T
	m := Matrix{Type: fmt.Sprintf("%T", zero)}
	logger := log.Harness.With().Str("type", m.Type).Logger()

	pair := 0
	for _, a := range samples {
		for _, b := range samples {
			x, y := checked.New(a), checked.New(b)
			for _, op := range ops {
				r, err := checked.Apply(op, x, y)
				o := Outcome{Pair: pair, Op: op, A: x.String(), B: y.String(), Err: err}
				if err == nil {
					o.Result = r.String()
				} else {
					logger.Debug().Err(err).Str("op", op.String()).Msg("overflow")
				}
				m.Outcomes = append(m.Outcomes, o)
			}
			pair++
		}
	}
	logger.Debug().Int("pairs", pair).Int("outcomes", len(m.Outcomes)).Msg("matrix built")
	return m
}

// RunNamed runs the matrix for the representation with the given name.
func RunNamed(name string, extended bool, ops []checked.Op) (Matrix, error) {
	switch name {
	case "int8":
		return Run(Samples[int8](extended), ops), nil
	case "int16":
		return Run(Samples[int16](extended), ops), nil
	case "int32":
		return Run(Samples[int32](extended), ops), nil
	case "int64":
		return Run(Samples[int64](extended), ops), nil
	case "uint8":
		return Run(Samples[uint8](extended), ops), nil
	case "uint16":
		return Run(Samples[uint16](extended), ops), nil
	case "uint32":
		return Run(Samples[uint32](extended), ops), nil
	case "uint64":
		return Run(Samples[uint64](extended), ops), nil
	default:
		return Matrix{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Lines renders the matrix, one line per outcome with a Separator after
// each operand pair.
func (m Matrix) Lines() []string {
	lines := make([]string, 0, len(m.Outcomes)+len(m.Outcomes)/2)
	for i, o := range m.Outcomes {
		lines = append(lines, o.Line())
		if i == len(m.Outcomes)-1 || m.Outcomes[i+1].Pair != o.Pair {
			lines = append(lines, Separator)
		}
	}
	return lines
}

// Text is Lines joined with newlines, newline terminated.
func (m Matrix) Text() string {
	if len(m.Outcomes) == 0 {
		return ""
	}
	return strings.Join(m.Lines(), "\n") + "\n"
}

func (m Matrix) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.Text())
	return int64(n), err
}

// Overflows counts the outcomes that reported ErrOverflow.
func (m Matrix) Overflows() int {
	n := 0
	for _, o := range m.Outcomes {
		if errors.Is(o.Err, checked.ErrOverflow) {
			n++
		}
	}
	return n
}
