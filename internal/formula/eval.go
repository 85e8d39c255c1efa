package formula

import (
	"fmt"

	"github.com/vk/gridcalc/internal/cellid"
)

// Resolver answers "what is the current numeric value of the cell at pos".
// The boolean is false when the cell is empty, holds text, or is a formula
// whose cached result is an error.
type Resolver interface {
	Value(pos cellid.Position) (int64, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(pos cellid.Position) (int64, bool)

// Value implements Resolver.
func (f ResolverFunc) Value(pos cellid.Position) (int64, bool) {
	return f(pos)
}

// Execute runs the program on a fresh stack and returns the value left on top.
// Cell operands are resolved through r; with a nil resolver they fail with
// ErrNotImplemented. Execute never mutates anything reachable from r.
func (p Program) Execute(r Resolver) (int64, error) {
	stack := make([]int64, 0, len(p))

	for _, ins := range p {
		switch ins.Kind {
		case KindNumber:
			stack = append(stack, ins.Value)

		case KindCell:
			if r == nil {
				return 0, fmt.Errorf("%w: reference %s outside a sheet", ErrNotImplemented, ins.Cell)
			}
			v, ok := r.Value(ins.Cell)
			if !ok {
				return 0, fmt.Errorf("%w: %s", ErrCellNotFound, ins.Cell)
			}
			stack = append(stack, v)

		case KindAdd, KindSub, KindMul, KindDiv:
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: %s needs two operands", ErrOutOfStack, ins.Kind)
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := apply(ins.Kind, lhs, rhs)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		default:
			return 0, fmt.Errorf("%w: unexpected %s instruction", ErrCompilation, ins.Kind)
		}
	}

	if len(stack) == 0 {
		return 0, fmt.Errorf("%w: empty program", ErrOutOfStack)
	}
	return stack[len(stack)-1], nil
}

// apply computes lhs <op> rhs. Overflow wraps around.
func apply(k Kind, lhs, rhs int64) (int64, error) {
	switch k {
	case KindAdd:
		return lhs + rhs, nil
	case KindSub:
		return lhs - rhs, nil
	case KindMul:
		return lhs * rhs, nil
	case KindDiv:
		if rhs == 0 {
			return 0, ErrDivideByZero
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("%w: %s is not an operator", ErrCompilation, k)
}
