package formula

import "errors"

// Evaluation and compilation failures. A cell caches exactly one of these
// (possibly wrapped with positional context) when it cannot hold a value.
var (
	// ErrCompilation means the formula text could not be tokenized or compiled.
	ErrCompilation = errors.New("compilation error")

	// ErrNotImplemented means a cell reference was evaluated without a
	// resolver. References must resolve through the sheet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrOutOfStack means an operator found fewer than two operands, or the
	// program left nothing on the stack.
	ErrOutOfStack = errors.New("out of stack")

	// ErrDivideByZero is returned for integer division by zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrNotExecuted marks a formula that has not been evaluated by the sheet yet.
	ErrNotExecuted = errors.New("not executed")

	// ErrCyclic means committing the formula would create a circular reference.
	ErrCyclic = errors.New("cyclic reference")

	// ErrCellNotFound means a referenced cell has no numeric value.
	ErrCellNotFound = errors.New("cell not found")
)

// Result is the cached outcome of evaluating a formula: either a value or an error.
type Result struct {
	Value int64
	Err   error
}

// NotExecuted returns the placeholder result of a formula that has not gone
// through the sheet's evaluation step.
func NotExecuted() Result {
	return Result{Err: ErrNotExecuted}
}

// ResultOf bundles the return values of an Execute call.
func ResultOf(v int64, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: v}
}

// OK reports whether the result holds a value.
func (r Result) OK() bool {
	return r.Err == nil
}
