package formula

import (
	"slices"
	"strings"

	"github.com/vk/gridcalc/internal/cellid"
)

// Marker is the leading character that turns entered text into a formula.
const Marker = "="

// Expression is an immutable compiled formula: the text as entered (marker
// included) and either its Program or the compilation error. It is safe to
// share between cells and readers without synchronization.
type Expression struct {
	text    string
	program Program
	err     error
	deps    []cellid.Position
}

// NewExpression compiles raw formula text. The leading Marker, if present, is
// kept in the text but not compiled.
func NewExpression(raw string) *Expression {
	program, err := Compile(strings.TrimPrefix(raw, Marker))
	e := &Expression{text: raw, program: program, err: err}
	if err == nil {
		e.deps = program.Deps()
	}
	return e
}

// Text returns the formula exactly as it was entered.
func (e *Expression) Text() string {
	return e.text
}

func (e *Expression) String() string {
	return e.text
}

// Err returns the compilation error, or nil if the formula compiled.
func (e *Expression) Err() error {
	return e.err
}

// Program returns a copy of the compiled program; nil if compilation failed.
func (e *Expression) Program() Program {
	return slices.Clone(e.program)
}

// Deps returns the distinct positions the formula references. A formula that
// failed to compile has no dependencies.
func (e *Expression) Deps() []cellid.Position {
	return slices.Clone(e.deps)
}

// Execute evaluates the formula against r. A formula that failed to compile
// returns its compilation error without touching the stack.
func (e *Expression) Execute(r Resolver) (int64, error) {
	if e.err != nil {
		return 0, e.err
	}
	return e.program.Execute(r)
}
