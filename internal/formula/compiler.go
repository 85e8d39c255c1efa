package formula

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vk/gridcalc/internal/cellid"
)

// Program is a compiled formula: instructions in postfix order, ready for
// stack evaluation. A Program is never modified after Compile returns it.
type Program []Instruction

// Compile turns formula text (without the leading `=`) into a postfix Program
// using operator precedence. Multiplication and division bind tighter than
// addition and subtraction; operators of equal precedence associate to the
// left. Parentheses are not supported.
//
// Any invalid token fails the compilation with ErrCompilation.
func Compile(src string) (Program, error) {
	var out Program
	var ops []Token

	for tok := range NewTokenizer(src).All() {
		switch {
		case tok.Kind == KindInvalid:
			return nil, fmt.Errorf("%w: unexpected input at offset %d", ErrCompilation, tok.Offset)
		case !tok.IsOperator():
			out = append(out, tok)
		default:
			for len(ops) > 0 && ops[len(ops)-1].precedence() <= tok.precedence() {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}

	return out, nil
}

// Deps returns the distinct cell positions referenced by the program, in
// order of first appearance.
func (p Program) Deps() []cellid.Position {
	var deps []cellid.Position
	for _, ins := range p {
		if ins.Kind == KindCell && !slices.Contains(deps, ins.Cell) {
			deps = append(deps, ins.Cell)
		}
	}
	return deps
}

func (p Program) String() string {
	var sb strings.Builder
	for i, ins := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ins.String())
	}
	return sb.String()
}
