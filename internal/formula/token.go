package formula

import (
	"fmt"

	"github.com/vk/gridcalc/internal/cellid"
)

// Kind identifies the variant of a Token.
type Kind int

const (
	KindInvalid Kind = iota // lexical error
	KindNumber              // integer literal
	KindAdd                 // +
	KindSub                 // -
	KindMul                 // *
	KindDiv                 // /
	KindCell                // cell reference
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNumber:
		return "number"
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindCell:
		return "cell"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical token. Value is set for number literals and Cell
// for cell references; operators carry no payload. Offset is the byte offset
// of the token in the scanned text.
type Token struct {
	Kind   Kind
	Value  int64
	Cell   cellid.Position
	Offset int
}

// Instruction is one step of a compiled Program. It has the same shape as Token.
type Instruction = Token

// Number returns a number literal token.
func Number(v int64) Token {
	return Token{Kind: KindNumber, Value: v}
}

// Ref returns a cell reference token.
func Ref(pos cellid.Position) Token {
	return Token{Kind: KindCell, Cell: pos}
}

// Op returns an operator token of the given kind.
func Op(k Kind) Token {
	return Token{Kind: k}
}

// IsOperator reports whether the token is one of the four arithmetic operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case KindAdd, KindSub, KindMul, KindDiv:
		return true
	}
	return false
}

// precedence returns the binding strength of an operator. Lower binds tighter.
func (t Token) precedence() int {
	switch t.Kind {
	case KindMul, KindDiv:
		return 3
	case KindAdd, KindSub:
		return 4
	default:
		return 0
	}
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("%d", t.Value)
	case KindCell:
		return t.Cell.String()
	default:
		return t.Kind.String()
	}
}
