package formula

import (
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/vk/gridcalc/internal/cellid"
)

// Tokenizer scans formula text (without the leading `=`) into Tokens. Reading
// advances an internal cursor only; the source text is never modified, and
// Reset rewinds to the beginning.
type Tokenizer struct {
	src string
	pos int
}

// NewTokenizer creates a tokenizer positioned at the start of src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Reset rewinds the cursor to the start of the source text.
func (t *Tokenizer) Reset() {
	t.pos = 0
}

// Next returns the next token. The boolean is false once the input is
// exhausted, in which case the token is meaningless.
func (t *Tokenizer) Next() (Token, bool) {
	t.skipSpace()
	if t.pos >= len(t.src) {
		return Token{}, false
	}

	start := t.pos
	ch := t.src[t.pos]

	switch {
	case isDigit(ch):
		end := t.pos
		for end < len(t.src) && isDigit(t.src[end]) {
			end++
		}
		lit := t.src[t.pos:end]
		t.pos = end
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Token{Kind: KindInvalid, Offset: start}, true
		}
		return Token{Kind: KindNumber, Value: v, Offset: start}, true

	case ch == '+':
		t.pos++
		return Token{Kind: KindAdd, Offset: start}, true
	case ch == '-':
		t.pos++
		return Token{Kind: KindSub, Offset: start}, true
	case ch == '*':
		t.pos++
		return Token{Kind: KindMul, Offset: start}, true
	case ch == '/':
		t.pos++
		return Token{Kind: KindDiv, Offset: start}, true

	case ch >= 'A' && ch <= 'Z':
		t.pos++
		if t.pos >= len(t.src) || t.src[t.pos] < '1' || t.src[t.pos] > '9' {
			return Token{Kind: KindInvalid, Offset: start}, true
		}
		row := int(t.src[t.pos] - '1')
		t.pos++
		return Token{Kind: KindCell, Cell: cellid.New(int(ch-'A'), row), Offset: start}, true
	}

	_, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += size
	return Token{Kind: KindInvalid, Offset: start}, true
}

// All returns an iterator over every token of the source text. Each call
// starts from the beginning, independently of the cursor used by Next.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		scan := &Tokenizer{src: t.src}
		for {
			tok, ok := scan.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) skipSpace() {
	for t.pos < len(t.src) {
		r, size := utf8.DecodeRuneInString(t.src[t.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		t.pos += size
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
