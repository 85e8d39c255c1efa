// Package formula turns formula text into a reusable program and runs it.
//
// The pipeline has four parts:
//
//   - Tokenizer: a lazy, restartable scanner producing number literals,
//     the four arithmetic operators, single-letter/single-digit cell
//     references (`A1`..`Z9`) and an invalid marker for anything else.
//   - Compile: an operator-precedence (shunting-yard) pass that turns the
//     token stream into a postfix Program. Any invalid token fails the whole
//     compilation with ErrCompilation; no partial program is produced.
//   - Expression: the immutable pairing of the original text and its compile
//     result. Cells share it by pointer; the evaluation result is cached by
//     the owner, never inside the Expression.
//   - Execute: a stack machine that evaluates a Program, resolving cell
//     operands through a Resolver (normally the sheet).
//
// All values are 64-bit signed integers. There are no parentheses, ranges,
// functions or floating-point numbers.
package formula
