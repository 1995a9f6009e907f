package token

import (
	"svfmt/internal/source"
)

// Token represents a single source token. Text always holds the exact
// source bytes of the span: concatenating Text over a file's token stream
// reproduces the file byte for byte.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsWhitespace reports whether the token is a space run or a newline.
func (t Token) IsWhitespace() bool {
	return t.Kind == Whitespace || t.Kind == Newline
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsKeyword reports whether the token is a recognized SystemVerilog keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwModule && t.Kind <= KwJoin
}

// IsDataType reports whether the token names a net or variable type that can
// begin a signal declaration.
func (t Token) IsDataType() bool {
	switch t.Kind {
	case KwLogic, KwWire, KwReg, KwBit, KwByte, KwInt, KwInteger,
		KwShortint, KwLongint, KwTime, KwReal, KwGenvar:
		return true
	default:
		return false
	}
}

// IsDirection reports whether the token is a port direction keyword.
func (t Token) IsDirection() bool {
	switch t.Kind {
	case KwInput, KwOutput, KwInout:
		return true
	default:
		return false
	}
}

// IsProcedural reports whether the token begins a procedural block.
func (t Token) IsProcedural() bool {
	switch t.Kind {
	case KwAlways, KwAlwaysFF, KwAlwaysComb, KwAlwaysLatch, KwInitial, KwFinal:
		return true
	default:
		return false
	}
}

// IsCase reports whether the token begins a case statement.
func (t Token) IsCase() bool {
	switch t.Kind {
	case KwCase, KwCasez, KwCasex:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether the token can act as a binary operator inside
// an expression, for the purpose of picking a line-break point.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, Percent, EqEq, EqEqEq, BangEq,
		BangEqEq, Lt, LtEq, Gt, GtEq, Shl, Shr, Shla, Shra, Amp, AndAnd,
		Pipe, OrOr, Caret, TildeCaret, Question:
		return true
	default:
		return false
	}
}
