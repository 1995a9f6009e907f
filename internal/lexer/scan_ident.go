package lexer

import (
	"svfmt/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}
	tok := lx.tokenFrom(start, token.Ident)
	if kind, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kind
	}
	return tok
}

// scanSystemIdent lexes $display-style system identifiers. A lone '$' is the
// unbounded-range token used in queue and covergroup syntax.
func (lx *Lexer) scanSystemIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	if !isIdentStartByte(lx.cursor.Peek()) {
		return lx.tokenFrom(start, token.Dollar)
	}
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Ident)
}

// scanEscapedIdent lexes a backslash-escaped identifier, which runs to the
// next whitespace byte.
func (lx *Lexer) scanEscapedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Ident)
}
