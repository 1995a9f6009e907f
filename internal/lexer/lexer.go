package lexer

import (
	"svfmt/internal/diag"
	"svfmt/internal/source"
	"svfmt/internal/token"
)

// Lexer converts raw source bytes into a restartable token sequence that
// loses no information: whitespace, comments, and directives are tokens too.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	err    *LexError
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Err returns the first fatal lexing error encountered, if any.
func (lx *Lexer) Err() *LexError {
	return lx.err
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == ' ' || ch == '\t':
		return lx.scanWhitespace()

	case ch == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return lx.tokenFrom(start, token.Newline)

	case ch == '/':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (b1 == '/' || b1 == '*') {
			return lx.scanComment()
		}
		return lx.scanOperatorOrPunct()

	case ch == '`':
		return lx.scanDirective()

	case ch == '"':
		return lx.scanString()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '\'' && lx.isBasedLiteralAfterApostrophe():
		return lx.scanNumber()

	case ch == '$':
		return lx.scanSystemIdent()

	case ch == '\\':
		return lx.scanEscapedIdent()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// ScanAll drains the lexer into a slice ending with the EOF token.
func ScanAll(file *source.File, opts Options) ([]token.Token, *LexError) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, lx.Err()
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Whitespace)
}

func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	second := lx.cursor.Bump()

	if second == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.tokenFrom(start, token.LineComment)
	}

	// Block comment: ends at the first '*/', no nesting.
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.tokenFrom(start, token.BlockComment)
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	return lx.tokenFrom(start, token.BlockComment)
}

// scanDirective consumes a compiler directive line (`define, `include, ...)
// as one opaque token up to, but not including, the newline. Multi-line
// macros continued with a trailing backslash stay a single token.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			// A backslash immediately before the newline continues the line.
			if lx.cursor.Off > 0 && lx.file.Content[lx.cursor.Off-1] == '\\' {
				lx.cursor.Bump()
				continue
			}
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Directive)
}

func (lx *Lexer) tokenFrom(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.err == nil {
		lx.err = &LexError{Reason: msg, Offset: sp.Start}
	}
	lx.report(code, sp, msg)
}
