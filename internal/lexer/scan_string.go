package lexer

import (
	"svfmt/internal/diag"
	"svfmt/internal/token"
)

// scanString lexes a double-quoted string literal. Escapes are consumed
// blindly, so \" never terminates the literal. A newline or EOF before the
// closing quote reports an unterminated string, which is fatal for the file.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.tokenFrom(start, token.String)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return lx.tokenFrom(start, token.String)
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.tokenFrom(start, token.String)
}
