package lexer

import (
	"svfmt/internal/token"
)

// scanNumber lexes decimal, real, and based SystemVerilog literals:
// 42, 3.14, 2.5e-3, 8'hFF, 'b0101, 4'sd7, '0, 'z.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '\'' {
		lx.scanBasedTail()
		return lx.tokenFrom(start, token.Number)
	}

	lx.eatDigitRun()

	// Size directly attached to a based tail: 8'hFF.
	if lx.cursor.Peek() == '\'' && lx.isBasedLiteralAfterApostrophe() {
		lx.scanBasedTail()
		return lx.tokenFrom(start, token.Number)
	}

	// Real literals: fractional part and/or exponent.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		lx.eatDigitRun()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) {
			lx.cursor.Bump()
			lx.eatDigitRun()
		} else if (next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2)) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.eatDigitRun()
		}
	}

	return lx.tokenFrom(start, token.Number)
}

// isBasedLiteralAfterApostrophe decides whether the apostrophe under the
// cursor starts a based or fill literal rather than a cast ('() ) or an
// assignment pattern ('{ ).
func (lx *Lexer) isBasedLiteralAfterApostrophe() bool {
	b1 := lx.cursor.PeekAt(1)
	if isBaseChar(b1) {
		return true
	}
	if (b1 == 's' || b1 == 'S') && isBaseChar(lx.cursor.PeekAt(2)) {
		return true
	}
	if isUnsizedDigit(b1) && !isIdentContinueByte(lx.cursor.PeekAt(2)) {
		return true
	}
	return false
}

// scanBasedTail consumes 'sb.../'h.../'0 style tails. The digit set is
// deliberately permissive across bases; the input is assumed valid and the
// formatter never interprets the value.
func (lx *Lexer) scanBasedTail() {
	lx.cursor.Bump() // '\''
	b := lx.cursor.Peek()
	if b == 's' || b == 'S' {
		lx.cursor.Bump()
		b = lx.cursor.Peek()
	}
	if isBaseChar(b) {
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			d := lx.cursor.Peek()
			if isHex(d) || d == 'x' || d == 'X' || d == 'z' || d == 'Z' || d == '?' || d == '_' {
				lx.cursor.Bump()
				continue
			}
			break
		}
		return
	}
	if isUnsizedDigit(b) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatDigitRun() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '_' {
			break
		}
		lx.cursor.Bump()
	}
}
