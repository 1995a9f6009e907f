package lexer

import "fmt"

// LexError is the only fatal lexing failure: an unterminated string or block
// comment at end of file. Everything else is representable as tokens.
type LexError struct {
	Reason string
	Offset uint32
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex: %s at offset %d", e.Reason, e.Offset)
}
