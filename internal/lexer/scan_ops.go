package lexer

import (
	"svfmt/internal/token"
)

// multi-byte operators, longest first so matching is greedy.
var multiOps = []struct {
	text string
	kind token.Kind
}{
	{"<<<", token.Shla},
	{">>>", token.Shra},
	{"===", token.EqEqEq},
	{"!==", token.BangEqEq},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"**", token.StarStar},
	{"->", token.Arrow},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"::", token.ColonColon},
	{"~^", token.TildeCaret},
	{"^~", token.TildeCaret},
	{".*", token.DotStar},
}

var singleOps = map[byte]token.Kind{
	'+':  token.Plus,
	'-':  token.Minus,
	'*':  token.Star,
	'/':  token.Slash,
	'%':  token.Percent,
	'=':  token.Assign,
	'!':  token.Bang,
	'<':  token.Lt,
	'>':  token.Gt,
	'&':  token.Amp,
	'|':  token.Pipe,
	'^':  token.Caret,
	'~':  token.Tilde,
	'?':  token.Question,
	':':  token.Colon,
	';':  token.Semicolon,
	',':  token.Comma,
	'.':  token.Dot,
	'#':  token.Hash,
	'@':  token.At,
	'\'': token.Apostrophe,
	'(':  token.LParen,
	')':  token.RParen,
	'{':  token.LBrace,
	'}':  token.RBrace,
	'[':  token.LBracket,
	']':  token.RBracket,
}

// scanOperatorOrPunct matches the longest operator at the cursor. A byte
// that matches nothing becomes a single Unknown token and is passed through
// untouched; the lexer never rejects on style.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:]

	for _, op := range multiOps {
		if len(rest) >= len(op.text) && string(rest[:len(op.text)]) == op.text {
			for range op.text {
				lx.cursor.Bump()
			}
			return lx.tokenFrom(start, op.kind)
		}
	}

	b := lx.cursor.Bump()
	if kind, ok := singleOps[b]; ok {
		return lx.tokenFrom(start, kind)
	}
	return lx.tokenFrom(start, token.Unknown)
}
