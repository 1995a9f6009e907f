package format

import (
	"strings"

	"svfmt/internal/source"
	"svfmt/internal/token"
)

// Break candidate priorities, best first: after a comma, after a binary
// operator, after a concatenation's opening brace.
const (
	brkNone uint8 = iota
	brkComma
	brkOp
	brkBrace
)

// seg is one wrappable piece of a planned line. Its text carries any leading
// separator space; a continuation line drops that space.
type seg struct {
	text string
	brk  uint8
}

func segWidth(s seg, lineStart bool) int {
	if lineStart {
		return width(strings.TrimPrefix(s.text, " "))
	}
	return width(s.text)
}

// writeSegs appends the segments to the current line, breaking when the line
// limit would be exceeded: at the last comma that fits, else the last binary
// operator, else the last open brace, else at the next candidate anywhere.
// Continuation lines start at contCol. A stretch with no candidate at all is
// emitted over-length and flagged.
func (r *renderer) writeSegs(segs []seg, contCol int, primary source.Span) {
	start := 0
	for start < len(segs) {
		col := r.w.Col()
		last := [4]int{-1, -1, -1, -1}
		i := start
		for i < len(segs) {
			sw := segWidth(segs[i], i == start && start > 0)
			if col+sw > r.opts.LineLimit && i > start {
				break
			}
			col += sw
			if b := segs[i].brk; b != brkNone {
				last[b] = i
			}
			i++
		}
		if i == len(segs) {
			r.flushSegs(segs[start:], start > 0)
			return
		}

		br := last[brkComma]
		if br < 0 {
			br = last[brkOp]
		}
		if br < 0 {
			br = last[brkBrace]
		}
		if br < 0 {
			// Nothing fits below the limit; take the next candidate even
			// though the line stays long.
			for j := i; j < len(segs); j++ {
				if segs[j].brk != brkNone {
					br = j
					break
				}
			}
		}
		if br < 0 {
			r.flushSegs(segs[start:], start > 0)
			return
		}

		r.flushSegs(segs[start:br+1], start > 0)
		r.endLine(primary)
		r.w.Spaces(contCol)
		start = br + 1
	}
}

func (r *renderer) flushSegs(segs []seg, contLine bool) {
	for i, s := range segs {
		text := s.text
		if contLine && i == 0 {
			text = strings.TrimPrefix(text, " ")
		}
		r.w.WriteString(text)
	}
}

// exprSegs converts expression tokens into segments with deterministic
// spacing: binary operators spaced, unary operators tight to their operand,
// calls and selects tight, commas followed by a space.
func (r *renderer) exprSegs(idxs []int) []seg {
	segs := make([]seg, 0, len(idxs))
	var prev token.Token
	havePrev := false
	tightAfter := false
	bracketDepth := 0

	for _, idx := range idxs {
		t := r.toks[idx]

		sp := havePrev && !tightAfter && exprSpace(prev, t, bracketDepth)
		text := t.Text
		if sp {
			text = " " + text
		}

		brk := brkNone
		binary := t.IsBinaryOp() && havePrev && isOperand(prev)
		switch {
		case t.Kind == token.Comma:
			brk = brkComma
		case binary:
			brk = brkOp
		case t.Kind == token.LBrace:
			brk = brkBrace
		}
		segs = append(segs, seg{text: text, brk: brk})

		switch t.Kind {
		case token.LParen, token.LBrace, token.Dot, token.ColonColon,
			token.Apostrophe, token.Hash:
			tightAfter = true
		case token.LBracket:
			tightAfter = true
			bracketDepth++
		case token.RBracket:
			tightAfter = false
			bracketDepth--
		default:
			// A unary operator binds tight to its operand.
			tightAfter = isUnaryOp(t) && !binary
		}
		prev = t
		havePrev = true
	}
	return segs
}

// exprSpace reports whether a space separates prev and cur inside an
// expression. Tightness after prev (open brackets, dots, unary operators)
// is handled by the caller.
func exprSpace(prev, cur token.Token, bracketDepth int) bool {
	switch cur.Kind {
	case token.RParen, token.RBracket, token.RBrace, token.Comma,
		token.Semicolon, token.ColonColon, token.Dot, token.Apostrophe,
		token.LBracket, token.PlusPlus, token.MinusMinus:
		return false
	case token.LParen:
		// Calls and casts are tight; a parenthesized operand after an
		// operator or keyword is not.
		switch prev.Kind {
		case token.Ident, token.RParen, token.RBracket:
			return false
		}
		return true
	case token.LBrace:
		// Replication count binds tight: {4{...}}.
		if prev.Kind == token.Number {
			return false
		}
		return true
	case token.Colon:
		return bracketDepth == 0
	}
	if prev.Kind == token.Colon && bracketDepth > 0 {
		return false
	}
	return true
}

func isOperand(t token.Token) bool {
	switch t.Kind {
	case token.Ident, token.Number, token.String,
		token.RParen, token.RBracket, token.RBrace:
		return true
	default:
		return false
	}
}

func isUnaryOp(t token.Token) bool {
	switch t.Kind {
	case token.Plus, token.Minus, token.Amp, token.Pipe, token.Caret,
		token.Tilde, token.TildeCaret, token.Bang:
		return true
	default:
		return false
	}
}

// exprString renders expression tokens to a single string with the same
// spacing rules as exprSegs.
func (r *renderer) exprString(idxs []int) string {
	var b strings.Builder
	for _, s := range r.exprSegs(idxs) {
		b.WriteString(s.text)
	}
	return b.String()
}
