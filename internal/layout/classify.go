package layout

import (
	"svfmt/internal/token"
)

// Classify segments the token stream into an ordered list of units that
// partition it. The slice must end with an EOF token (lexer.ScanAll output).
// On a structurally ambiguous input it returns a ClassifyError and no units.
func Classify(toks []token.Token) ([]Unit, *ClassifyError) {
	c := &classifier{toks: toks}
	c.run()
	if c.err != nil {
		return nil, c.err
	}
	return c.units, nil
}

type classifier struct {
	toks     []token.Token
	units    []Unit
	inModule bool
	err      *ClassifyError
}

func (c *classifier) run() {
	i := 0
	for c.err == nil && c.kind(i) != token.EOF {
		next := c.classifyTop(i)
		if next <= i {
			// Defensive: never loop in place.
			next = c.opaqueLine(i)
			if next <= i {
				break
			}
		}
		i = next
	}
}

func (c *classifier) kind(i int) token.Kind {
	if i < 0 || i >= len(c.toks) {
		return token.EOF
	}
	return c.toks[i].Kind
}

func (c *classifier) tok(i int) token.Token {
	if i < 0 || i >= len(c.toks) {
		return token.Token{Kind: token.EOF}
	}
	return c.toks[i]
}

// nextCode returns the index of the first token at or after i that is not
// whitespace or a comment.
func (c *classifier) nextCode(i int) int {
	for i < len(c.toks) {
		switch c.toks[i].Kind {
		case token.Whitespace, token.Newline, token.LineComment, token.BlockComment:
			i++
		default:
			return i
		}
	}
	return len(c.toks) - 1
}

func (c *classifier) setErr(reason string, unitIndex int) {
	if c.err == nil {
		c.err = &ClassifyError{Reason: reason, UnitIndex: unitIndex}
	}
}

func (c *classifier) add(u Unit) {
	if rerendered(u.Kind) && !c.commentsAccounted(u) {
		u = Unit{Kind: Opaque, Lo: u.Lo, Hi: u.Hi}
	}
	c.units = append(c.units, u)
}

// classifyTop classifies one unit starting at line-start index i and returns
// the index just past it.
func (c *classifier) classifyTop(i int) int {
	if end, ok := c.blankRun(i); ok {
		c.add(Unit{Kind: BlankLine, Lo: i, Hi: end})
		return end
	}

	j := i
	if c.kind(j) == token.Whitespace {
		j++
	}

	switch k := c.kind(j); {
	case k == token.Directive:
		return c.opaqueLineUnit(i)

	case k == token.LineComment || k == token.BlockComment:
		if end, ok := c.commentBlock(i); ok {
			c.add(Unit{Kind: CommentBlock, Lo: i, Hi: end})
			return end
		}
		return c.opaqueLineUnit(i)

	case k == token.KwModule:
		return c.classifyModule(i, j)

	case k == token.KwEndmodule:
		return c.classifyModuleEnd(i, j)

	case k == token.KwTypedef:
		return c.classifyTypedef(i, j)

	case c.tok(j).IsDataType() || k == token.KwParameter || k == token.KwLocalparam:
		return c.classifySignalDecl(i, j)

	case k == token.KwAssign:
		return c.classifyAssign(i, j)

	case c.tok(j).IsProcedural():
		return c.classifyProcedural(i, j)

	case c.tok(j).IsCase():
		return c.classifyCase(i, j)

	case k == token.KwUnique || k == token.KwPriority:
		if c.tok(c.nextCode(j + 1)).IsCase() {
			return c.classifyCase(i, j)
		}
		return c.opaqueStatement(i, j)

	case k == token.KwGenerate:
		return c.classifyGenerate(i, j)

	case k == token.KwFor || k == token.KwIf:
		// Bare generate loop/conditional at module level.
		if c.inModule {
			end := c.consumeStatement(j)
			end, _ = c.eatLineTail(end)
			c.add(Unit{Kind: GenerateBlock, Lo: i, Hi: end})
			return end
		}
		return c.opaqueStatement(i, j)

	case k == token.KwFunction:
		return c.opaqueKeywordPair(i, j, token.KwFunction, token.KwEndfunction)

	case k == token.KwTask:
		return c.opaqueKeywordPair(i, j, token.KwTask, token.KwEndtask)

	case k == token.Ident:
		if end, ok := c.tryInstance(i, j); ok {
			return end
		}
		if end, ok := c.tryUserTypeDecl(i, j); ok {
			return end
		}
		return c.opaqueStatement(i, j)

	default:
		return c.opaqueStatement(i, j)
	}
}

// blankRun detects one or more blank lines starting at line-start i.
func (c *classifier) blankRun(i int) (end int, ok bool) {
	j := i
	for {
		k := j
		if c.kind(k) == token.Whitespace {
			k++
		}
		switch c.kind(k) {
		case token.Newline:
			j = k + 1
			ok = true
			continue
		case token.EOF:
			if k > i {
				return k, true
			}
			return i, ok
		default:
			return j, ok
		}
	}
}

// commentBlock collects consecutive whole-line comments. It commits a line
// only after seeing its newline, so a comment followed by code on the same
// line is not included.
func (c *classifier) commentBlock(i int) (end int, ok bool) {
	j := i
	for {
		m := j
		if c.kind(m) == token.Whitespace {
			m++
		}
		if !c.tok(m).IsComment() {
			return j, j > i
		}
		for c.tok(m).IsComment() || c.kind(m) == token.Whitespace {
			m++
		}
		switch c.kind(m) {
		case token.Newline:
			j = m + 1
		case token.EOF:
			return m, true
		default:
			return j, j > i
		}
	}
}

// opaqueLine consumes through the end of the current line.
func (c *classifier) opaqueLine(i int) int {
	j := i
	for {
		switch c.kind(j) {
		case token.EOF:
			return j
		case token.Newline:
			return j + 1
		default:
			j++
		}
	}
}

func (c *classifier) opaqueLineUnit(i int) int {
	end := c.opaqueLine(i)
	c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
	return end
}

// opaqueStatement consumes a statement it cannot pattern-match: up to a
// semicolon at bracket depth zero, stopping early at EOF or before a
// module-closing keyword.
func (c *classifier) opaqueStatement(i, j int) int {
	depth := 0
	k := j
	for {
		switch c.kind(k) {
		case token.EOF:
			c.add(Unit{Kind: Opaque, Lo: i, Hi: k})
			return k
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Semicolon:
			if depth <= 0 {
				end := c.opaqueLine(k + 1)
				c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
				return end
			}
		case token.KwEndmodule, token.KwEndgenerate:
			if depth <= 0 {
				c.add(Unit{Kind: Opaque, Lo: i, Hi: k})
				return k
			}
		}
		k++
	}
}

// opaqueKeywordPair passes through a region delimited by a keyword pair
// (function/endfunction, task/endtask), which the formatter does not touch.
func (c *classifier) opaqueKeywordPair(i, j int, open, close token.Kind) int {
	depth := 0
	k := j
	for {
		switch c.kind(k) {
		case token.EOF:
			c.setErr("unterminated "+c.tok(j).Text+" region", len(c.units))
			return k
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				end := c.opaqueLine(k + 1)
				c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
				return end
			}
		}
		k++
	}
}

// eatLineTail consumes optional whitespace, an optional trailing line
// comment, and the line's newline. It returns the end index and the index
// of the trailing comment (-1 when absent).
func (c *classifier) eatLineTail(from int) (end, comment int) {
	comment = -1
	k := from
	if c.kind(k) == token.Whitespace {
		k++
	}
	if c.kind(k) == token.LineComment {
		comment = k
		k++
		if c.kind(k) == token.Whitespace {
			k++
		}
	}
	if c.kind(k) == token.Newline {
		return k + 1, comment
	}
	if c.kind(k) == token.EOF {
		return k, comment
	}
	// Code continues on the same line; stop right after the terminator and
	// let the next unit pick it up.
	if comment >= 0 {
		return comment, -1
	}
	return from, -1
}

// matchParen returns the index just past the parenthesis matching the
// LParen at i.
func (c *classifier) matchParen(i int) int {
	depth := 0
	k := i
	for {
		switch c.kind(k) {
		case token.EOF:
			c.setErr("unbalanced parenthesis", len(c.units))
			return k
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return k + 1
			}
		}
		k++
	}
}

// consumeStatement consumes one procedural statement starting at or after i:
// a begin/end or fork/join block, a case statement, an if/else chain, a
// loop, or a simple semicolon-terminated statement.
func (c *classifier) consumeStatement(i int) int {
	j := c.nextCode(i)
	t := c.tok(j)
	switch {
	case t.Kind == token.KwBegin || t.Kind == token.KwFork:
		return c.consumeBlock(j)

	case t.IsCase():
		return c.consumeCaseRegion(j)

	case t.Kind == token.KwUnique || t.Kind == token.KwPriority:
		return c.consumeStatement(j + 1)

	case t.Kind == token.KwIf:
		k := c.nextCode(j + 1)
		if c.kind(k) == token.LParen {
			k = c.matchParen(k)
		}
		end := c.consumeStatement(k)
		e := c.nextCode(end)
		if c.kind(e) == token.KwElse {
			return c.consumeStatement(e + 1)
		}
		return end

	case t.Kind == token.KwFor || t.Kind == token.KwWhile:
		k := c.nextCode(j + 1)
		if c.kind(k) == token.LParen {
			k = c.matchParen(k)
		}
		return c.consumeStatement(k)

	case t.Kind == token.At:
		// Event control prefixing a statement.
		k := c.nextCode(j + 1)
		if c.kind(k) == token.LParen {
			k = c.matchParen(k)
		} else {
			k++ // @* or @ident
		}
		return c.consumeStatement(k)

	case t.Kind == token.EOF:
		c.setErr("unterminated statement", len(c.units))
		return j

	default:
		return c.consumeToSemi(j)
	}
}

// consumeBlock consumes a begin/end (or fork/join) region by keyword
// counting, plus an optional `: label` after the closer.
func (c *classifier) consumeBlock(j int) int {
	depth := 0
	k := j
	for {
		switch c.kind(k) {
		case token.EOF:
			c.setErr("unbalanced begin/end", len(c.units))
			return k
		case token.KwBegin, token.KwFork:
			depth++
		case token.KwEnd, token.KwJoin:
			depth--
			if depth == 0 {
				return c.eatEndLabel(k + 1)
			}
		}
		k++
	}
}

// consumeCaseRegion consumes case ... endcase with nesting.
func (c *classifier) consumeCaseRegion(j int) int {
	depth := 0
	k := j
	for {
		t := c.tok(k)
		switch {
		case t.Kind == token.EOF:
			c.setErr("unbalanced case/endcase", len(c.units))
			return k
		case t.IsCase():
			depth++
		case t.Kind == token.KwEndcase:
			depth--
			if depth == 0 {
				return k + 1
			}
		}
		k++
	}
}

// consumeToSemi consumes to a semicolon at bracket depth zero.
func (c *classifier) consumeToSemi(j int) int {
	depth := 0
	k := j
	for {
		switch c.kind(k) {
		case token.EOF:
			c.setErr("missing statement terminator", len(c.units))
			return k
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Semicolon:
			if depth <= 0 {
				return k + 1
			}
		}
		k++
	}
}

// eatEndLabel consumes an optional `: name` after end/endcase/endmodule.
func (c *classifier) eatEndLabel(k int) int {
	j := c.nextCode(k)
	if c.kind(j) == token.Colon {
		n := c.nextCode(j + 1)
		if c.kind(n) == token.Ident {
			return n + 1
		}
	}
	return k
}

// codeRange lists the indexes of non-whitespace tokens in [lo, hi).
// Block comments are kept (they travel inside expressions); line comments
// set sawLine so callers can fall back to opaque, since re-joining tokens
// after a line comment would comment them out.
func (c *classifier) codeRange(lo, hi int) (idx []int, sawLine bool) {
	for k := lo; k < hi; k++ {
		switch c.toks[k].Kind {
		case token.Whitespace, token.Newline:
		case token.LineComment:
			sawLine = true
		default:
			idx = append(idx, k)
		}
	}
	return idx, sawLine
}
