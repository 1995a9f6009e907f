package layout

import (
	"svfmt/internal/token"
)

// classifyModule handles `module name [#(params)] [(ports)] ;`. The header,
// parameter list, and port list become separate adjacent units so the
// planner can align each region independently. Any shape mismatch falls
// back to one opaque statement.
func (c *classifier) classifyModule(i, j int) int {
	c.inModule = true

	nameIdx := c.nextCode(j + 1)
	if c.kind(nameIdx) != token.Ident {
		return c.opaqueStatement(i, j)
	}

	k := c.nextCode(nameIdx + 1)

	// Bodiless header: module foo;
	if c.kind(k) == token.Semicolon {
		end, comment := c.eatLineTail(k + 1)
		c.add(Unit{
			Kind:    ModuleHeader,
			Lo:      i,
			Hi:      end,
			Comment: comment,
			Header:  &HeaderInfo{Keyword: j, Name: nameIdx, HasBody: false},
		})
		return end
	}

	var (
		paramLo, paramHi int
		params           *ParamList
	)

	if c.kind(k) == token.Hash {
		p := c.nextCode(k + 1)
		if c.kind(p) != token.LParen {
			return c.opaqueStatement(i, j)
		}
		close := c.matchParen(p)
		if c.err != nil {
			return len(c.toks) - 1
		}
		pl, ok := c.parseParamList(p+1, close-1)
		if !ok {
			return c.opaqueStatement(i, j)
		}
		paramLo, paramHi, params = k, close, pl
		k = c.nextCode(close)
	}

	if c.kind(k) != token.LParen {
		return c.opaqueStatement(i, j)
	}
	portClose := c.matchParen(k)
	if c.err != nil {
		return len(c.toks) - 1
	}
	semi := c.nextCode(portClose)
	if c.kind(semi) != token.Semicolon {
		return c.opaqueStatement(i, j)
	}
	ports, ok := c.parsePortList(k+1, portClose-1)
	if !ok {
		return c.opaqueStatement(i, j)
	}
	end, comment := c.eatLineTail(semi + 1)

	headerHi := k
	if params != nil {
		headerHi = paramLo
	}
	c.add(Unit{
		Kind:   ModuleHeader,
		Lo:     i,
		Hi:     headerHi,
		Header: &HeaderInfo{Keyword: j, Name: nameIdx, HasBody: true},
	})
	portLo := headerHi
	if params != nil {
		c.add(Unit{Kind: ParameterBlock, Lo: paramLo, Hi: paramHi, Params: params})
		portLo = paramHi
	}
	c.add(Unit{Kind: PortBlock, Lo: portLo, Hi: end, Comment: comment, Ports: ports})
	return end
}

func (c *classifier) classifyModuleEnd(i, j int) int {
	c.inModule = false
	end := c.eatEndLabel(j + 1)
	end, comment := c.eatLineTail(end)
	c.add(Unit{Kind: ModuleEnd, Lo: i, Hi: end, Comment: comment})
	return end
}

func (c *classifier) classifySignalDecl(i, j int) int {
	semiEnd := c.consumeToSemi(j)
	if c.err != nil {
		return len(c.toks) - 1
	}
	code, sawLine := c.codeRange(j, semiEnd-1)
	if sawLine {
		end := c.opaqueLine(semiEnd)
		c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
		return end
	}
	decl, ok := c.parseDeclTokens(code)
	if !ok {
		end := c.opaqueLine(semiEnd)
		c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
		return end
	}
	end, comment := c.eatLineTail(semiEnd)
	decl.Comment = comment
	c.add(Unit{Kind: SignalDecl, Lo: i, Hi: end, Decl: decl})
	return end
}

// tryUserTypeDecl recognizes declarations whose type is a user-defined
// name: `state_t s;`, `my_pkg::cfg_t cfg = DEFAULT;`. It refuses anything
// containing parentheses, which keeps it from eating instantiations.
func (c *classifier) tryUserTypeDecl(i, j int) (int, bool) {
	depth := 0
	k := j
	for {
		switch c.kind(k) {
		case token.EOF, token.KwEndmodule, token.KwEnd, token.KwBegin,
			token.LParen, token.Directive:
			return 0, false
		case token.LBracket, token.LBrace:
			depth++
		case token.RBracket, token.RBrace:
			depth--
		case token.Semicolon:
			if depth <= 0 {
				code, sawLine := c.codeRange(j, k)
				if sawLine || len(code) < 2 {
					return 0, false
				}
				decl, ok := c.parseDeclTokens(code)
				if !ok {
					return 0, false
				}
				end, comment := c.eatLineTail(k + 1)
				decl.Comment = comment
				c.add(Unit{Kind: SignalDecl, Lo: i, Hi: end, Decl: decl})
				return end, true
			}
		}
		k++
	}
}

func (c *classifier) classifyAssign(i, j int) int {
	semiEnd := c.consumeToSemi(j)
	if c.err != nil {
		return len(c.toks) - 1
	}
	code, sawLine := c.codeRange(j, semiEnd-1)
	if sawLine {
		end := c.opaqueLine(semiEnd)
		c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
		return end
	}

	// code[0] is the assign keyword; find the top-level `=`.
	eq := -1
	depth := 0
	for pos, idx := range code[1:] {
		switch c.toks[idx].Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Assign:
			if depth == 0 && eq < 0 {
				eq = pos + 1
			}
		}
	}
	if eq < 0 || eq == 1 || eq == len(code)-1 {
		end := c.opaqueLine(semiEnd)
		c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
		return end
	}

	end, comment := c.eatLineTail(semiEnd)
	c.add(Unit{Kind: AssignStmt, Lo: i, Hi: end, Assign: &AssignInfo{
		Lhs:     code[1:eq],
		Rhs:     code[eq+1:],
		Comment: comment,
	}})
	return end
}

func (c *classifier) classifyProcedural(i, j int) int {
	end := c.consumeStatement(j + 1)
	if c.err != nil {
		return len(c.toks) - 1
	}
	end, _ = c.eatLineTail(end)
	c.add(Unit{Kind: ProceduralBlock, Lo: i, Hi: end})
	return end
}

func (c *classifier) classifyCase(i, j int) int {
	start := j
	if !c.tok(start).IsCase() {
		start = c.nextCode(j + 1)
	}
	end := c.consumeCaseRegion(start)
	if c.err != nil {
		return len(c.toks) - 1
	}
	end = c.eatEndLabel(end)
	end, _ = c.eatLineTail(end)
	c.add(Unit{Kind: CaseBlock, Lo: i, Hi: end})
	return end
}

func (c *classifier) classifyGenerate(i, j int) int {
	depth := 0
	k := j
	for {
		switch c.kind(k) {
		case token.EOF:
			c.setErr("unbalanced generate/endgenerate", len(c.units))
			return k
		case token.KwGenerate:
			depth++
		case token.KwEndgenerate:
			depth--
			if depth == 0 {
				end, _ := c.eatLineTail(k + 1)
				c.add(Unit{Kind: GenerateBlock, Lo: i, Hi: end})
				return end
			}
		}
		k++
	}
}
