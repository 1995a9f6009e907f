package layout

import (
	"svfmt/internal/token"
)

// listItem is one comma-separated element of a bracketed list, reduced to
// its significant token indexes plus an optional trailing line comment.
type listItem struct {
	code    []int
	comment int
}

// splitItems walks the token range [lo, hi) of a list body and splits it on
// commas at bracket depth zero. A line comment is accepted only in trailing
// position (after an item, before its line ends); a standalone comment line
// inside the list makes the shape ambiguous and fails the split.
func (c *classifier) splitItems(lo, hi int) ([]listItem, bool) {
	var items []listItem
	cur := listItem{comment: -1}
	lastFlushed := -1
	depth := 0

	flush := func() {
		items = append(items, cur)
		lastFlushed = len(items) - 1
		cur = listItem{comment: -1}
	}

	for k := lo; k < hi; k++ {
		switch c.toks[k].Kind {
		case token.Whitespace:
		case token.Newline:
			lastFlushed = -1
		case token.LineComment:
			switch {
			case len(cur.code) > 0 && cur.comment < 0:
				cur.comment = k
			case lastFlushed >= 0 && items[lastFlushed].comment < 0:
				items[lastFlushed].comment = k
			default:
				return nil, false
			}
		case token.Comma:
			if depth == 0 {
				if len(cur.code) == 0 {
					return nil, false
				}
				flush()
			} else {
				cur.code = append(cur.code, k)
			}
		case token.LParen, token.LBracket, token.LBrace:
			if cur.comment >= 0 {
				return nil, false
			}
			depth++
			cur.code = append(cur.code, k)
		case token.RParen, token.RBracket, token.RBrace:
			if cur.comment >= 0 {
				return nil, false
			}
			depth--
			cur.code = append(cur.code, k)
		default:
			if cur.comment >= 0 {
				// Code resumed after an inline // comment: rejoining the
				// tokens would comment it out.
				return nil, false
			}
			cur.code = append(cur.code, k)
		}
	}
	if len(cur.code) > 0 {
		flush()
	}
	return items, true
}

// splitNameDims splits an item's tail into (name, unpacked dimensions): the
// trailing tokens must be zero or more balanced bracket groups preceded by
// an identifier. Returns ok=false on any other shape.
func (c *classifier) splitNameDims(code []int) (name int, typeEnd int, unpacked []int, ok bool) {
	end := len(code)
	for end > 0 && c.toks[code[end-1]].Kind == token.RBracket {
		depth := 0
		p := end - 1
		for p >= 0 {
			switch c.toks[code[p]].Kind {
			case token.RBracket:
				depth++
			case token.LBracket:
				depth--
			}
			if depth == 0 {
				break
			}
			p--
		}
		if p < 0 || depth != 0 {
			return 0, 0, nil, false
		}
		end = p
	}
	if end == 0 || c.toks[code[end-1]].Kind != token.Ident {
		return 0, 0, nil, false
	}
	return code[end-1], end - 1, code[end:], true
}

// parsePortList parses the items of an ANSI port list body [lo, hi).
func (c *classifier) parsePortList(lo, hi int) (*PortList, bool) {
	items, ok := c.splitItems(lo, hi)
	if !ok {
		return nil, false
	}
	pl := &PortList{Items: make([]PortItem, 0, len(items))}
	for _, it := range items {
		code := it.code
		dir := -1
		if len(code) > 0 && c.toks[code[0]].IsDirection() {
			dir = code[0]
			code = code[1:]
		}
		name, typeEnd, unpacked, ok := c.splitNameDims(code)
		if !ok {
			return nil, false
		}
		pl.Items = append(pl.Items, PortItem{
			Dir:      dir,
			Type:     code[:typeEnd],
			Name:     name,
			Unpacked: unpacked,
			Comment:  it.comment,
		})
	}
	return pl, true
}

// parseParamList parses the items of a #(...) parameter list body [lo, hi).
func (c *classifier) parseParamList(lo, hi int) (*ParamList, bool) {
	items, ok := c.splitItems(lo, hi)
	if !ok {
		return nil, false
	}
	pl := &ParamList{Items: make([]ParamItem, 0, len(items))}
	for _, it := range items {
		code := it.code
		kw := -1
		if len(code) > 0 {
			switch c.toks[code[0]].Kind {
			case token.KwParameter, token.KwLocalparam:
				kw = code[0]
				code = code[1:]
			}
		}
		eq := topLevelIndex(c.toks, code, token.Assign)
		item := ParamItem{Keyword: kw, Comment: it.comment}
		if eq >= 0 {
			if eq == 0 || eq == len(code)-1 ||
				c.toks[code[eq-1]].Kind != token.Ident {
				return nil, false
			}
			item.Type = code[:eq-1]
			item.Name = code[eq-1]
			item.Value = code[eq+1:]
		} else {
			name, typeEnd, unpacked, ok := c.splitNameDims(code)
			if !ok || len(unpacked) > 0 {
				return nil, false
			}
			item.Type = code[:typeEnd]
			item.Name = name
		}
		pl.Items = append(pl.Items, item)
	}
	return pl, true
}

// topLevelIndex returns the position in code of the first token of the given
// kind at bracket depth zero, or -1.
func topLevelIndex(toks []token.Token, code []int, want token.Kind) int {
	depth := 0
	for pos, idx := range code {
		switch toks[idx].Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		default:
			if depth == 0 && toks[idx].Kind == want {
				return pos
			}
		}
	}
	return -1
}

// parseDeclTokens interprets a declaration statement's significant tokens
// (terminator excluded). The name is the last bracket-depth-zero identifier
// before the first top-level `=` or `,`; everything before it is the type,
// everything after it is the trail (dimensions, initializer, extra names).
func (c *classifier) parseDeclTokens(code []int) (*DeclInfo, bool) {
	depth := 0
	name := -1
	namePos := -1
scan:
	for pos, idx := range code {
		switch c.toks[idx].Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		case token.Assign, token.Comma:
			if depth == 0 {
				break scan
			}
		case token.Ident:
			if depth == 0 {
				name = idx
				namePos = pos
			}
		}
	}
	if name < 0 || namePos == 0 {
		return nil, false
	}
	return &DeclInfo{
		Type:    code[:namePos],
		Name:    name,
		Trail:   code[namePos+1:],
		Comment: -1,
	}, true
}

// scanParen returns the index just past the RParen matching the LParen at i,
// without reporting an error on imbalance.
func (c *classifier) scanParen(i int) (int, bool) {
	depth := 0
	k := i
	for {
		switch c.kind(k) {
		case token.EOF:
			return k, false
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return k + 1, true
			}
		}
		k++
	}
}

// tryInstance matches a module instantiation:
//
//	master [#(.P(v), ...)] name (.port(expr), ...) ;
//
// Only fully named connection lists qualify; positional connections, array
// instances, and implicit .name shorthand fall through to opaque handling.
func (c *classifier) tryInstance(i, j int) (int, bool) {
	master := j
	k := c.nextCode(j + 1)

	var paramConns []Conn
	if c.kind(k) == token.Hash {
		p := c.nextCode(k + 1)
		if c.kind(p) != token.LParen {
			return 0, false
		}
		pc, ok := c.scanParen(p)
		if !ok {
			return 0, false
		}
		paramConns, _, ok = c.parseConnList(p+1, pc-1)
		if !ok {
			return 0, false
		}
		k = c.nextCode(pc)
	}

	if c.kind(k) != token.Ident {
		return 0, false
	}
	name := k

	k = c.nextCode(k + 1)
	if c.kind(k) != token.LParen {
		return 0, false
	}
	pc, ok := c.scanParen(k)
	if !ok {
		return 0, false
	}
	portConns, wildcard, ok := c.parseConnList(k+1, pc-1)
	if !ok {
		return 0, false
	}
	semi := c.nextCode(pc)
	if c.kind(semi) != token.Semicolon {
		return 0, false
	}

	end, comment := c.eatLineTail(semi + 1)
	c.add(Unit{Kind: Instance, Lo: i, Hi: end, Comment: comment, Inst: &InstanceInfo{
		Master:     master,
		Name:       name,
		ParamConns: paramConns,
		PortConns:  portConns,
		Wildcard:   wildcard,
	}})
	return end, true
}

// parseConnList parses a named connection list body [lo, hi). An empty body
// yields an empty list. A single trailing `.*` sets wildcard.
func (c *classifier) parseConnList(lo, hi int) ([]Conn, bool, bool) {
	items, ok := c.splitItems(lo, hi)
	if !ok {
		return nil, false, false
	}
	conns := make([]Conn, 0, len(items))
	wildcard := false
	for pos, it := range items {
		code := it.code
		if len(code) == 1 && c.toks[code[0]].Kind == token.DotStar {
			if pos != len(items)-1 {
				return nil, false, false
			}
			wildcard = true
			continue
		}
		if len(code) < 4 ||
			c.toks[code[0]].Kind != token.Dot ||
			c.toks[code[1]].Kind != token.Ident ||
			c.toks[code[2]].Kind != token.LParen ||
			c.toks[code[len(code)-1]].Kind != token.RParen {
			return nil, false, false
		}
		conns = append(conns, Conn{
			Name:    code[1],
			Expr:    code[3 : len(code)-1],
			Comment: it.comment,
		})
	}
	return conns, wildcard, true
}

// classifyTypedef handles the three typedef shapes the formatter lays out:
// enum, packed struct/union, and plain alias. Anything else is opaque.
func (c *classifier) classifyTypedef(i, j int) int {
	k := c.nextCode(j + 1)
	switch c.kind(k) {
	case token.KwEnum:
		return c.typedefEnum(i, j, k)
	case token.KwStruct, token.KwUnion:
		return c.typedefStruct(i, j, k)
	default:
		return c.typedefAlias(i, j)
	}
}

// typedefEnum parses `typedef enum [base] { members } name ;`.
func (c *classifier) typedefEnum(i, j, k int) int {
	// Base type tokens between `enum` and `{`.
	var base []int
	m := c.nextCode(k + 1)
	for c.kind(m) != token.LBrace {
		switch c.kind(m) {
		case token.EOF, token.Semicolon:
			return c.opaqueStatement(i, j)
		}
		base = append(base, m)
		m = c.nextCode(m + 1)
	}
	closeBrace, ok := c.scanBrace(m)
	if !ok {
		return c.opaqueStatement(i, j)
	}
	members, ok := c.parseEnumMembers(m+1, closeBrace-1)
	if !ok {
		return c.opaqueStatement(i, j)
	}
	name := c.nextCode(closeBrace)
	if c.kind(name) != token.Ident {
		return c.opaqueStatement(i, j)
	}
	semi := c.nextCode(name + 1)
	if c.kind(semi) != token.Semicolon {
		return c.opaqueStatement(i, j)
	}
	end, comment := c.eatLineTail(semi + 1)
	c.add(Unit{Kind: TypeBlock, Lo: i, Hi: end, Comment: comment, Type: &TypeInfo{
		Kw:       k,
		EnumBase: base,
		Members:  members,
		Name:     name,
	}})
	return end
}

// typedefStruct parses `typedef struct|union [packed] { fields } name ;`.
func (c *classifier) typedefStruct(i, j, k int) int {
	packed := false
	m := c.nextCode(k + 1)
	if c.kind(m) == token.KwPacked {
		packed = true
		m = c.nextCode(m + 1)
	}
	if c.kind(m) != token.LBrace {
		return c.opaqueStatement(i, j)
	}
	closeBrace, ok := c.scanBrace(m)
	if !ok {
		return c.opaqueStatement(i, j)
	}
	members, ok := c.parseStructFields(m+1, closeBrace-1)
	if !ok {
		return c.opaqueStatement(i, j)
	}
	name := c.nextCode(closeBrace)
	if c.kind(name) != token.Ident {
		return c.opaqueStatement(i, j)
	}
	semi := c.nextCode(name + 1)
	if c.kind(semi) != token.Semicolon {
		return c.opaqueStatement(i, j)
	}
	end, comment := c.eatLineTail(semi + 1)
	c.add(Unit{Kind: TypeBlock, Lo: i, Hi: end, Comment: comment, Type: &TypeInfo{
		Kw:      k,
		Struct:  true,
		Packed:  packed,
		Members: members,
		Name:    name,
	}})
	return end
}

// typedefAlias parses `typedef existing_type new_name ;`.
func (c *classifier) typedefAlias(i, j int) int {
	semiEnd := c.consumeToSemi(j)
	if c.err != nil {
		return len(c.toks) - 1
	}
	code, sawLine := c.codeRange(j, semiEnd-1)
	if sawLine || len(code) < 3 {
		end := c.opaqueLine(semiEnd)
		c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
		return end
	}
	// code[0] is `typedef`; the last token is the new name.
	name := code[len(code)-1]
	if c.toks[name].Kind != token.Ident {
		end := c.opaqueLine(semiEnd)
		c.add(Unit{Kind: Opaque, Lo: i, Hi: end})
		return end
	}
	end, comment := c.eatLineTail(semiEnd)
	c.add(Unit{Kind: TypeBlock, Lo: i, Hi: end, Comment: comment, Type: &TypeInfo{
		Kw:    -1,
		Alias: code[1 : len(code)-1],
		Name:  name,
	}})
	return end
}

// scanBrace returns the index just past the RBrace matching the LBrace at i.
func (c *classifier) scanBrace(i int) (int, bool) {
	depth := 0
	k := i
	for {
		switch c.kind(k) {
		case token.EOF:
			return k, false
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return k + 1, true
			}
		}
		k++
	}
}

// parseEnumMembers parses `NAME [= value]` items inside an enum body.
func (c *classifier) parseEnumMembers(lo, hi int) ([]TypeMember, bool) {
	items, ok := c.splitItems(lo, hi)
	if !ok || len(items) == 0 {
		return nil, false
	}
	members := make([]TypeMember, 0, len(items))
	for _, it := range items {
		code := it.code
		if len(code) == 0 || c.toks[code[0]].Kind != token.Ident {
			return nil, false
		}
		m := TypeMember{Name: code[0], Comment: it.comment}
		if len(code) > 1 {
			if c.toks[code[1]].Kind != token.Assign || len(code) < 3 {
				return nil, false
			}
			m.Value = code[2:]
		}
		members = append(members, m)
	}
	return members, true
}

// parseStructFields parses `type name [dims] ;` fields inside a struct body.
// Fields are semicolon-terminated, so the body is split on semicolons here
// rather than through splitItems.
func (c *classifier) parseStructFields(lo, hi int) ([]TypeMember, bool) {
	var members []TypeMember
	start := lo
	for start < hi {
		// Find the field's terminating semicolon.
		semi := -1
		depth := 0
		for k := start; k < hi; k++ {
			switch c.toks[k].Kind {
			case token.LParen, token.LBracket, token.LBrace:
				depth++
			case token.RParen, token.RBracket, token.RBrace:
				depth--
			case token.Semicolon:
				if depth == 0 {
					semi = k
				}
			}
			if semi >= 0 {
				break
			}
		}
		if semi < 0 {
			// Trailing whitespace/comments after the last field.
			rest, sawLine := c.codeRange(start, hi)
			if len(rest) > 0 || sawLine {
				return nil, false
			}
			break
		}
		code, sawLine := c.codeRange(start, semi)
		if sawLine || len(code) < 2 {
			return nil, false
		}
		name, typeEnd, unpacked, ok := c.splitNameDims(code)
		if !ok || typeEnd == 0 {
			return nil, false
		}
		m := TypeMember{Type: code[:typeEnd], Name: name, Comment: -1}
		// Unpacked dims on a struct field would need to survive rendering;
		// keep them in Value-free form by rejecting the shape.
		if len(unpacked) > 0 {
			return nil, false
		}
		// Trailing comment on the field's line.
		next, comment := c.eatLineTail(semi + 1)
		m.Comment = comment
		members = append(members, m)
		start = next
	}
	if len(members) == 0 {
		return nil, false
	}
	return members, true
}
