package layout

// rerendered reports whether a unit kind is printed from its extracted
// structure rather than from its raw token span. Such units may only carry
// comments in the slots the printer knows about.
func rerendered(k UnitKind) bool {
	switch k {
	case ModuleHeader, ParameterBlock, PortBlock, SignalDecl, AssignStmt,
		Instance, TypeBlock, ModuleEnd:
		return true
	default:
		return false
	}
}

// commentsAccounted verifies that every comment token inside the unit's span
// is reachable from the unit's structure: attached as an item comment, the
// unit's trailing comment, or embedded in a captured expression slice. A
// stray comment would silently disappear on re-rendering, so callers demote
// the unit to Opaque when this fails.
func (c *classifier) commentsAccounted(u Unit) bool {
	known := make(map[int]bool)
	mark := func(idx int) {
		if idx >= 0 {
			known[idx] = true
		}
	}
	markAll := func(idxs []int) {
		for _, idx := range idxs {
			known[idx] = true
		}
	}

	mark(u.Comment)
	if p := u.Params; p != nil {
		for _, it := range p.Items {
			mark(it.Comment)
			markAll(it.Type)
			markAll(it.Value)
		}
	}
	if p := u.Ports; p != nil {
		for _, it := range p.Items {
			mark(it.Comment)
			markAll(it.Type)
			markAll(it.Unpacked)
		}
	}
	if d := u.Decl; d != nil {
		mark(d.Comment)
		markAll(d.Type)
		markAll(d.Trail)
	}
	if a := u.Assign; a != nil {
		mark(a.Comment)
		markAll(a.Lhs)
		markAll(a.Rhs)
	}
	if inst := u.Inst; inst != nil {
		for _, conn := range inst.ParamConns {
			mark(conn.Comment)
			markAll(conn.Expr)
		}
		for _, conn := range inst.PortConns {
			mark(conn.Comment)
			markAll(conn.Expr)
		}
	}
	if t := u.Type; t != nil {
		markAll(t.EnumBase)
		markAll(t.Alias)
		for _, m := range t.Members {
			mark(m.Comment)
			markAll(m.Type)
			markAll(m.Value)
		}
	}

	for k := u.Lo; k < u.Hi && k < len(c.toks); k++ {
		if c.toks[k].IsComment() && !known[k] {
			return false
		}
	}
	return true
}
