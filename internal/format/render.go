package format

import (
	"strings"

	"svfmt/internal/diag"
	"svfmt/internal/layout"
	"svfmt/internal/source"
	"svfmt/internal/token"
)

// renderer serializes layout units into the output buffer, consulting the
// column planner for alignment and the wrapper for overlong lines.
type renderer struct {
	toks  []token.Token
	units []layout.Unit
	opts  Options
	w     *Writer
	rep   diag.Reporter

	// indent is the current indentation level: 0 at file scope, 1 inside a
	// module body.
	indent int
	// pendingBlank requests one blank line before the next rendered unit.
	pendingBlank bool
}

func render(toks []token.Token, units []layout.Unit, opts Options, rep diag.Reporter) []byte {
	capacity := 0
	if len(toks) > 0 {
		capacity = int(toks[len(toks)-1].Span.End)
	}
	r := &renderer{
		toks:  toks,
		units: units,
		opts:  opts,
		w:     NewWriter(capacity + capacity/8),
		rep:   rep,
	}
	r.renderAll()
	r.w.Finalize()
	return r.w.Bytes()
}

func (r *renderer) renderAll() {
	i := 0
	for i < len(r.units) {
		u := r.units[i]
		if u.Kind == layout.BlankLine {
			r.pendingBlank = true
			i++
			continue
		}
		if r.pendingBlank {
			r.w.BlankLine()
			r.pendingBlank = false
		}

		switch u.Kind {
		case layout.CommentBlock:
			r.renderCommentBlock(u)
			if i == 0 {
				// Blank line after a leading header comment block.
				r.pendingBlank = true
			}
			i++
		case layout.ModuleHeader:
			i = r.renderModuleHead(i)
		case layout.SignalDecl:
			j := run(r.units, i, layout.SignalDecl)
			r.renderDeclGroup(i, j)
			i = j
		case layout.AssignStmt:
			j := run(r.units, i, layout.AssignStmt)
			r.renderAssignGroup(i, j)
			i = j
		case layout.Instance:
			r.renderInstance(u)
			r.pendingBlank = true
			i++
		case layout.ProceduralBlock:
			r.renderReindent(u)
			r.pendingBlank = true
			i++
		case layout.CaseBlock, layout.GenerateBlock:
			r.renderReindent(u)
			i++
		case layout.TypeBlock:
			r.renderType(u)
			i++
		case layout.ModuleEnd:
			r.renderModuleEnd(u)
			i++
		default:
			// Opaque, plus any structural unit orphaned by a fallback.
			r.renderOpaque(u)
			i++
		}
	}
}

func (r *renderer) span(u layout.Unit) source.Span {
	if u.Lo >= 0 && u.Lo < len(r.toks) {
		return r.toks[u.Lo].Span
	}
	return source.Span{}
}

// endLine closes the current line, flagging it when it exceeds the limit.
// Over-length lines are a documented residual case, never truncated.
func (r *renderer) endLine(primary source.Span) {
	if r.w.Col() > r.opts.LineLimit {
		r.rep.Report(diag.FmtLineOverflow, diag.SevInfo, primary,
			"line exceeds the length limit and has no break point", nil)
	}
	r.w.Newline()
}

func (r *renderer) lineStart() {
	r.w.Indent(r.indent, r.opts.IndentWidth)
}

func (r *renderer) indentStr() string {
	return strings.Repeat(" ", r.indent*r.opts.IndentWidth)
}

// renderOpaque reproduces the unit's span byte for byte and leaves the
// cursor at a fresh line.
func (r *renderer) renderOpaque(u layout.Unit) {
	var b strings.Builder
	for k := u.Lo; k < u.Hi; k++ {
		b.WriteString(r.toks[k].Text)
	}
	r.w.WriteString(b.String())
	if r.w.Col() != 0 {
		r.w.Newline()
	}
}

// renderCommentBlock puts each comment of a whole-line comment run on its
// own line at the current indent, preserving comment text exactly.
func (r *renderer) renderCommentBlock(u layout.Unit) {
	for k := u.Lo; k < u.Hi; k++ {
		if !r.toks[k].IsComment() {
			continue
		}
		r.lineStart()
		r.w.WriteString(r.toks[k].Text)
		r.endLine(r.toks[k].Span)
	}
}

// renderModuleHead lays out the module header together with its parameter
// and port list units:
//
//	module name #(
//	  parameter int WIDTH = 8
//	) (
//	  input  logic clk
//	);
//
// Returns the index of the first unit after the head. When a list unit was
// demoted to opaque, the raw span glues onto the open header line.
func (r *renderer) renderModuleHead(i int) int {
	u := r.units[i]
	sp := r.span(u)
	r.w.WriteString("module ")
	r.w.WriteString(r.toks[u.Header.Name].Text)
	r.indent = 1

	if !u.Header.HasBody {
		r.w.WriteString(";")
		r.trailComment(u.Comment)
		r.endLine(sp)
		return i + 1
	}

	j := i + 1
	if j < len(r.units) && r.units[j].Kind == layout.ParameterBlock {
		r.w.WriteString(" #(")
		r.endLine(sp)
		r.renderParams(r.units[j].Params)
		r.w.WriteString(")")
		j++
	}
	if j < len(r.units) && r.units[j].Kind == layout.PortBlock {
		r.w.WriteString(" (")
		r.endLine(sp)
		r.renderPorts(r.units[j].Ports)
		r.w.WriteString(");")
		r.trailComment(r.units[j].Comment)
		r.endLine(sp)
		// Blank line after the port list.
		r.pendingBlank = true
		return j + 1
	}
	r.w.WriteString(" ")
	return j
}

func (r *renderer) trailComment(idx int) {
	if idx >= 0 && idx < len(r.toks) {
		r.w.WriteString(" ")
		r.w.WriteString(r.toks[idx].Text)
	}
}

// emitAligned writes pre-built line bodies with their trailing comments
// aligned one column past the widest sibling. Bodies already over the limit
// keep a single space before the comment.
func (r *renderer) emitAligned(bodies []string, comments []int, sp source.Span) {
	col := 0
	for _, b := range bodies {
		if w := width(b); w < r.opts.LineLimit && w+1 > col {
			col = w + 1
		}
	}
	for i, b := range bodies {
		if comments[i] >= 0 {
			b = pad(b, col-1) + " " + r.toks[comments[i]].Text
		}
		r.w.WriteString(b)
		r.endLine(sp)
	}
}

func (r *renderer) renderParams(pl *layout.ParamList) {
	if len(pl.Items) == 0 {
		return
	}
	indent := r.indentStr()

	kwW := 0
	for _, it := range pl.Items {
		if it.Keyword >= 0 {
			kwW = max(kwW, width(r.toks[it.Keyword].Text))
		}
	}

	// First pass: content before the value, to find the `=` column.
	pres := make([]string, len(pl.Items))
	eqCol := 0
	for i, it := range pl.Items {
		b := indent
		if kwW > 0 {
			kw := ""
			if it.Keyword >= 0 {
				kw = r.toks[it.Keyword].Text
			}
			b += pad(kw, kwW) + " "
		}
		if len(it.Type) > 0 {
			b += joinType(r.toks, it.Type) + " "
		}
		plan := alignAt(width(b), r.opts.AlignColumn)
		b += plan.spaces() + r.toks[it.Name].Text
		pres[i] = b
		if len(it.Value) > 0 {
			eqCol = max(eqCol, width(b)+1)
		}
	}

	bodies := make([]string, len(pl.Items))
	comments := make([]int, len(pl.Items))
	for i, it := range pl.Items {
		b := pres[i]
		if len(it.Value) > 0 {
			b = pad(b, eqCol) + "= " + r.exprString(it.Value)
		}
		if i < len(pl.Items)-1 {
			b += ","
		}
		bodies[i] = b
		comments[i] = it.Comment
	}
	r.emitAligned(bodies, comments, r.toks[pl.Items[0].Name].Span)
}

func (r *renderer) renderPorts(pl *layout.PortList) {
	if len(pl.Items) == 0 {
		return
	}
	indent := r.indentStr()

	dirW := 0
	for _, it := range pl.Items {
		if it.Dir >= 0 {
			dirW = max(dirW, width(r.toks[it.Dir].Text))
		}
	}

	bodies := make([]string, len(pl.Items))
	comments := make([]int, len(pl.Items))
	for i, it := range pl.Items {
		b := indent
		if dirW > 0 {
			dir := ""
			if it.Dir >= 0 {
				dir = r.toks[it.Dir].Text
			}
			b += pad(dir, dirW) + " "
		}
		if len(it.Type) > 0 {
			b += joinType(r.toks, it.Type)
		}
		plan := alignAt(width(b), r.opts.AlignColumn)
		b += plan.spaces() + r.toks[it.Name].Text
		if len(it.Unpacked) > 0 {
			b += " " + joinType(r.toks, it.Unpacked)
		}
		if i < len(pl.Items)-1 {
			b += ","
		}
		bodies[i] = b
		comments[i] = it.Comment
	}
	r.emitAligned(bodies, comments, r.toks[pl.Items[0].Name].Span)
}

// renderDeclGroup lays out a run of adjacent declarations as one alignment
// group: names at the anchor column, initializer `=` and trailing comments
// aligned to the widest sibling.
func (r *renderer) renderDeclGroup(lo, hi int) {
	indent := r.indentStr()
	n := hi - lo

	pres := make([]string, n)
	eqCol := 0
	for i := 0; i < n; i++ {
		d := r.units[lo+i].Decl
		b := indent + joinType(r.toks, d.Type)
		plan := alignAt(width(b), r.opts.AlignColumn)
		b += plan.spaces() + r.toks[d.Name].Text
		pres[i] = b
		if len(d.Trail) > 0 && r.toks[d.Trail[0]].Kind == token.Assign {
			eqCol = max(eqCol, width(b)+1)
		}
	}

	bodies := make([]string, n)
	comments := make([]int, n)
	for i := 0; i < n; i++ {
		d := r.units[lo+i].Decl
		b := pres[i]
		switch {
		case len(d.Trail) == 0:
		case r.toks[d.Trail[0]].Kind == token.Assign:
			b = pad(b, eqCol) + "= " + r.exprString(d.Trail[1:])
		case r.toks[d.Trail[0]].Kind == token.Comma:
			b += r.exprString(d.Trail)
		default:
			b += " " + r.exprString(d.Trail)
		}
		bodies[i] = b + ";"
		comments[i] = d.Comment
	}
	r.emitAligned(bodies, comments, r.span(r.units[lo]))
}

// renderAssignGroup lays out a run of continuous assignments, aligning `=`
// to the widest left-hand side. Overlong right-hand sides wrap after a
// comma or binary operator, continuations starting under the first
// character after `=`.
func (r *renderer) renderAssignGroup(lo, hi int) {
	indent := r.indentStr()
	n := hi - lo

	lhs := make([]string, n)
	lhsW := 0
	for i := 0; i < n; i++ {
		lhs[i] = r.exprString(r.units[lo+i].Assign.Lhs)
		lhsW = max(lhsW, width(lhs[i]))
	}

	type plannedAssign struct {
		prefix string
		rhs    string
		unit   layout.Unit
	}
	planned := make([]plannedAssign, n)
	commentCol := 0
	for i := 0; i < n; i++ {
		u := r.units[lo+i]
		p := plannedAssign{
			prefix: indent + "assign " + pad(lhs[i], lhsW) + " = ",
			rhs:    r.exprString(u.Assign.Rhs),
			unit:   u,
		}
		planned[i] = p
		if w := width(p.prefix) + width(p.rhs) + 1; w < r.opts.LineLimit {
			commentCol = max(commentCol, w+1)
		}
	}

	for i := 0; i < n; i++ {
		p := planned[i]
		u := p.unit
		body := p.prefix + p.rhs + ";"
		if width(body) <= r.opts.LineLimit {
			if u.Assign.Comment >= 0 {
				body = pad(body, commentCol-1) + " " + r.toks[u.Assign.Comment].Text
			}
			r.w.WriteString(body)
			r.endLine(r.span(u))
			continue
		}
		r.w.WriteString(p.prefix)
		segs := append(r.exprSegs(u.Assign.Rhs), seg{text: ";"})
		r.writeSegs(segs, width(p.prefix), r.span(u))
		r.trailComment(u.Assign.Comment)
		r.endLine(r.span(u))
	}
}

// renderInstance lays out an instantiation with one connection per line,
// the opening parenthesis of each connection at the anchor column:
//
//	master #(
//	  .WIDTH (16)
//	) name (
//	  .clk   (clk),
//	  .*
//	);
func (r *renderer) renderInstance(u layout.Unit) {
	inst := u.Inst
	sp := r.span(u)

	r.lineStart()
	r.w.WriteString(r.toks[inst.Master].Text)
	if inst.ParamConns != nil {
		r.w.WriteString(" #(")
		r.endLine(sp)
		r.renderConns(inst.ParamConns, false, sp)
		r.lineStart()
		r.w.WriteString(") ")
	} else {
		r.w.WriteString(" ")
	}
	r.w.WriteString(r.toks[inst.Name].Text)

	if len(inst.PortConns) == 0 && !inst.Wildcard {
		r.w.WriteString(" ();")
		r.trailComment(u.Comment)
		r.endLine(sp)
		return
	}

	r.w.WriteString(" (")
	r.endLine(sp)
	r.renderConns(inst.PortConns, inst.Wildcard, sp)
	r.lineStart()
	r.w.WriteString(");")
	r.trailComment(u.Comment)
	r.endLine(sp)
}

// renderConns writes one connection per line at one level below the
// instance, `(` aligned at the anchor column.
func (r *renderer) renderConns(conns []layout.Conn, wildcard bool, sp source.Span) {
	r.indent++
	defer func() { r.indent-- }()
	indent := r.indentStr()

	bodies := make([]string, 0, len(conns)+1)
	comments := make([]int, 0, len(conns)+1)
	overlong := make([]int, 0)
	for i, conn := range conns {
		pre := indent + "." + r.toks[conn.Name].Text
		plan := alignAt(width(pre), r.opts.AlignColumn)
		body := pre + plan.spaces() + "(" + r.exprString(conn.Expr) + ")"
		if i < len(conns)-1 || wildcard {
			body += ","
		}
		if width(body) > r.opts.LineLimit && len(conn.Expr) > 1 {
			overlong = append(overlong, i)
		}
		bodies = append(bodies, body)
		comments = append(comments, conn.Comment)
	}
	if wildcard {
		bodies = append(bodies, indent+".*")
		comments = append(comments, -1)
	}

	if len(overlong) == 0 {
		r.emitAligned(bodies, comments, sp)
		return
	}

	// Mixed path: stream the overlong connections through the wrapper,
	// keep the rest aligned as a group.
	long := make(map[int]bool, len(overlong))
	for _, i := range overlong {
		long[i] = true
	}
	col := 0
	for i, b := range bodies {
		if !long[i] && width(b)+1 > col {
			col = width(b) + 1
		}
	}
	for i, b := range bodies {
		if !long[i] {
			if comments[i] >= 0 {
				b = pad(b, col-1) + " " + r.toks[comments[i]].Text
			}
			r.w.WriteString(b)
			r.endLine(sp)
			continue
		}
		conn := conns[i]
		pre := indent + "." + r.toks[conn.Name].Text
		plan := alignAt(width(pre), r.opts.AlignColumn)
		r.w.WriteString(pre + plan.spaces() + "(")
		contCol := r.w.Col()
		segs := r.exprSegs(conn.Expr)
		segs = append(segs, seg{text: ")"})
		if i < len(conns)-1 || wildcard {
			segs = append(segs, seg{text: ","})
		}
		r.writeSegs(segs, contCol, sp)
		r.trailComment(comments[i])
		r.endLine(sp)
	}
}

// renderType lays out the three typedef shapes.
func (r *renderer) renderType(u layout.Unit) {
	t := u.Type
	sp := r.span(u)

	// Alias: a one-line declaration with the new name at the anchor.
	if t.Members == nil {
		r.lineStart()
		b := "typedef " + joinType(r.toks, t.Alias)
		plan := alignAt(r.w.Col()+width(b), r.opts.AlignColumn)
		r.w.WriteString(b + plan.spaces() + r.toks[t.Name].Text + ";")
		r.trailComment(u.Comment)
		r.endLine(sp)
		return
	}

	r.lineStart()
	r.w.WriteString("typedef " + r.toks[t.Kw].Text)
	if t.Packed {
		r.w.WriteString(" packed")
	}
	if len(t.EnumBase) > 0 {
		r.w.WriteString(" " + joinType(r.toks, t.EnumBase))
	}
	r.w.WriteString(" {")
	r.endLine(sp)

	r.indent++
	if t.Struct {
		r.renderStructFields(t.Members, sp)
	} else {
		r.renderEnumMembers(t.Members, sp)
	}
	r.indent--

	r.lineStart()
	r.w.WriteString("} " + r.toks[t.Name].Text + ";")
	r.trailComment(u.Comment)
	r.endLine(sp)
}

func (r *renderer) renderEnumMembers(members []layout.TypeMember, sp source.Span) {
	indent := r.indentStr()

	nameW := 0
	for _, m := range members {
		nameW = max(nameW, width(r.toks[m.Name].Text))
	}

	bodies := make([]string, len(members))
	comments := make([]int, len(members))
	for i, m := range members {
		b := indent + r.toks[m.Name].Text
		if len(m.Value) > 0 {
			b = pad(b, width(indent)+nameW+1) + "= " + r.exprString(m.Value)
		}
		if i < len(members)-1 {
			b += ","
		}
		bodies[i] = b
		comments[i] = m.Comment
	}
	r.emitAligned(bodies, comments, sp)
}

func (r *renderer) renderStructFields(members []layout.TypeMember, sp source.Span) {
	indent := r.indentStr()

	bodies := make([]string, len(members))
	comments := make([]int, len(members))
	for i, m := range members {
		b := indent + joinType(r.toks, m.Type)
		plan := alignAt(width(b), r.opts.AlignColumn)
		bodies[i] = b + plan.spaces() + r.toks[m.Name].Text + ";"
		comments[i] = m.Comment
	}
	r.emitAligned(bodies, comments, sp)
}

func (r *renderer) renderModuleEnd(u layout.Unit) {
	r.indent = 0
	parts := make([]string, 0, 3)
	for k := u.Lo; k < u.Hi; k++ {
		t := r.toks[k]
		if t.IsWhitespace() || t.IsComment() {
			continue
		}
		parts = append(parts, t.Text)
	}
	r.w.WriteString(strings.Join(parts, " "))
	r.trailComment(u.Comment)
	r.endLine(r.span(u))
}

// renderReindent reprints a raw block (procedural, case, generate) line by
// line: interior spacing is preserved, only the leading indentation of each
// line is recomputed from begin/end-style nesting.
func (r *renderer) renderReindent(u layout.Unit) {
	depth := r.indent
	k := u.Lo
	for k < u.Hi {
		// Collect one source line.
		lineEnd := k
		for lineEnd < u.Hi && r.toks[lineEnd].Kind != token.Newline {
			lineEnd++
		}

		first, last := -1, -1
		for m := k; m < lineEnd; m++ {
			if r.toks[m].Kind != token.Whitespace {
				if first < 0 {
					first = m
				}
				last = m
			}
		}

		if first < 0 {
			r.w.BlankLine()
		} else {
			level := depth
			if isCloser(r.toks[first].Kind) {
				level--
			}
			if level < 0 {
				level = 0
			}
			r.w.Indent(level, r.opts.IndentWidth)
			for m := first; m <= last; m++ {
				r.w.WriteString(r.toks[m].Text)
			}
			for m := first; m <= last; m++ {
				depth += nestDelta(r.toks[m].Kind)
			}
			r.endLine(r.toks[first].Span)
		}

		k = lineEnd
		if k < u.Hi {
			k++ // consume the newline
		}
	}
}

func isCloser(k token.Kind) bool {
	switch k {
	case token.KwEnd, token.KwJoin, token.KwEndcase, token.KwEndgenerate,
		token.RBrace:
		return true
	default:
		return false
	}
}

func nestDelta(k token.Kind) int {
	switch k {
	case token.KwBegin, token.KwFork, token.KwCase, token.KwCasez,
		token.KwCasex, token.KwGenerate, token.LBrace:
		return 1
	case token.KwEnd, token.KwJoin, token.KwEndcase, token.KwEndgenerate,
		token.RBrace:
		return -1
	default:
		return 0
	}
}
