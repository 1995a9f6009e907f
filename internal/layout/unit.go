package layout

// UnitKind tags the structural variant of a layout unit.
type UnitKind uint8

const (
	// Opaque is the safety fallback: an unrecognized token span that is
	// reproduced byte for byte.
	Opaque UnitKind = iota
	// BlankLine marks one or more consecutive blank lines; the renderer
	// collapses the run to a single separator line.
	BlankLine
	// CommentBlock is a run of whole-line comments.
	CommentBlock
	// ModuleHeader covers `module name` up to the parameter or port list.
	ModuleHeader
	// ParameterBlock is the #(...) parameter list of a module header.
	ParameterBlock
	// PortBlock is the (...) ; ANSI port list of a module header.
	PortBlock
	// SignalDecl is a net/variable/localparam declaration statement.
	SignalDecl
	// AssignStmt is a continuous assignment statement.
	AssignStmt
	// Instance is a module instantiation with optional parameter overrides.
	Instance
	// ProceduralBlock is an always/initial/final construct.
	ProceduralBlock
	// CaseBlock is a case/casez/casex statement at classification level.
	CaseBlock
	// GenerateBlock is a generate region or a bare module-level for/if.
	GenerateBlock
	// TypeBlock is a typedef (enum, struct, or alias).
	TypeBlock
	// ModuleEnd covers `endmodule` with an optional end label.
	ModuleEnd
)

func (k UnitKind) String() string {
	switch k {
	case Opaque:
		return "opaque"
	case BlankLine:
		return "blank"
	case CommentBlock:
		return "comment"
	case ModuleHeader:
		return "module-header"
	case ParameterBlock:
		return "parameter-block"
	case PortBlock:
		return "port-block"
	case SignalDecl:
		return "signal-decl"
	case AssignStmt:
		return "assign"
	case Instance:
		return "instance"
	case ProceduralBlock:
		return "procedural"
	case CaseBlock:
		return "case"
	case GenerateBlock:
		return "generate"
	case TypeBlock:
		return "type"
	case ModuleEnd:
		return "module-end"
	}
	return "unknown"
}

// Unit is one classified span of the token stream. Lo and Hi are indexes
// into the shared token slice, half-open: [Lo, Hi). Units partition the
// stream; concatenating unit spans in order covers every token exactly once.
//
// Variant pointers are nil for kinds that do not carry extra structure.
type Unit struct {
	Kind UnitKind
	Lo   int
	Hi   int

	// Comment is the token index of the trailing same-line comment after
	// the unit's terminator, -1 when absent. Declarations and assignments
	// carry theirs in the variant structs instead.
	Comment int

	Header *HeaderInfo
	Params *ParamList
	Ports  *PortList
	Decl   *DeclInfo
	Assign *AssignInfo
	Inst   *InstanceInfo
	Type   *TypeInfo
}

// HeaderInfo describes a module header.
type HeaderInfo struct {
	Keyword int // token index of `module`
	Name    int // token index of the module name
	// HasBody reports whether the header ends in a port/parameter list
	// rather than a bare semicolon.
	HasBody bool
}

// DeclInfo describes a signal or parameter declaration statement.
// All fields hold token indexes; slices list significant (non-whitespace)
// tokens in source order.
type DeclInfo struct {
	Type    []int // type keywords and packed dimensions before the name
	Name    int
	Trail   []int // everything between the name and the semicolon
	Comment int   // trailing line comment on the same line, or -1
}

// AssignInfo describes a continuous assignment.
type AssignInfo struct {
	Lhs     []int // target tokens between `assign` and `=`
	Rhs     []int // expression tokens between `=` and `;`
	Comment int
}

// PortList describes the items of an ANSI port list.
type PortList struct {
	Items []PortItem
}

// PortItem is one port declaration inside a port list.
type PortItem struct {
	Dir      int   // direction keyword index, or -1 when inherited
	Type     []int // type keywords and packed dimensions
	Name     int
	Unpacked []int // dimensions after the name
	Comment  int
}

// ParamList describes the items of a #(...) parameter list.
type ParamList struct {
	Items []ParamItem
}

// ParamItem is one parameter declaration inside a parameter list.
type ParamItem struct {
	Keyword int   // `parameter`/`localparam` index, or -1
	Type    []int // optional type tokens
	Name    int
	Value   []int // tokens after `=`, empty when no default
	Comment int
}

// InstanceInfo describes a module instantiation.
type InstanceInfo struct {
	Master     int
	Name       int
	ParamConns []Conn
	PortConns  []Conn
	// Wildcard reports a trailing `.*` connection.
	Wildcard bool
}

// Conn is one named connection: .Name (Expr...).
type Conn struct {
	Name    int
	Expr    []int // tokens inside the parentheses
	Comment int
}

// TypeInfo describes a typedef.
type TypeInfo struct {
	// Kw is the token index of the shape keyword (enum, struct, union),
	// -1 for alias typedefs.
	Kw int
	// EnumBase holds the base type tokens of an enum (`logic [1:0]`), nil
	// for structs and aliases.
	EnumBase []int
	// Struct reports a struct/union body; false with Members set means enum.
	Struct bool
	// Packed reports the packed qualifier on a struct body.
	Packed bool
	// Members is nil for plain alias typedefs.
	Members []TypeMember
	// Alias holds the aliased type tokens for `typedef old_t new_t;`.
	Alias []int
	Name  int // the defined type name
}

// TypeMember is an enum value or struct field.
type TypeMember struct {
	Type    []int // struct field type; nil for enum members
	Name    int
	Value   []int // enum member value tokens after `=`
	Comment int
}
