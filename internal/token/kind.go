package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier, including escaped (\foo ) and
	// system ($display) identifiers.
	Ident
	// Number represents any numeric literal, including based literals
	// such as 8'hFF and '0.
	Number
	// String represents a double-quoted string literal.
	String

	// Whitespace represents a run of spaces and tabs.
	Whitespace
	// Newline represents a single line feed.
	Newline
	// LineComment represents a // comment up to (not including) the newline.
	LineComment
	// BlockComment represents a /* ... */ comment. Block comments do not nest.
	BlockComment
	// Directive represents a compiler directive line (`define, `include,
	// `ifdef, ...), kept opaque up to the end of the line.
	Directive
	// Unknown represents a single byte the lexer does not recognize.
	// Unknown tokens are passed through untouched.
	Unknown

	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwEndmodule represents the 'endmodule' keyword.
	KwEndmodule // endmodule
	// KwInput represents the 'input' keyword.
	KwInput // input
	// KwOutput represents the 'output' keyword.
	KwOutput // output
	// KwInout represents the 'inout' keyword.
	KwInout // inout
	// KwParameter represents the 'parameter' keyword.
	KwParameter // parameter
	// KwLocalparam represents the 'localparam' keyword.
	KwLocalparam // localparam
	// KwLogic represents the 'logic' keyword.
	KwLogic // logic
	// KwWire represents the 'wire' keyword.
	KwWire // wire
	// KwReg represents the 'reg' keyword.
	KwReg // reg
	// KwBit represents the 'bit' keyword.
	KwBit // bit
	// KwByte represents the 'byte' keyword.
	KwByte // byte
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwInteger represents the 'integer' keyword.
	KwInteger // integer
	// KwShortint represents the 'shortint' keyword.
	KwShortint // shortint
	// KwLongint represents the 'longint' keyword.
	KwLongint // longint
	// KwTime represents the 'time' keyword.
	KwTime // time
	// KwReal represents the 'real' keyword.
	KwReal // real
	// KwGenvar represents the 'genvar' keyword.
	KwGenvar // genvar
	// KwSigned represents the 'signed' keyword.
	KwSigned // signed
	// KwUnsigned represents the 'unsigned' keyword.
	KwUnsigned // unsigned
	// KwAssign represents the 'assign' keyword.
	KwAssign // assign
	// KwAlways represents the 'always' keyword.
	KwAlways // always
	// KwAlwaysFF represents the 'always_ff' keyword.
	KwAlwaysFF // always_ff
	// KwAlwaysComb represents the 'always_comb' keyword.
	KwAlwaysComb // always_comb
	// KwAlwaysLatch represents the 'always_latch' keyword.
	KwAlwaysLatch // always_latch
	// KwInitial represents the 'initial' keyword.
	KwInitial // initial
	// KwFinal represents the 'final' keyword.
	KwFinal // final
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCasez represents the 'casez' keyword.
	KwCasez // casez
	// KwCasex represents the 'casex' keyword.
	KwCasex // casex
	// KwEndcase represents the 'endcase' keyword.
	KwEndcase // endcase
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwUnique represents the 'unique' keyword.
	KwUnique // unique
	// KwPriority represents the 'priority' keyword.
	KwPriority // priority
	// KwGenerate represents the 'generate' keyword.
	KwGenerate // generate
	// KwEndgenerate represents the 'endgenerate' keyword.
	KwEndgenerate // endgenerate
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef // typedef
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwPacked represents the 'packed' keyword.
	KwPacked // packed
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwEndfunction represents the 'endfunction' keyword.
	KwEndfunction // endfunction
	// KwTask represents the 'task' keyword.
	KwTask // task
	// KwEndtask represents the 'endtask' keyword.
	KwEndtask // endtask
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwEndpackage represents the 'endpackage' keyword.
	KwEndpackage // endpackage
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwEndinterface represents the 'endinterface' keyword.
	KwEndinterface // endinterface
	// KwModport represents the 'modport' keyword.
	KwModport // modport
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwPosedge represents the 'posedge' keyword.
	KwPosedge // posedge
	// KwNegedge represents the 'negedge' keyword.
	KwNegedge // negedge
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwAutomatic represents the 'automatic' keyword.
	KwAutomatic // automatic
	// KwFork represents the 'fork' keyword.
	KwFork // fork
	// KwJoin represents the 'join' keyword.
	KwJoin // join

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the blocking assignment operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// EqEq represents the equality operator token.
	EqEq // ==
	// EqEqEq represents the case equality operator token.
	EqEqEq // ===
	// BangEq represents the inequality operator token.
	BangEq // !=
	// BangEqEq represents the case inequality operator token.
	BangEqEq // !==
	// Bang represents the logical negation operator token.
	Bang // !
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal / nonblocking assignment token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the logical shift left operator token.
	Shl // <<
	// Shr represents the logical shift right operator token.
	Shr // >>
	// Shla represents the arithmetic shift left operator token.
	Shla // <<<
	// Shra represents the arithmetic shift right operator token.
	Shra // >>>
	// Amp represents the bitwise and / reduction and operator token.
	Amp // &
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// Pipe represents the bitwise or / reduction or operator token.
	Pipe // |
	// OrOr represents the logical or operator token.
	OrOr // ||
	// Caret represents the xor operator token.
	Caret // ^
	// Tilde represents the bitwise negation operator token.
	Tilde // ~
	// TildeCaret represents the xnor operator token.
	TildeCaret // ~^
	// Question represents the conditional operator token.
	Question // ?
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the scope resolution token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotStar represents the wildcard connection token.
	DotStar // .*
	// Hash represents the hash token used by parameter lists and delays.
	Hash // #
	// At represents the event control token.
	At // @
	// Apostrophe represents the ' token used by casts and assignment
	// patterns ('{...}).
	Apostrophe // '
	// Dollar represents a lone $ (unbounded range).
	Dollar // $
	// Arrow represents the event trigger token.
	Arrow // ->
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)
