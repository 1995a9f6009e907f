package token

var keywords = map[string]Kind{
	"module":       KwModule,
	"endmodule":    KwEndmodule,
	"input":        KwInput,
	"output":       KwOutput,
	"inout":        KwInout,
	"parameter":    KwParameter,
	"localparam":   KwLocalparam,
	"logic":        KwLogic,
	"wire":         KwWire,
	"reg":          KwReg,
	"bit":          KwBit,
	"byte":         KwByte,
	"int":          KwInt,
	"integer":      KwInteger,
	"shortint":     KwShortint,
	"longint":      KwLongint,
	"time":         KwTime,
	"real":         KwReal,
	"genvar":       KwGenvar,
	"signed":       KwSigned,
	"unsigned":     KwUnsigned,
	"assign":       KwAssign,
	"always":       KwAlways,
	"always_ff":    KwAlwaysFF,
	"always_comb":  KwAlwaysComb,
	"always_latch": KwAlwaysLatch,
	"initial":      KwInitial,
	"final":        KwFinal,
	"begin":        KwBegin,
	"end":          KwEnd,
	"if":           KwIf,
	"else":         KwElse,
	"for":          KwFor,
	"while":        KwWhile,
	"case":         KwCase,
	"casez":        KwCasez,
	"casex":        KwCasex,
	"endcase":      KwEndcase,
	"default":      KwDefault,
	"unique":       KwUnique,
	"priority":     KwPriority,
	"generate":     KwGenerate,
	"endgenerate":  KwEndgenerate,
	"typedef":      KwTypedef,
	"struct":       KwStruct,
	"union":        KwUnion,
	"enum":         KwEnum,
	"packed":       KwPacked,
	"function":     KwFunction,
	"endfunction":  KwEndfunction,
	"task":         KwTask,
	"endtask":      KwEndtask,
	"package":      KwPackage,
	"endpackage":   KwEndpackage,
	"interface":    KwInterface,
	"endinterface": KwEndinterface,
	"modport":      KwModport,
	"import":       KwImport,
	"export":       KwExport,
	"posedge":      KwPosedge,
	"negedge":      KwNegedge,
	"or":           KwOr,
	"return":       KwReturn,
	"void":         KwVoid,
	"const":        KwConst,
	"automatic":    KwAutomatic,
	"fork":         KwFork,
	"join":         KwJoin,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive: only lowercase spellings are recognized.
// Unlisted SystemVerilog keywords lex as Ident; the classifier treats
// statements it cannot pattern-match as opaque, so an unknown keyword can
// never change the meaning of a file, only leave it unformatted.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
