package token

import "fmt"

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	Number:       "Number",
	String:       "String",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	Directive:    "Directive",
	Unknown:      "Unknown",

	KwModule:       "KwModule",
	KwEndmodule:    "KwEndmodule",
	KwInput:        "KwInput",
	KwOutput:       "KwOutput",
	KwInout:        "KwInout",
	KwParameter:    "KwParameter",
	KwLocalparam:   "KwLocalparam",
	KwLogic:        "KwLogic",
	KwWire:         "KwWire",
	KwReg:          "KwReg",
	KwBit:          "KwBit",
	KwByte:         "KwByte",
	KwInt:          "KwInt",
	KwInteger:      "KwInteger",
	KwShortint:     "KwShortint",
	KwLongint:      "KwLongint",
	KwTime:         "KwTime",
	KwReal:         "KwReal",
	KwGenvar:       "KwGenvar",
	KwSigned:       "KwSigned",
	KwUnsigned:     "KwUnsigned",
	KwAssign:       "KwAssign",
	KwAlways:       "KwAlways",
	KwAlwaysFF:     "KwAlwaysFF",
	KwAlwaysComb:   "KwAlwaysComb",
	KwAlwaysLatch:  "KwAlwaysLatch",
	KwInitial:      "KwInitial",
	KwFinal:        "KwFinal",
	KwBegin:        "KwBegin",
	KwEnd:          "KwEnd",
	KwIf:           "KwIf",
	KwElse:         "KwElse",
	KwFor:          "KwFor",
	KwWhile:        "KwWhile",
	KwCase:         "KwCase",
	KwCasez:        "KwCasez",
	KwCasex:        "KwCasex",
	KwEndcase:      "KwEndcase",
	KwDefault:      "KwDefault",
	KwUnique:       "KwUnique",
	KwPriority:     "KwPriority",
	KwGenerate:     "KwGenerate",
	KwEndgenerate:  "KwEndgenerate",
	KwTypedef:      "KwTypedef",
	KwStruct:       "KwStruct",
	KwUnion:        "KwUnion",
	KwEnum:         "KwEnum",
	KwPacked:       "KwPacked",
	KwFunction:     "KwFunction",
	KwEndfunction:  "KwEndfunction",
	KwTask:         "KwTask",
	KwEndtask:      "KwEndtask",
	KwPackage:      "KwPackage",
	KwEndpackage:   "KwEndpackage",
	KwInterface:    "KwInterface",
	KwEndinterface: "KwEndinterface",
	KwModport:      "KwModport",
	KwImport:       "KwImport",
	KwExport:       "KwExport",
	KwPosedge:      "KwPosedge",
	KwNegedge:      "KwNegedge",
	KwOr:           "KwOr",
	KwReturn:       "KwReturn",
	KwVoid:         "KwVoid",
	KwConst:        "KwConst",
	KwAutomatic:    "KwAutomatic",
	KwFork:         "KwFork",
	KwJoin:         "KwJoin",

	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	StarStar:    "StarStar",
	Slash:       "Slash",
	Percent:     "Percent",
	Assign:      "Assign",
	PlusAssign:  "PlusAssign",
	MinusAssign: "MinusAssign",
	EqEq:        "EqEq",
	EqEqEq:      "EqEqEq",
	BangEq:      "BangEq",
	BangEqEq:    "BangEqEq",
	Bang:        "Bang",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Shl:         "Shl",
	Shr:         "Shr",
	Shla:        "Shla",
	Shra:        "Shra",
	Amp:         "Amp",
	AndAnd:      "AndAnd",
	Pipe:        "Pipe",
	OrOr:        "OrOr",
	Caret:       "Caret",
	Tilde:       "Tilde",
	TildeCaret:  "TildeCaret",
	Question:    "Question",
	Colon:       "Colon",
	ColonColon:  "ColonColon",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Dot:         "Dot",
	DotStar:     "DotStar",
	Hash:        "Hash",
	At:          "At",
	Apostrophe:  "Apostrophe",
	Dollar:      "Dollar",
	Arrow:       "Arrow",
	PlusPlus:    "PlusPlus",
	MinusMinus:  "MinusMinus",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
