package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Every error the formatter can produce
// maps to exactly one code; nothing is ever swallowed.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical: the only inputs the lexer rejects.
	LexInfo                     Code = 1000
	LexUnterminatedString       Code = 1001
	LexUnterminatedBlockComment Code = 1002

	// Structural classification: fail-closed, the file is left untouched.
	ClassifyInfo           Code = 2000
	ClassifyUnbalanced     Code = 2001
	ClassifyUnclosedModule Code = 2002

	// Formatting verification and residual cases.
	FmtInfo          Code = 3000
	FmtSemanticDrift Code = 3001
	FmtNotIdempotent Code = 3002
	FmtLineOverflow  Code = 3003

	// Driver I/O.
	IOLoadFileError Code = 4000
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "SVF0000"
	case LexInfo:
		return "SVF1000"
	case LexUnterminatedString:
		return "SVF1001"
	case LexUnterminatedBlockComment:
		return "SVF1002"
	case ClassifyInfo:
		return "SVF2000"
	case ClassifyUnbalanced:
		return "SVF2001"
	case ClassifyUnclosedModule:
		return "SVF2002"
	case FmtInfo:
		return "SVF3000"
	case FmtSemanticDrift:
		return "SVF3001"
	case FmtNotIdempotent:
		return "SVF3002"
	case FmtLineOverflow:
		return "SVF3003"
	case IOLoadFileError:
		return "SVF4000"
	default:
		return fmt.Sprintf("SVF%04d", uint16(c))
	}
}
