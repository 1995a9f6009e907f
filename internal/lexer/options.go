package lexer

import (
	"svfmt/internal/diag"
	"svfmt/internal/source"
)

// Options configures a Lexer. A nil Reporter drops diagnostics but lexing
// still continues; errors remain observable through Lexer.Err.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
