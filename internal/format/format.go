package format

import (
	"bytes"

	"svfmt/internal/diag"
	"svfmt/internal/layout"
	"svfmt/internal/lexer"
	"svfmt/internal/source"
)

// Result is one file's formatting outcome.
type Result struct {
	Output  []byte
	Changed bool
}

// Source runs the full pipeline on one file: lex, classify, render, verify.
// A lex or classify failure is fatal for the file (the caller keeps the
// original bytes). Semantic drift is fatal too. A non-idempotent result is
// reported as a warning but the output is still returned: it is stylistic,
// not semantic.
func Source(file *source.File, opts Options, rep diag.Reporter) (Result, error) {
	opts = opts.withDefaults()
	if rep == nil {
		rep = diag.NopReporter{}
	}

	toks, lexErr := lexer.ScanAll(file, lexer.Options{Reporter: rep})
	if lexErr != nil {
		return Result{}, lexErr
	}

	units, classErr := layout.Classify(toks)
	if classErr != nil {
		rep.Report(diag.ClassifyUnbalanced, diag.SevError,
			source.Span{File: file.ID}, classErr.Reason, nil)
		return Result{}, classErr
	}

	out := render(toks, units, opts, rep)

	if idx, bad := drift(toks, out, file.Path); bad {
		rep.Report(diag.FmtSemanticDrift, diag.SevError,
			source.Span{File: file.ID},
			"formatting changed a non-whitespace token", nil)
		return Result{}, &EquivalenceError{Kind: SemanticDrift, Index: idx}
	}

	again, err := formatBytes(out, file.Path, opts)
	if err != nil || !bytes.Equal(again, out) {
		rep.Report(diag.FmtNotIdempotent, diag.SevWarning,
			source.Span{File: file.ID},
			"formatter output is not a fixed point", nil)
	}

	return Result{
		Output:  out,
		Changed: !bytes.Equal(out, file.Content),
	}, nil
}
