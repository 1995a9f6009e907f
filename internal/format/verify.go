package format

import (
	"bytes"

	"svfmt/internal/diag"
	"svfmt/internal/layout"
	"svfmt/internal/lexer"
	"svfmt/internal/source"
	"svfmt/internal/token"
)

// stripWhitespace drops whitespace and newline tokens (and the trailing
// EOF), keeping comments: comment text is part of the preserved stream.
func stripWhitespace(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.Whitespace, token.Newline, token.EOF:
		default:
			out = append(out, t)
		}
	}
	return out
}

// drift compares the whitespace-stripped token streams of the original and
// the formatted text. It returns the index of the first diverging token.
func drift(orig []token.Token, formatted []byte, name string) (int, bool) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, formatted)
	outToks, lexErr := lexer.ScanAll(fs.Get(id), lexer.Options{})
	if lexErr != nil {
		return 0, true
	}

	a := stripWhitespace(orig)
	b := stripWhitespace(outToks)
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}

// formatBytes runs the pipeline on raw bytes without verification, for the
// idempotence check.
func formatBytes(data []byte, name string, opts Options) ([]byte, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, data)
	file := fs.Get(id)

	toks, lexErr := lexer.ScanAll(file, lexer.Options{})
	if lexErr != nil {
		return nil, lexErr
	}
	units, classErr := layout.Classify(toks)
	if classErr != nil {
		return nil, classErr
	}
	return render(toks, units, opts, diag.NopReporter{}), nil
}

// Verify is the correctness gate from the component contract: it proves the
// formatted text carries the original's non-whitespace token stream and is
// a fixed point of the formatter.
func Verify(original, formatted []byte, opts Options) *EquivalenceError {
	opts = opts.withDefaults()

	fs := source.NewFileSet()
	id := fs.AddVirtual("original", original)
	origToks, lexErr := lexer.ScanAll(fs.Get(id), lexer.Options{})
	if lexErr != nil {
		// The original did not even lex; nothing to compare against.
		return &EquivalenceError{Kind: SemanticDrift}
	}
	if idx, bad := drift(origToks, formatted, "formatted"); bad {
		return &EquivalenceError{Kind: SemanticDrift, Index: idx}
	}

	again, err := formatBytes(formatted, "formatted", opts)
	if err != nil || !bytes.Equal(again, formatted) {
		return &EquivalenceError{Kind: NotIdempotent}
	}
	return nil
}
