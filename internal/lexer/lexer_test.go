package lexer

import (
	"strings"
	"testing"

	"svfmt/internal/diag"
	"svfmt/internal/source"
	"svfmt/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *LexError) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("lex.sv", []byte(src)))
	return ScanAll(sf, Options{})
}

func kindsOf(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

// Concatenating every token's text must reproduce the input byte for byte.
func TestLosslessRoundTrip(t *testing.T) {
	inputs := []string{
		"logic[7:0] foo;",
		"module m #(parameter int W = 8) (input logic clk);\nendmodule\n",
		"// comment\n/* block */ assign a = b & c;\n",
		"`define WIDTH 8\n`ifdef SIM\nlogic x;\n`endif\n",
		"assign v = 8'hFF + 'b01_01 + 4'sd7 + '0 + 3.14 + 2.5e-3;\n",
		"x <= y === z ? {a, b} : c >>> 2;\n",
		"$display(\"hi \\\"there\\\"\");\n",
		"\\weird-name$ [1:0] q;\n",
		"always_ff @(posedge clk or negedge rst_n) begin end\n",
		"\x01\x02 odd bytes\n",
	}
	for _, src := range inputs {
		tokens, _ := lexAll(t, src)
		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Text)
		}
		if sb.String() != src {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", src, sb.String())
		}
	}
}

func TestKeywordAndIdent(t *testing.T) {
	tokens, err := lexAll(t, "module counter;")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	want := []token.Kind{token.KwModule, token.Whitespace, token.Ident, token.Semicolon, token.EOF}
	got := kindsOf(tokens)
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
	if tokens[2].Text != "counter" {
		t.Errorf("ident text = %q", tokens[2].Text)
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"8'hFF;", "8'hFF"},
		{"'b0101;", "'b0101"},
		{"4'sd7;", "4'sd7"},
		{"'0;", "'0"},
		{"'z;", "'z"},
		{"12_000;", "12_000"},
		{"3.14;", "3.14"},
		{"2.5e-3;", "2.5e-3"},
		{"16'hDEAD_BEEF;", "16'hDEAD_BEEF"},
	}
	for _, tc := range cases {
		tokens, err := lexAll(t, tc.src)
		if err != nil {
			t.Fatalf("%q: unexpected lex error: %v", tc.src, err)
		}
		if tokens[0].Kind != token.Number || tokens[0].Text != tc.want {
			t.Errorf("%q: first token = %v %q, want Number %q", tc.src, tokens[0].Kind, tokens[0].Text, tc.want)
		}
	}
}

func TestApostropheNotALiteral(t *testing.T) {
	// Cast and assignment-pattern apostrophes must not glue onto numbers.
	tokens, _ := lexAll(t, "a = int'(x); b = '{0, 1};")
	var apostrophes int
	for _, tok := range tokens {
		if tok.Kind == token.Apostrophe {
			apostrophes++
		}
	}
	if apostrophes != 2 {
		t.Errorf("apostrophe tokens = %d, want 2", apostrophes)
	}
}

func TestDirectiveOpaque(t *testing.T) {
	tokens, _ := lexAll(t, "`define MAX (WIDTH * \\\n  2)\nlogic x;\n")
	if tokens[0].Kind != token.Directive {
		t.Fatalf("first token = %v, want Directive", tokens[0].Kind)
	}
	if !strings.Contains(tokens[0].Text, "\\\n") {
		t.Errorf("directive did not keep its continuation: %q", tokens[0].Text)
	}
	if tokens[1].Kind != token.Newline {
		t.Errorf("directive consumed its newline")
	}
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	tokens, err := lexAll(t, "/* outer /* inner */ x;")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tokens[0].Kind != token.BlockComment || tokens[0].Text != "/* outer /* inner */" {
		t.Fatalf("block comment = %v %q", tokens[0].Kind, tokens[0].Text)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	bag := diag.NewBag(8)
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("bad.sv", []byte("logic a;\n/* never closed")))
	_, err := ScanAll(sf, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatalf("expected LexError for unterminated block comment")
	}
	if err.Offset != 9 {
		t.Errorf("LexError offset = %d, want 9", err.Offset)
	}
	if !bag.HasErrors() {
		t.Errorf("no diagnostic reported")
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := lexAll(t, "x = \"oops\nlogic y;")
	if err == nil {
		t.Fatalf("expected LexError for newline in string")
	}
	if !strings.Contains(err.Reason, "string") {
		t.Errorf("LexError reason = %q", err.Reason)
	}
}

func TestOperators(t *testing.T) {
	tokens, _ := lexAll(t, "a<=b===c<<<2;")
	want := []token.Kind{
		token.Ident, token.LtEq, token.Ident, token.EqEqEq,
		token.Ident, token.Shla, token.Number, token.Semicolon, token.EOF,
	}
	got := kindsOf(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnknownBytePassthrough(t *testing.T) {
	tokens, err := lexAll(t, "\x7f;")
	if err != nil {
		t.Fatalf("unknown byte must not be fatal: %v", err)
	}
	if tokens[0].Kind != token.Unknown || tokens[0].Text != "\x7f" {
		t.Errorf("unknown byte token = %v %q", tokens[0].Kind, tokens[0].Text)
	}
}
