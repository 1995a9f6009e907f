package format

import (
	"strings"
	"testing"

	"svfmt/internal/diag"
	"svfmt/internal/lexer"
	"svfmt/internal/source"
	"svfmt/internal/token"
)

func fmtSource(t *testing.T, src string) string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	res, err := Source(fs.Get(id), Options{}, diag.NopReporter{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	return string(res.Output)
}

func commentTexts(t *testing.T, src string) []string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.sv", []byte(src))
	toks, lexErr := lexer.ScanAll(fs.Get(id), lexer.Options{})
	if lexErr != nil {
		t.Fatalf("lex failed: %v", lexErr)
	}
	var out []string
	for _, tok := range toks {
		if tok.IsComment() {
			out = append(out, tok.Text)
		}
	}
	return out
}

const skidBufferSrc = `// skid buffer with one cycle of slack
module skid_buffer #(
  parameter int WIDTH = 8
) (
  input logic clk,
  input logic rst_n,
  input logic [WIDTH-1:0] in_data,
  input logic in_valid,
  output logic in_ready,
  output logic [WIDTH-1:0] out_data,
  output logic out_valid,
  input logic out_ready
);

  typedef enum logic {
    PASS = 1'b0,
    HOLD = 1'b1
  } state_t;

  state_t state;
  logic [WIDTH-1:0] skid_data;

  assign in_ready = (state == PASS);
  assign out_valid = in_valid | (state == HOLD);
  assign out_data = (state == HOLD) ? skid_data : in_data;

  always_ff @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
      state <= PASS;
    end else begin
      case (state)
        PASS: begin
          if (in_valid && !out_ready) begin
            skid_data <= in_data;
            state <= HOLD;
          end
        end
        HOLD: begin
          if (out_ready) begin
            state <= PASS;
          end
        end
      endcase
    end
  end

endmodule
`

const counterSrc = `module counter #(
  parameter int WIDTH = 8
) (
  input logic clk,
  input logic rst_n,
  output logic [WIDTH-1:0] count
);
  logic [WIDTH-1:0] next; // next value
  assign next = count + 1'b1;
  always_ff @(posedge clk or negedge rst_n) begin
    if (!rst_n) begin
      count <= '0;
    end else begin
      count <= next;
    end
  end
endmodule
`

func TestMinimalDeclPadding(t *testing.T) {
	got := fmtSource(t, "logic[7:0] foo;\n")
	want := "logic [7:0]" + strings.Repeat(" ", 39) + "foo;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTwoPortAlignment(t *testing.T) {
	src := `module m (
  input logic clk,
  output logic [15:0] data_o
);
endmodule
`
	got := fmtSource(t, src)
	lines := strings.Split(got, "\n")

	var clkLine, dataLine string
	for _, l := range lines {
		if strings.Contains(l, "clk") {
			clkLine = l
		}
		if strings.Contains(l, "data_o") {
			dataLine = l
		}
	}
	if idx := strings.Index(clkLine, "clk"); idx != 50 {
		t.Errorf("clk starts at column %d, want 50: %q", idx, clkLine)
	}
	if !strings.HasSuffix(clkLine, ",") {
		t.Errorf("non-final port not comma-terminated: %q", clkLine)
	}
	if idx := strings.Index(dataLine, "data_o"); idx != 50 {
		t.Errorf("data_o starts at column %d, want 50: %q", idx, dataLine)
	}
	if strings.HasSuffix(dataLine, ",") {
		t.Errorf("final port must not be comma-terminated: %q", dataLine)
	}
}

func TestConnectionFallbackSingleSpace(t *testing.T) {
	name := strings.Repeat("p", 52)
	src := "module top;\n  sub u0 (\n    ." + name + "(sig)\n  );\nendmodule\n"
	got := fmtSource(t, src)

	needle := "." + name + " (sig)"
	if !strings.Contains(got, needle) {
		t.Errorf("over-column connection did not get the single-space fallback:\n%s", got)
	}
}

func TestIdempotenceFixtures(t *testing.T) {
	fixtures := map[string]string{
		"counter":     counterSrc,
		"skid buffer": skidBufferSrc,
	}
	for name, src := range fixtures {
		t.Run(name, func(t *testing.T) {
			once := fmtSource(t, src)
			twice := fmtSource(t, once)
			if once != twice {
				t.Errorf("format is not a fixed point:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
			}
		})
	}
}

func TestTokenPreservation(t *testing.T) {
	for name, src := range map[string]string{
		"counter": counterSrc,
		"skid":    skidBufferSrc,
	} {
		t.Run(name, func(t *testing.T) {
			got := fmtSource(t, src)
			if err := Verify([]byte(src), []byte(got), Options{}); err != nil {
				t.Errorf("verification failed: %v", err)
			}
		})
	}
}

func TestCommentPreservation(t *testing.T) {
	src := `// header comment
module m (
  input logic clk // clock
);

  /* state register */
  logic r; // plain flop

endmodule // m
`
	got := fmtSource(t, src)
	in := commentTexts(t, src)
	out := commentTexts(t, got)
	if len(in) != len(out) {
		t.Fatalf("comment count changed: %d -> %d", len(in), len(out))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("comment %d changed: %q -> %q", i, in[i], out[i])
		}
	}
}

func TestLineLimit(t *testing.T) {
	got := fmtSource(t, skidBufferSrc)
	for i, line := range strings.Split(got, "\n") {
		if len(line) > 100 {
			t.Errorf("line %d exceeds 100 columns (%d): %q", i+1, len(line), line)
		}
	}
}

func TestInstanceConnectionLayout(t *testing.T) {
	src := `module top;
  wire a;

  lut6 #(
    .INIT (64'hFF00FF00FF00FF00)
  ) u_lut (
    .I0(a), .I1(b), .I2(c), .I3(d), .I4(e), .I5(f)
  );
endmodule
`
	got := fmtSource(t, src)
	lines := strings.Split(got, "\n")

	cols := make([]int, 0, 6)
	parens := make([]int, 0, 6)
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " ")
		if len(trimmed) > 2 && trimmed[0] == '.' && trimmed[1] == 'I' && trimmed[2] >= '0' && trimmed[2] <= '5' {
			cols = append(cols, len(l)-len(trimmed))
			parens = append(parens, strings.Index(l, "("))
		}
	}
	if len(cols) != 6 {
		t.Fatalf("expected 6 connection lines, got %d:\n%s", len(cols), got)
	}
	for i := 1; i < len(cols); i++ {
		if cols[i] != cols[0] {
			t.Errorf("connection %d indented at %d, first at %d", i, cols[i], cols[0])
		}
	}
	for i, p := range parens {
		if p != 50 {
			t.Errorf("connection %d parenthesis at column %d, want 50", i, p)
		}
	}
}

func TestMandatedBlankLines(t *testing.T) {
	got := fmtSource(t, skidBufferSrc)

	if !strings.HasPrefix(got, "// skid buffer with one cycle of slack\n\n") {
		t.Error("missing blank line after header comment block")
	}
	if !strings.Contains(got, ");\n\n") {
		t.Error("missing blank line after port list")
	}
	if !strings.Contains(got, "  end\n\nendmodule") {
		t.Error("missing blank line after procedural block")
	}
}

func TestBlankRunsCollapse(t *testing.T) {
	src := "module m;\n\n\n\n  wire a;\n\n\n\nendmodule\n"
	got := fmtSource(t, src)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank run not collapsed:\n%q", got)
	}
}

func TestLongAssignWraps(t *testing.T) {
	terms := []string{
		"aaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbb", "cccccccccccccccc",
		"dddddddddddddddd", "eeeeeeeeeeeeeeee",
	}
	src := "module m;\n  assign result = " + strings.Join(terms, " + ") + ";\nendmodule\n"
	got := fmtSource(t, src)

	for i, line := range strings.Split(got, "\n") {
		if len(line) > 100 {
			t.Errorf("line %d not wrapped (%d cols): %q", i+1, len(line), line)
		}
	}
	if err := Verify([]byte(src), []byte(got), Options{}); err != nil {
		t.Errorf("verification failed after wrapping: %v", err)
	}
	if fmtSource(t, got) != got {
		t.Error("wrapped output is not a fixed point")
	}

	// Continuation starts under the first character after `=`.
	lines := strings.Split(got, "\n")
	var first, cont string
	for i, l := range lines {
		if strings.Contains(l, "assign result = ") {
			first = l
			if i+1 < len(lines) {
				cont = lines[i+1]
			}
		}
	}
	wantCol := strings.Index(first, "= ") + 2
	contCol := len(cont) - len(strings.TrimLeft(cont, " "))
	if contCol != wantCol {
		t.Errorf("continuation at column %d, want %d:\n%s", contCol, wantCol, got)
	}
}

func TestDirectivePassthrough(t *testing.T) {
	src := "`define WIDTH 8\n`include \"defs.svh\"\n"
	got := fmtSource(t, src)
	if got != src {
		t.Errorf("directives must pass through untouched:\n%q", got)
	}
}

func TestDeclFallbackSingleSpace(t *testing.T) {
	typ := "logic [" + strings.Repeat("W", 45) + "-1:0]"
	src := typ + " x;\n"
	got := fmtSource(t, src)
	want := typ + " x;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSiblingEqAlignment(t *testing.T) {
	src := `module m;
  wire a = 1'b0;
  wire long_name = 1'b1;
endmodule
`
	got := fmtSource(t, src)
	lines := strings.Split(got, "\n")
	var eqCols []int
	for _, l := range lines {
		if i := strings.Index(l, "= "); i >= 0 && strings.Contains(l, "wire") {
			eqCols = append(eqCols, i)
		}
	}
	if len(eqCols) != 2 || eqCols[0] != eqCols[1] {
		t.Errorf("sibling `=` not aligned: %v\n%s", eqCols, got)
	}
}

func TestVerifyDetectsDrift(t *testing.T) {
	err := Verify([]byte("assign a = b;\n"), []byte("assign a = c;\n"), Options{})
	if err == nil || err.Kind != SemanticDrift {
		t.Fatalf("expected semantic drift, got %v", err)
	}
}

func TestSourceFailClosed(t *testing.T) {
	cases := map[string]string{
		"unterminated comment": "/* never closed\nmodule m;\nendmodule\n",
		"unbalanced begin":     "always_comb begin\n  x = 1;\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual("bad.sv", []byte(src))
			bag := diag.NewBag(16)
			res, err := Source(fs.Get(id), Options{}, diag.BagReporter{Bag: bag})
			if err == nil {
				t.Fatal("expected an error")
			}
			if res.Output != nil {
				t.Error("fail-closed file must produce no output")
			}
			if bag.Len() == 0 {
				t.Error("error not surfaced as a diagnostic")
			}
		})
	}
}

func TestAlignAt(t *testing.T) {
	cases := []struct {
		cur, target  int
		pad          int
		wantFallback bool
	}{
		{10, 50, 40, false},
		{49, 50, 1, false},
		{50, 50, 1, true},
		{72, 50, 1, true},
	}
	for _, tc := range cases {
		p := alignAt(tc.cur, tc.target)
		if p.Pad != tc.pad || p.Fallback != tc.wantFallback {
			t.Errorf("alignAt(%d, %d) = %+v, want pad %d fallback %v",
				tc.cur, tc.target, p, tc.pad, tc.wantFallback)
		}
	}
}

func TestExprSpacing(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"a+b", "a + b"},
		{"( state == PASS )", "(state == PASS)"},
		{"{ a ,b }", "{a, b}"},
		{"sel?x:y", "sel ? x : y"},
		{"data [ 7 : 0 ]", "data[7:0]"},
		{"~ en", "~en"},
		{"f ( x )", "f(x)"},
	}
	for _, tc := range cases {
		fs := source.NewFileSet()
		id := fs.AddVirtual("e.sv", []byte(tc.src))
		toks, lexErr := lexer.ScanAll(fs.Get(id), lexer.Options{})
		if lexErr != nil {
			t.Fatalf("lex %q: %v", tc.src, lexErr)
		}
		var idxs []int
		for i, tok := range toks {
			if !tok.IsWhitespace() && tok.Kind != token.EOF {
				idxs = append(idxs, i)
			}
		}
		r := &renderer{toks: toks, opts: Options{}.withDefaults()}
		if got := r.exprString(idxs); got != tc.want {
			t.Errorf("exprString(%q) = %q, want %q", tc.src, got, tc.want)
		}
	}
}
