package source

import (
	"testing"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.sv", []byte("logic a;\nlogic b;\n"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Fatalf("virtual file missing FileVirtual flag")
	}

	// "logic b" starts at offset 9, line 2, col 1.
	start, _ := fs.Resolve(Span{File: id, Start: 9, End: 16})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("Resolve = %+v, want line 2 col 1", start)
	}
}

func TestToLineColMultiLine(t *testing.T) {
	idx := buildLineIndex([]byte("module m;\nlogic a;\nendmodule\n"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},   // start of file
		{7, 1, 8},   // mid first line
		{9, 1, 10},  // the newline belongs to line 1
		{10, 2, 1},  // first byte after a newline
		{17, 2, 8},  // semicolon of `logic a;`
		{19, 3, 1},  // start of `endmodule`
		{28, 3, 10}, // trailing newline
	}
	for _, tc := range cases {
		lc := toLineCol(idx, tc.off)
		if lc.Line != tc.line || lc.Col != tc.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d",
				tc.off, lc.Line, lc.Col, tc.line, tc.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.sv", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.num); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}

func TestGetByPathTracksLatest(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.sv", []byte("old"))
	fs.AddVirtual("a.sv", []byte("new"))

	f, ok := fs.GetByPath("a.sv")
	if !ok {
		t.Fatalf("GetByPath did not find a.sv")
	}
	if string(f.Content) != "new" {
		t.Fatalf("GetByPath content = %q, want latest version", f.Content)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatalf("expected CRLF normalization to report a change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Fatalf("unexpected change for input without CR")
	}
	if string(out) != "plain\n" {
		t.Fatalf("normalizeCRLF mangled input: %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Fatalf("removeBOM = %q, had=%v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Fatalf("removeBOM false positive on short input")
	}
}

func TestToLineColEmptyIndex(t *testing.T) {
	lc := toLineCol(nil, 5)
	if lc.Line != 1 || lc.Col != 6 {
		t.Fatalf("toLineCol(nil, 5) = %+v", lc)
	}
}
