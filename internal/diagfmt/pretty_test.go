package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"svfmt/internal/diag"
	"svfmt/internal/lexer"
	"svfmt/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("dut.sv", []byte("logic [7:0 x;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ClassifyUnbalanced,
		Message:  "unbalanced bracket",
		Primary:  source.Span{File: id, Start: 6, End: 10},
	})
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: true})
	out := buf.String()

	if !strings.Contains(out, "dut.sv:1:7: ERROR SVF2001: unbalanced bracket") {
		t.Errorf("missing headline:\n%s", out)
	}
	if !strings.Contains(out, "logic [7:0 x;") {
		t.Errorf("missing context line:\n%s", out)
	}
	if !strings.Contains(out, "^~~~") {
		t.Errorf("missing caret underline:\n%s", out)
	}
}

func TestPrettyNilFileSet(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{})
	if !strings.Contains(buf.String(), "ERROR SVF4000: failed to load file") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var payload []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(payload))
	}
	if payload[0]["code"] != "SVF2001" || payload[0]["path"] != "dut.sv" {
		t.Errorf("unexpected payload: %v", payload[0])
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sv", []byte("logic x;\n"))
	toks, lexErr := lexer.ScanAll(fs.Get(id), lexer.Options{})
	if lexErr != nil {
		t.Fatal(lexErr)
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "KwLogic") || !strings.Contains(out, `"x"`) {
		t.Errorf("unexpected dump:\n%s", out)
	}
}
