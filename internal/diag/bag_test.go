package diag

import (
	"testing"

	"svfmt/internal/source"
)

func TestBagCapAndErrors(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: FmtLineOverflow}) {
		t.Fatalf("first add rejected")
	}
	if !bag.Add(Diagnostic{Severity: SevError, Code: ClassifyUnbalanced}) {
		t.Fatalf("second add rejected")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: LexUnterminatedString}) {
		t.Fatalf("add beyond cap accepted")
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("severity predicates wrong: errors=%v warnings=%v", bag.HasErrors(), bag.HasWarnings())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(8)
	spanAt := func(start uint32) source.Span {
		return source.Span{File: 0, Start: start, End: start + 1}
	}
	bag.Add(Diagnostic{Severity: SevInfo, Code: FmtLineOverflow, Primary: spanAt(40)})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnterminatedString, Primary: spanAt(10)})
	bag.Add(Diagnostic{Severity: SevInfo, Code: FmtLineOverflow, Primary: spanAt(40)})

	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Dedup left %d items, want 2", bag.Len())
	}
	if bag.Items()[0].Code != LexUnterminatedString {
		t.Fatalf("Sort order wrong, first = %s", bag.Items()[0].Code)
	}
}

func TestCodeString(t *testing.T) {
	if got := FmtSemanticDrift.String(); got != "SVF3001" {
		t.Errorf("FmtSemanticDrift.String() = %q", got)
	}
	if got := Code(4242).String(); got != "SVF4242" {
		t.Errorf("unknown code String() = %q", got)
	}
}
