package format

import "fmt"

// EquivalenceKind distinguishes the two verifier failures.
type EquivalenceKind uint8

const (
	// SemanticDrift means a non-whitespace token changed: a formatter bug,
	// fatal for the file, never silently accepted.
	SemanticDrift EquivalenceKind = iota
	// NotIdempotent means reformatting the output changed it again: a bug
	// that is reported but does not block emitting the output.
	NotIdempotent
)

// EquivalenceError is the verifier's finding.
type EquivalenceError struct {
	Kind EquivalenceKind
	// Index is the position of the first diverging token in the
	// whitespace-stripped stream; meaningful for SemanticDrift only.
	Index int
}

func (e *EquivalenceError) Error() string {
	if e.Kind == SemanticDrift {
		return fmt.Sprintf("verify: semantic drift at token %d", e.Index)
	}
	return "verify: formatter output is not idempotent"
}
