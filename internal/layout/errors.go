package layout

import "fmt"

// ClassifyError reports a structurally ambiguous file: unbalanced nesting
// that makes it unsafe to reformat anything. The file is left untouched.
type ClassifyError struct {
	Reason    string
	UnitIndex int
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify: %s (unit %d)", e.Reason, e.UnitIndex)
}
