package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"svfmt/internal/layout"
	"svfmt/internal/token"
)

// Plan is one alignment decision: how much padding puts the aligned field at
// the target column, and whether the single-space fallback had to apply
// because the pre-column content already reached the target.
type Plan struct {
	Target   int
	Pad      int
	Fallback bool
}

// alignAt plans padding from display column cur to the target column.
func alignAt(cur, target int) Plan {
	if cur >= target {
		return Plan{Target: target, Pad: 1, Fallback: true}
	}
	return Plan{Target: target, Pad: target - cur}
}

func (p Plan) spaces() string {
	return strings.Repeat(" ", p.Pad)
}

func width(s string) int {
	return runewidth.StringWidth(s)
}

// pad extends s with spaces to the given display width. Content already
// wider is returned unchanged.
func pad(s string, w int) string {
	for width(s) < w {
		s += " "
	}
	return s
}

// joinType renders a type prefix: space-separated words at bracket depth
// zero, tight packed dimensions, so `logic[7:0]` and `logic   [ 7:0 ]` both
// become `logic [7:0]`.
func joinType(toks []token.Token, idxs []int) string {
	var b strings.Builder
	depth := 0
	prev := token.Invalid
	for i, idx := range idxs {
		t := toks[idx]
		if t.Kind == token.RBracket {
			depth--
		}
		if i > 0 && depth == 0 && t.Kind != token.RBracket {
			switch {
			case t.Kind == token.ColonColon || prev == token.ColonColon:
			case t.Kind == token.LBracket && prev == token.RBracket:
			default:
				b.WriteByte(' ')
			}
		}
		if t.Kind == token.LBracket {
			depth++
		}
		b.WriteString(t.Text)
		prev = t.Kind
	}
	return b.String()
}

// run returns the end of the maximal run of units of the given kind starting
// at i, skipping nothing: the run breaks at the first unit of a different
// kind, including blank lines, so sibling alignment never reaches across a
// visual gap.
func run(units []layout.Unit, i int, kind layout.UnitKind) int {
	j := i
	for j < len(units) && units[j].Kind == kind {
		j++
	}
	return j
}
