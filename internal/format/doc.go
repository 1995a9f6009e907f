// Package format is the layout engine: it turns a classified token stream
// back into text that satisfies the style rules (100-column limit, aligned
// identifier column, mandated blank-line separators) without changing any
// non-whitespace token. The column planner decides padding, the line wrapper
// splits overlong lines at construct-appropriate points, the renderer
// serializes units, and the verifier re-lexes the result to prove the
// non-whitespace token stream survived.
package format
