// Package layout segments a token stream into layout units: the structural
// pieces (module headers, port lists, declarations, instances, procedural
// blocks, ...) that the formatter knows how to lay out.
//
// Classification is shallow and pattern-based. It keys on token kinds and
// bracket/keyword nesting only; it never builds a semantic model of the
// design. Any statement that does not match a known shape becomes an Opaque
// unit and is passed through byte for byte, so the worst a misjudged pattern
// can do is leave code unformatted. Unbalanced nesting is fatal for the whole
// file: a structurally ambiguous input is never partially reformatted.
package layout
