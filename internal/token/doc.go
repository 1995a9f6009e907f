// Package token defines the lexical token kinds for SystemVerilog source.
//
// Unlike a compiler front end, the formatter keeps whitespace in the token
// stream: space runs, newlines, comments, and compiler directives are all
// ordinary tokens, so the concatenation of every token's Text reproduces the
// input file exactly. That invariant is what lets the equivalence checker
// prove that formatting changed nothing but whitespace.
package token
