package format

// Options carries the style constants. They are threaded by value through
// the pipeline so concurrent runs with different configurations never
// interfere.
type Options struct {
	// LineLimit is the maximum display width of an output line.
	LineLimit int
	// AlignColumn is the display column at which aligned fields (signal
	// names, connection parentheses) start, counted from the line start
	// including indentation.
	AlignColumn int
	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.LineLimit == 0 {
		o.LineLimit = 100
	}
	if o.AlignColumn == 0 {
		o.AlignColumn = 50
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}
