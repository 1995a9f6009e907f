// Package diagfmt renders diagnostics and token dumps for the CLI.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths the way they were given.
	PathModeAuto PathMode = iota
	// PathModeBasename shows only the file name.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context enables the offending source line with a caret underline.
	Context   bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode PathMode
	// Max truncates the output, not the bag. Zero means everything.
	Max          int
	IncludeNotes bool
}
