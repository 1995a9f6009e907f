package diagfmt

import (
	"encoding/json"
	"io"

	"svfmt/internal/diag"
	"svfmt/internal/source"
)

type jsonNote struct {
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message"`
}

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Path     string     `json:"path,omitempty"`
	Line     uint32     `json:"line,omitempty"`
	Col      uint32     `json:"col,omitempty"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// JSON writes the bag as a JSON array. A nil FileSet drops locations.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	payload := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
		}
		if fs != nil {
			start, _ := fs.Resolve(d.Primary)
			jd.Path = displayPath(fs.Get(d.Primary.File).Path, opts.PathMode)
			jd.Line = start.Line
			jd.Col = start.Col
			if opts.IncludeNotes {
				for _, n := range d.Notes {
					nStart, _ := fs.Resolve(n.Span)
					jd.Notes = append(jd.Notes, jsonNote{
						Line: nStart.Line, Col: nStart.Col, Message: n.Msg,
					})
				}
			}
		}
		payload = append(payload, jd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
