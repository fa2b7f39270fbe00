package diagfmt

import (
	"encoding/json"
	"io"

	"lsys/internal/diag"
	"lsys/internal/source"
)

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Input    string     `json:"input,omitempty"`
	Start    uint32     `json:"start"`
	End      uint32     `json:"end"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

type jsonNote struct {
	Message string `json:"message"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
}

// JSON сериализует диагностики для машинной обработки.
func JSON(w io.Writer, bag *diag.Bag, set *source.Set, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: severityLabel(d.Severity),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		if set != nil {
			if in := set.Get(d.Primary.Input); in != nil {
				jd.Input = in.Name
			}
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{
					Message: note.Msg,
					Start:   note.Span.Start,
					End:     note.Span.End,
				})
			}
		}
		out = append(out, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
