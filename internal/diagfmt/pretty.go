package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lsys/internal/diag"
	"lsys/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	codeColor = color.New(color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждого diag печатает:
// <input>:<col>: <SEV> <CODE>: <Message>
// затем текст входа с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, set *source.Set, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, d, set, opts)
		writeUnderline(w, d.Primary, set)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "  note: %s\n", note.Msg)
				writeUnderline(w, note.Span, set)
			}
		}
	}
}

func writeHeader(w io.Writer, d diag.Diagnostic, set *source.Set, opts PrettyOpts) {
	sev := severityLabel(d.Severity)
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = codeColor.Sprint(code)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", inputLabel(d.Primary, set), sev, code, d.Message)
}

// writeUnderline печатает текст входа и строку с ^~~~ под спаном.
// Входы однострочные, так что колонка равна байтовому смещению.
func writeUnderline(w io.Writer, sp source.Span, set *source.Set) {
	if set == nil {
		return
	}
	in := set.Get(sp.Input)
	if in == nil || len(in.Content) == 0 {
		return
	}
	text := in.Text()
	fmt.Fprintf(w, "  %s\n", text)

	start := int(sp.Start)
	if start > len(text) {
		start = len(text)
	}
	width := int(sp.End) - start
	if width < 1 {
		width = 1
	}
	if start+width > len(text)+1 {
		width = len(text) + 1 - start
	}
	fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", start), strings.Repeat("~", width-1))
}

func inputLabel(sp source.Span, set *source.Set) string {
	if set == nil {
		return "<input>"
	}
	if in := set.Get(sp.Input); in != nil {
		return fmt.Sprintf("%s:%d", in.Name, sp.Start+1)
	}
	return "<input>"
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
