package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"schedexpr.dev/pkg/schedule"
)

// RenderDiagnostic writes d in the style of a compiler error, underlining
// the part of the expression it refers to:
//
//	error[invalid_time]: Invalid time: hour must be 0-23 for 24-hour format, got 25
//	  | every day at 25:00
//	  |              ^^^^^
func RenderDiagnostic(w io.Writer, expression string, d schedule.Diagnostic) {
	var (
		red   = color.New(color.FgRed, color.Bold)
		cyan  = color.New(color.FgCyan)
		faint = color.New(color.Faint)
	)

	_, _ = red.Fprintf(w, "error[%s]", d.Kind)
	_, _ = fmt.Fprintf(w, ": %s\n", d.Message)

	norm := schedule.Normalize(expression)
	if norm != "" && d.Span.End > d.Span.Start && d.Span.End <= len(norm) {
		_, _ = cyan.Fprint(w, "  | ")
		_, _ = fmt.Fprintln(w, norm)
		_, _ = cyan.Fprint(w, "  | ")
		// Spans are byte offsets; the underline is laid out in display columns.
		pad := runewidth.StringWidth(norm[:d.Span.Start])
		width := max(runewidth.StringWidth(norm[d.Span.Start:d.Span.End]), 1)
		_, _ = red.Fprintln(w, strings.Repeat(" ", pad)+strings.Repeat("^", width))
	}
	if d.Help != "" {
		_, _ = cyan.Fprint(w, "  = help: ")
		_, _ = fmt.Fprintln(w, d.Help)
	}
	if d.Detail != "" {
		_, _ = faint.Fprintf(w, "  = note: %s\n", d.Detail)
	}
}
