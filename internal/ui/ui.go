// Package ui writes user-facing diagnostics to the diagnostic stream.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Devon-White/monolith/internal/config"
)

var (
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")
)

// Reporter prints diagnostics to w, styled only when color is enabled.
type Reporter struct {
	w      io.Writer
	silent bool

	warning lipgloss.Style
	dim     lipgloss.Style
}

// NewReporter builds a Reporter for the resolved options.
func NewReporter(w io.Writer, opts *config.Options) *Reporter {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	} else {
		r.SetColorProfile(termenv.ANSI)
	}

	return &Reporter{
		w:       w,
		silent:  opts.Silent,
		warning: r.NewStyle().Foreground(yellow),
		dim:     r.NewStyle().Foreground(dim),
	}
}

// HeaderDiagnostics prints each diagnostic. Overwrite notices are
// informational and suppressed in silent mode; dropped pairs always print.
func (r *Reporter) HeaderDiagnostics(diags []config.HeaderDiagnostic) {
	for _, d := range diags {
		if d.Kind.Severity() == config.SeverityInfo {
			if r.silent {
				continue
			}
			fmt.Fprintf(r.w, "%s %s\n", r.dim.Render("·"), d)
			continue
		}
		r.Warn(d.String())
	}
}

// Warn prints a warning line.
func (r *Reporter) Warn(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", r.warning.Render("!"), msg)
}
