// Package render provides a line-oriented report printer for terminals and CI.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/conform/internal/adapters/detector"
	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
	"go.trai.ch/conform/internal/ui/style"
)

var _ ports.ReportRenderer = (*Renderer)(nil)

// Renderer implements ports.ReportRenderer with chronological, prefixed lines.
type Renderer struct {
	stdout io.Writer
	output *termenv.Output
}

// NewRenderer creates a Renderer writing to stdout.
// The color profile follows the detected environment (NO_COLOR, CI).
func NewRenderer(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}

	e, err := detector.Detect()
	profile := termenv.Ascii
	if err == nil {
		profile = e.ColorProfile()
	}

	return &Renderer{
		stdout: stdout,
		output: termenv.NewOutput(stdout, termenv.WithProfile(profile)),
	}
}

// Render prints each rule result followed by a summary line.
func (r *Renderer) Render(report *domain.Report) {
	errs, warns := 0, 0

	for _, res := range report.Results {
		if len(res.Violations) == 0 {
			continue
		}

		header := r.output.String(fmt.Sprintf("%s (%s)", res.Rule, res.Severity)).Bold().String()
		_, _ = fmt.Fprintln(r.stdout, header)

		icon, color := style.Cross, style.Red
		if res.Severity == domain.SeverityWarning {
			icon, color = style.Warning, style.Yellow
		}
		for _, v := range res.Violations {
			mark := r.output.String(icon).Foreground(r.output.Color(string(color))).String()
			_, _ = fmt.Fprintf(r.stdout, "  %s %s\n", mark, v.Message)
			if res.Severity == domain.SeverityWarning {
				warns++
			} else {
				errs++
			}
		}
	}

	r.renderSummary(errs, warns)
}

func (r *Renderer) renderSummary(errs, warns int) {
	if errs == 0 && warns == 0 {
		check := r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
		_, _ = fmt.Fprintf(r.stdout, "%s no violations found\n", check)
		return
	}

	summary := fmt.Sprintf("%d violation(s): %d error(s), %d warning(s)", errs+warns, errs, warns)
	color := style.Yellow
	if errs > 0 {
		color = style.Red
	}
	_, _ = fmt.Fprintln(r.stdout, r.output.String(summary).Foreground(r.output.Color(string(color))).String())
}
