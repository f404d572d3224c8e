package render_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/conform/internal/adapters/render"
	"go.trai.ch/conform/internal/core/domain"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name       string
		results    []domain.RuleResult
		goldenName string
	}{
		{
			name: "error violations",
			results: []domain.RuleResult{
				{
					Rule:     "enforce-version",
					Severity: domain.SeverityError,
					Violations: []domain.Violation{
						domain.NewWorkspaceViolation("@angular/common: expected version 20.1.0, found 20.0.0"),
					},
				},
			},
			goldenName: "render_error_violations",
		},
		{
			name: "clean report",
			results: []domain.RuleResult{
				{Rule: "enforce-version", Severity: domain.SeverityError},
			},
			goldenName: "render_clean",
		},
		{
			name: "warnings counted separately",
			results: []domain.RuleResult{
				{
					Rule:     "enforce-version",
					Severity: domain.SeverityWarning,
					Violations: []domain.Violation{
						domain.NewWorkspaceViolation("mismatch one"),
						domain.NewWorkspaceViolation("mismatch two"),
					},
				},
			},
			goldenName: "render_warnings",
		},
		{
			name: "rules without violations are skipped",
			results: []domain.RuleResult{
				{Rule: "enforce-version", Severity: domain.SeverityWarning},
				{
					Rule:     "enforce-version",
					Severity: domain.SeverityError,
					Violations: []domain.Violation{
						domain.NewWorkspaceViolation("@angular/core: expected version 20.1.0, found 19.2.0"),
					},
				},
			},
			goldenName: "render_skips_clean_rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			r := render.NewRenderer(buf)

			r.Render(&domain.Report{Results: tt.results})

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
