package domain_test

import (
	"testing"

	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in      string
		want    domain.Severity
		wantErr bool
	}{
		{in: "error", want: domain.SeverityError},
		{in: "warning", want: domain.SeverityWarning},
		{in: "", want: domain.SeverityError},
		{in: "critical", wantErr: true},
	}

	for _, tc := range cases {
		got, err := domain.ParseSeverity(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSeverity(%q): expected error, got nil", tc.in)
				continue
			}
			zErr, ok := err.(*zerr.Error)
			if !ok {
				t.Errorf("ParseSeverity(%q): expected *zerr.Error, got %T", tc.in, err)
				continue
			}
			meta := zErr.Metadata()
			if sev, ok := meta["severity"].(string); !ok || sev != tc.in {
				t.Errorf("ParseSeverity(%q): expected metadata severity=%q, got %v", tc.in, tc.in, meta["severity"])
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSeverity(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSeverity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReport_HasFailures(t *testing.T) {
	violation := domain.NewWorkspaceViolation("mismatch")

	report := &domain.Report{Results: []domain.RuleResult{
		{Rule: "a", Severity: domain.SeverityWarning, Violations: []domain.Violation{violation}},
	}}
	if report.HasFailures() {
		t.Error("warning-only report should not have failures")
	}
	if got := report.TotalViolations(); got != 1 {
		t.Errorf("TotalViolations() = %d, want 1", got)
	}

	report.Results = append(report.Results, domain.RuleResult{
		Rule: "b", Severity: domain.SeverityError, Violations: []domain.Violation{violation},
	})
	if !report.HasFailures() {
		t.Error("error-severity violations should fail the report")
	}
}

func TestNewWorkspaceViolation(t *testing.T) {
	v := domain.NewWorkspaceViolation("@angular/common: expected version 20.1.0, found 20.0.0")
	if !v.WorkspaceViolation {
		t.Error("expected workspace-scoped violation")
	}
	if v.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestDependency_String(t *testing.T) {
	d := domain.Dependency{Name: "@angular/core", Version: "20.1.0"}
	if got := d.String(); got != "@angular/core@20.1.0" {
		t.Errorf("String() = %q", got)
	}
}
