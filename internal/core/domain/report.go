package domain

import "go.trai.ch/zerr"

// Severity classifies how a rule's violations are treated by the caller.
// Rules never compute severity; it is assigned from configuration.
type Severity string

const (
	// SeverityError fails the check run when violations are present.
	SeverityError Severity = "error"
	// SeverityWarning reports violations without failing the run.
	SeverityWarning Severity = "warning"
)

// ParseSeverity converts a configuration string into a Severity.
// An empty string defaults to SeverityError.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityError, SeverityWarning:
		return Severity(s), nil
	case "":
		return SeverityError, nil
	default:
		return "", zerr.With(ErrInvalidSeverity, "severity", s)
	}
}

// RuleResult holds the outcome of evaluating a single rule.
type RuleResult struct {
	// Rule is the name of the evaluated rule.
	Rule string

	// Severity is the caller-assigned severity for this rule.
	Severity Severity

	// Violations are the mismatches found, in deterministic order.
	Violations []Violation
}

// Report aggregates the results of a full check run.
// Results appear in the order rules were configured.
type Report struct {
	Results []RuleResult
}

// TotalViolations returns the number of violations across all results.
func (r *Report) TotalViolations() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Violations)
	}
	return n
}

// HasFailures reports whether any error-severity result has violations.
func (r *Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Severity == SeverityError && len(res.Violations) > 0 {
			return true
		}
	}
	return false
}
