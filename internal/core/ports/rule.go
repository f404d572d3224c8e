package ports

import (
	"context"

	"go.trai.ch/conform/internal/core/domain"
)

// RuleContext is the narrow view of the invocation environment a rule is
// given. It exposes only what rules need, decoupling them from the full
// host contract.
//
//go:generate mockgen -source=rule.go -destination=mocks/mock_rule.go -package=mocks
type RuleContext interface {
	// WorkspaceRoot returns the absolute path of the workspace root.
	WorkspaceRoot() string
}

// Rule is a single conformance check evaluated against a workspace.
type Rule interface {
	// Name returns the rule identifier used in configuration and reports.
	Name() string

	// Check evaluates the rule and returns the violations found.
	// A returned error means the rule could not be evaluated at all; the
	// caller converts it into a workspace-level violation rather than
	// aborting the run.
	Check(ctx context.Context, rctx RuleContext) ([]domain.Violation, error)
}

// ConfiguredRule pairs a rule instance with its caller-assigned severity.
type ConfiguredRule struct {
	Rule     Rule
	Severity domain.Severity
}
