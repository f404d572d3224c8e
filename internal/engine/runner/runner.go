// Package runner evaluates configured conformance rules against a workspace.
package runner

import (
	"context"
	"runtime"

	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Runner is the host side of the rule invocation boundary. Individual
// rules are synchronous; the runner owns whatever concurrency exists.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run evaluates the rules and aggregates their results into a Report.
//
// Rules run independently. A rule that fails to evaluate (e.g. the
// manifest cannot be read) contributes a single workspace-level violation
// carrying the error text; it never aborts the run. Results keep the
// order rules were configured in, regardless of completion order.
func (r *Runner) Run(ctx context.Context, rctx ports.RuleContext, rules []ports.ConfiguredRule) *domain.Report {
	results := make([]domain.RuleResult, len(rules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, configured := range rules {
		g.Go(func() error {
			violations, err := configured.Rule.Check(ctx, rctx)
			if err != nil {
				r.logger.Warn("rule " + configured.Rule.Name() + " could not be evaluated: " + err.Error())
				violations = []domain.Violation{domain.NewWorkspaceViolation(err.Error())}
			}
			results[i] = domain.RuleResult{
				Rule:       configured.Rule.Name(),
				Severity:   configured.Severity,
				Violations: violations,
			}
			return nil
		})
	}

	// Rule failures are folded into results, so Wait never returns an error.
	_ = g.Wait()

	return &domain.Report{Results: results}
}
