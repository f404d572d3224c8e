// Package app implements the application layer for conform.
package app

import (
	"context"

	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
	"go.trai.ch/conform/internal/engine/runner"
	"go.trai.ch/conform/internal/rules"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *rules.Registry
	runner       *runner.Runner
	renderer     ports.ReportRenderer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry *rules.Registry,
	run *runner.Runner,
	renderer ports.ReportRenderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		runner:       run,
		renderer:     renderer,
		logger:       log,
	}
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Dir is the directory config discovery starts from. Empty means ".".
	Dir string

	// FailOnWarning makes warning-severity violations fail the run too.
	FailOnWarning bool
}

// Check runs the configured conformance rules against the workspace and
// renders the resulting report. It returns ErrConformanceFailed when the
// report contains failures; configuration problems are returned as-is.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	configured, err := a.registry.Build(cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to configure rules")
	}

	report := a.runner.Run(ctx, runner.NewWorkspaceContext(cfg.Root), configured)
	a.renderer.Render(report)

	if report.HasFailures() {
		return domain.ErrConformanceFailed
	}
	if opts.FailOnWarning && report.TotalViolations() > 0 {
		return domain.ErrConformanceFailed
	}
	return nil
}
