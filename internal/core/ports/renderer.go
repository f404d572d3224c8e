package ports

import "go.trai.ch/conform/internal/core/domain"

// ReportRenderer is the abstraction for presenting a check report.
// It decouples the check run from presentation so the same report can
// drive terminal output or machine-readable formats.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	// Render writes the report to the renderer's output.
	Render(report *domain.Report)
}
