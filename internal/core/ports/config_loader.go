package ports

import "go.trai.ch/conform/internal/core/domain"

// ConfigLoader defines the interface for loading the conformance configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from the given working directory to find conform.yaml
	// and parses it. The returned config carries the workspace root, the
	// directory containing the file.
	Load(cwd string) (*domain.CheckConfig, error)
}
