// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/conform/internal/core/domain"

// ManifestReader defines the interface for reading dependency manifests.
//
//go:generate mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read loads and parses the manifest at the given path.
	// The returned manifest preserves the document order of the
	// "dependencies" section.
	Read(path string) (*domain.Manifest, error)
}
