// Package manifest implements ports.ManifestReader over package.json-style files.
package manifest

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/tidwall/gjson"
	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader reads and parses dependency manifests.
//
// Parsed manifests are cached per path, keyed by a content hash, so
// repeated reads of an unchanged file within one process reuse the parse.
// The cache never changes observable results: a re-read of modified
// content always re-parses.
type Reader struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	hash     uint64
	manifest *domain.Manifest
}

// NewReader creates a new Reader with an empty cache.
func NewReader() *Reader {
	return &Reader{cache: make(map[string]cacheEntry)}
}

// Read loads the manifest at path. The returned manifest carries the
// entries of the top-level "dependencies" object in document order.
// Other sections, including devDependencies, are not read.
func (r *Reader) Read(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	sum := xxhash.Sum64(data)

	r.mu.Lock()
	entry, ok := r.cache[path]
	r.mu.Unlock()
	if ok && entry.hash == sum {
		return entry.manifest, nil
	}

	manifest, err := parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	r.mu.Lock()
	r.cache[path] = cacheEntry{hash: sum, manifest: manifest}
	r.mu.Unlock()

	return manifest, nil
}

func parse(data []byte) (*domain.Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrManifestParseFailed
	}

	manifest := &domain.Manifest{}
	deps := gjson.GetBytes(data, "dependencies")
	if !deps.Exists() {
		// Absent section is not an error; there is simply nothing to check.
		return manifest, nil
	}
	if !deps.IsObject() {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "dependencies is not an object")
	}

	deps.ForEach(func(key, value gjson.Result) bool {
		manifest.Dependencies = append(manifest.Dependencies, domain.Dependency{
			Name:    key.String(),
			Version: value.String(),
		})
		return true
	})
	return manifest, nil
}
