package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/conform/internal/adapters/manifest"
	"go.trai.ch/conform/internal/core/domain"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestReader_Read(t *testing.T) {
	t.Run("preserves document order", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{
			"name": "demo",
			"dependencies": {
				"@angular/core": "20.1.0",
				"@angular/common": "20.0.0",
				"lodash": "4.17.21"
			},
			"devDependencies": {
				"@angular/cli": "20.1.0"
			}
		}`)

		reader := manifest.NewReader()
		m, err := reader.Read(path)
		require.NoError(t, err)

		assert.Equal(t, []domain.Dependency{
			{Name: "@angular/core", Version: "20.1.0"},
			{Name: "@angular/common", Version: "20.0.0"},
			{Name: "lodash", Version: "4.17.21"},
		}, m.Dependencies)
	})

	t.Run("ignores devDependencies", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{
			"dependencies": {},
			"devDependencies": {"@angular/cli": "19.0.0"}
		}`)

		reader := manifest.NewReader()
		m, err := reader.Read(path)
		require.NoError(t, err)
		assert.Empty(t, m.Dependencies)
	})

	t.Run("absent dependencies section is not an error", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"name": "demo"}`)

		reader := manifest.NewReader()
		m, err := reader.Read(path)
		require.NoError(t, err)
		assert.Empty(t, m.Dependencies)
	})

	t.Run("missing file fails with read error", func(t *testing.T) {
		reader := manifest.NewReader()
		_, err := reader.Read(filepath.Join(t.TempDir(), domain.ManifestFileName))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestReadFailed.Error())
	})

	t.Run("malformed JSON fails with parse error", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"dependencies": {`)

		reader := manifest.NewReader()
		_, err := reader.Read(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
	})

	t.Run("non-object dependencies fails with parse error", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"dependencies": ["lodash"]}`)

		reader := manifest.NewReader()
		_, err := reader.Read(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
	})

	t.Run("cache returns identical results for unchanged content", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `{"dependencies": {"@angular/core": "20.1.0"}}`)

		reader := manifest.NewReader()
		first, err := reader.Read(path)
		require.NoError(t, err)
		second, err := reader.Read(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("cache is invalidated when content changes", func(t *testing.T) {
		dir := t.TempDir()
		path := writeManifest(t, dir, `{"dependencies": {"@angular/core": "20.0.0"}}`)

		reader := manifest.NewReader()
		m, err := reader.Read(path)
		require.NoError(t, err)
		require.Equal(t, "20.0.0", m.Dependencies[0].Version)

		writeManifest(t, dir, `{"dependencies": {"@angular/core": "20.1.0"}}`)
		m, err = reader.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "20.1.0", m.Dependencies[0].Version)
	})
}
