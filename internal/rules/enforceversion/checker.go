// Package enforceversion implements the dependency version conformance rule.
//
// The rule reads the workspace manifest and reports a workspace-level
// violation for every dependency under a configured name prefix whose
// declared version differs, by exact text comparison, from the required
// version. Only the top-level "dependencies" section is inspected;
// devDependencies and transitively resolved versions are not checked.
package enforceversion

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
)

const (
	// RuleName is the identifier used in configuration and reports.
	RuleName = "enforce-version"

	// DefaultPrefix is the dependency-name prefix the built-in
	// registration targets.
	DefaultPrefix = "@angular/"
)

var _ ports.Rule = (*Checker)(nil)

// Checker implements ports.Rule for a single name prefix and required version.
type Checker struct {
	reader ports.ManifestReader
	prefix string
	opts   Options
}

// New creates a Checker for dependencies whose name begins with prefix.
// An empty prefix falls back to DefaultPrefix.
func New(reader ports.ManifestReader, prefix string, opts Options) *Checker {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Checker{reader: reader, prefix: prefix, opts: opts}
}

// Name returns the rule identifier.
func (c *Checker) Name() string {
	return RuleName
}

// Check reads the workspace manifest and compares matching dependency
// versions against the required version. Version specifiers are opaque
// text: no normalization, no range satisfaction. Violations follow
// manifest document order. A read or parse failure is returned as-is;
// the runner converts it into a workspace-level violation.
func (c *Checker) Check(_ context.Context, rctx ports.RuleContext) ([]domain.Violation, error) {
	manifest, err := c.reader.Read(filepath.Join(rctx.WorkspaceRoot(), domain.ManifestFileName))
	if err != nil {
		return nil, err
	}

	var violations []domain.Violation
	for _, dep := range manifest.Dependencies {
		if !strings.HasPrefix(dep.Name, c.prefix) {
			continue
		}
		if dep.Version == c.opts.Version {
			continue
		}
		violations = append(violations, domain.NewWorkspaceViolation(fmt.Sprintf(
			"%s: expected version %s, found %s", dep.Name, c.opts.Version, dep.Version,
		)))
	}
	return violations, nil
}
