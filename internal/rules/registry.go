// Package rules wires the built-in conformance rules.
//
// The set of rules is fixed at compile time. There is no discovery or
// plugin mechanism; adding a rule means adding a factory here.
package rules

import (
	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
	"go.trai.ch/conform/internal/rules/enforceversion"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type factory func(reader ports.ManifestReader, options *yaml.Node) (ports.Rule, error)

var builtins = map[string]factory{
	enforceversion.RuleName: func(reader ports.ManifestReader, options *yaml.Node) (ports.Rule, error) {
		opts, err := enforceversion.DecodeOptions(options)
		if err != nil {
			return nil, err
		}
		return enforceversion.New(reader, enforceversion.DefaultPrefix, opts), nil
	},
}

// Registry builds rule instances from configuration.
type Registry struct {
	reader ports.ManifestReader
}

// NewRegistry creates a Registry backed by the given manifest reader.
func NewRegistry(reader ports.ManifestReader) *Registry {
	return &Registry{reader: reader}
}

// Build instantiates every configured rule, preserving config order.
// Unknown rule names and invalid options are configuration errors.
func (r *Registry) Build(cfg *domain.CheckConfig) ([]ports.ConfiguredRule, error) {
	var configured []ports.ConfiguredRule
	for _, rc := range cfg.Rules {
		build, ok := builtins[rc.Name]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownRule, "rule", rc.Name)
		}

		rule, err := build(r.reader, rc.Options)
		if err != nil {
			return nil, zerr.With(err, "rule", rc.Name)
		}

		configured = append(configured, ports.ConfiguredRule{
			Rule:     rule,
			Severity: rc.Severity,
		})
	}
	return configured, nil
}
