package enforceversion

import (
	"bytes"

	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Options is the configuration for the enforce-version rule.
// The schema allows exactly one key: a required, non-empty version.
type Options struct {
	// Version is the version text every matching dependency must declare.
	Version string `yaml:"version"`
}

// DecodeOptions strictly decodes a raw YAML options node into Options.
// Unknown keys are rejected, mirroring the rule's published schema.
func DecodeOptions(node *yaml.Node) (Options, error) {
	if node == nil {
		return Options{}, domain.ErrMissingVersion
	}

	// yaml.Node.Decode has no strict mode, so round-trip through a
	// decoder with KnownFields enabled.
	raw, err := yaml.Marshal(node)
	if err != nil {
		return Options{}, zerr.Wrap(err, domain.ErrInvalidRuleOptions.Error())
	}

	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return Options{}, zerr.Wrap(err, domain.ErrInvalidRuleOptions.Error())
	}

	if opts.Version == "" {
		return Options{}, domain.ErrMissingVersion
	}
	return opts, nil
}
