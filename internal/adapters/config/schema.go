package config

import "gopkg.in/yaml.v3"

// configFile is the on-disk shape of conform.yaml.
//
// Rules is kept as a raw node so that rule order in the file is preserved;
// decoding into a Go map would lose it.
type configFile struct {
	Version string    `yaml:"version"`
	Rules   yaml.Node `yaml:"rules"`
}

// ruleDTO is the per-rule configuration block.
type ruleDTO struct {
	Severity string    `yaml:"severity"`
	Options  yaml.Node `yaml:"options"`
}
