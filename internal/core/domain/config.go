package domain

import "gopkg.in/yaml.v3"

// ConfigFileName is the name of the workspace conformance config file.
// The directory containing it is the workspace root.
const ConfigFileName = "conform.yaml"

// ManifestFileName is the name of the dependency manifest read by checks.
const ManifestFileName = "package.json"

// DirPerm is the permission used when creating directories.
const DirPerm = 0o755

// FilePerm is the permission used when writing files.
const FilePerm = 0o644

// RuleConfig is the configuration for a single rule instance.
// Options is kept as a raw YAML node; the rule implementation decodes it
// strictly against its own options schema.
type RuleConfig struct {
	// Name is the rule identifier (e.g., "enforce-version").
	Name string

	// Severity is the caller-assigned severity for this rule.
	Severity Severity

	// Options is the undecoded rule options block.
	Options *yaml.Node
}

// CheckConfig is the loaded workspace conformance configuration.
type CheckConfig struct {
	// Root is the absolute workspace root, the directory containing the
	// config file.
	Root string

	// Rules are the configured rules in file order.
	Rules []RuleConfig
}
