package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrConfigNotFound is returned when no conform.yaml is found walking up
	// from the working directory.
	ErrConfigNotFound = zerr.New("could not find conform.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownRule is returned when the config names a rule that is not
	// registered.
	ErrUnknownRule = zerr.New("unknown rule")

	// ErrInvalidSeverity is returned when a rule severity is not "error" or
	// "warning".
	ErrInvalidSeverity = zerr.New("invalid severity, expected 'error' or 'warning'")

	// ErrInvalidRuleOptions is returned when a rule's options do not match
	// its schema.
	ErrInvalidRuleOptions = zerr.New("invalid rule options")

	// ErrMissingVersion is returned when the enforce-version options are
	// missing a non-empty version.
	ErrMissingVersion = zerr.New("version must be a non-empty string")

	// ErrNoRulesConfigured is returned when the config declares no rules.
	ErrNoRulesConfigured = zerr.New("no rules configured")

	// ErrConformanceFailed is returned when a check run produced
	// error-severity violations.
	ErrConformanceFailed = zerr.New("conformance check failed")
)
