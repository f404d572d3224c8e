// Package config provides the configuration loader for conform.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/conform/internal/core/domain"
	"go.trai.ch/conform/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers conform.yaml starting from cwd and parses it into a
// CheckConfig. Rules keep the order they appear in the file.
func (l *Loader) Load(cwd string) (*domain.CheckConfig, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Discovered path under cwd
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(readErr, "path", configPath)
	}

	var file configFile
	if err := decodeStrict(data, &file); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(parseErr, "path", configPath)
	}

	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q in %s, proceeding as version 1", file.Version, domain.ConfigFileName))
	}

	rules, err := parseRules(&file.Rules)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if len(rules) == 0 {
		return nil, zerr.With(domain.ErrNoRulesConfigured, "path", configPath)
	}

	root, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get absolute path of workspace root")
	}

	return &domain.CheckConfig{
		Root:  root,
		Rules: rules,
	}, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// parseRules iterates the rules mapping node in document order.
func parseRules(node *yaml.Node) ([]domain.RuleConfig, error) {
	if node == nil || node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrConfigParseFailed, "reason", "rules must be a mapping")
	}

	var rules []domain.RuleConfig
	// Mapping nodes store alternating key and value nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var dto ruleDTO
		raw, err := yaml.Marshal(valueNode)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		if err := decodeStrict(raw, &dto); err != nil {
			parseErr := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return nil, zerr.With(parseErr, "rule", keyNode.Value)
		}

		severity, err := domain.ParseSeverity(dto.Severity)
		if err != nil {
			return nil, zerr.With(err, "rule", keyNode.Value)
		}

		var opts *yaml.Node
		if dto.Options.Kind != 0 {
			opts = &dto.Options
		}

		rules = append(rules, domain.RuleConfig{
			Name:     keyNode.Value,
			Severity: severity,
			Options:  opts,
		})
	}
	return rules, nil
}

func decodeStrict(data []byte, dst any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
