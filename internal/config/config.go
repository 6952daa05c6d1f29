package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ExportConfig names where the combined table is written after a load.
type ExportConfig struct {
	Output   string `yaml:"output,omitempty"`
	SQLite   string `yaml:"sqlite,omitempty"`
	Postgres string `yaml:"postgres,omitempty"`
	Table    string `yaml:"table,omitempty"`
	Replace  bool   `yaml:"replace,omitempty"`
}

// ProjectConfig holds tabload.yaml defaults. Unset booleans stay nil so
// callers can tell "absent" from "false".
type ProjectConfig struct {
	Recursive         *bool        `yaml:"recursive,omitempty"`
	Verbose           *bool        `yaml:"verbose,omitempty"`
	ColumnConsistency string       `yaml:"column_consistency,omitempty"`
	Export            ExportConfig `yaml:"export,omitempty"`
}

const ConfigFileName = tabload.ConfigFileName

// Load reads tabload.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads and validates a config file at an explicit path.
// Unknown keys are rejected.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %v", path, tabload.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Policy returns the configured column consistency policy, PolicyError when unset.
func (c *ProjectConfig) Policy() (tabload.Policy, error) {
	return tabload.ParsePolicy(c.ColumnConsistency)
}

// Validate checks field values. Export targets are validated when used.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	if (c.Export.SQLite != "" || c.Export.Postgres != "") && c.Export.Table == "" {
		errs = append(errs, fmt.Errorf("export.table is required with a database target: %w", tabload.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
