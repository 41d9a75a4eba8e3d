package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	combo "github.com/inference-gateway/keychord/internal/keybinding/combo"
	viper "github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"
)

const (
	ConfigDirName  = ".keychord"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "KEYCHORD"

	DefaultSequenceTimeoutMs = 800
)

// DefaultConfigPath is the project-relative config location
var DefaultConfigPath = filepath.Join(ConfigDirName, ConfigFileName)

// Config represents the keychord configuration
type Config struct {
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Keybindings KeybindingsConfig `yaml:"keybindings" mapstructure:"keybindings"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	Dir   string `yaml:"dir,omitempty" mapstructure:"dir"`
}

// KeybindingsConfig contains the scopes and bindings loaded into the engine
type KeybindingsConfig struct {
	SequenceTimeoutMs int           `yaml:"sequence_timeout_ms" mapstructure:"sequence_timeout_ms"`
	Scopes            []ScopeConfig `yaml:"scopes" mapstructure:"scopes"`
}

// ScopeConfig describes one scope and its bindings
type ScopeConfig struct {
	ID       string            `yaml:"id" mapstructure:"id"`
	Priority int               `yaml:"priority" mapstructure:"priority"`
	Active   *bool             `yaml:"active,omitempty" mapstructure:"active"`
	Bindings []KeyBindingEntry `yaml:"bindings" mapstructure:"bindings"`
}

// KeyBindingEntry binds one or more combos or sequences to an action
type KeyBindingEntry struct {
	Keys            []string `yaml:"keys" mapstructure:"keys"`
	Action          string   `yaml:"action" mapstructure:"action"`
	Description     string   `yaml:"description,omitempty" mapstructure:"description"`
	AllowWhenTyping bool     `yaml:"allow_when_typing,omitempty" mapstructure:"allow_when_typing"`
	PreventDefault  *bool    `yaml:"prevent_default,omitempty" mapstructure:"prevent_default"`
	StopPropagation *bool    `yaml:"stop_propagation,omitempty" mapstructure:"stop_propagation"`
	Continue        *bool    `yaml:"continue,omitempty" mapstructure:"continue"`
	Enabled         *bool    `yaml:"enabled,omitempty" mapstructure:"enabled"`
}

// IsActive reports the scope's initial active flag, true when unset
func (s ScopeConfig) IsActive() bool {
	return s.Active == nil || *s.Active
}

// IsEnabled reports whether the binding should be registered, true when unset
func (e KeyBindingEntry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// SequenceTimeout returns the chord timeout, falling back to the default
func (k KeybindingsConfig) SequenceTimeout() time.Duration {
	if k.SequenceTimeoutMs <= 0 {
		return DefaultSequenceTimeoutMs * time.Millisecond
	}
	return time.Duration(k.SequenceTimeoutMs) * time.Millisecond
}

// Scope returns the scope with the given id
func (k KeybindingsConfig) Scope(id string) (*ScopeConfig, bool) {
	for i := range k.Scopes {
		if k.Scopes[i].ID == id {
			return &k.Scopes[i], true
		}
	}
	return nil, false
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Debug: false,
		},
		Keybindings: KeybindingsConfig{
			SequenceTimeoutMs: DefaultSequenceTimeoutMs,
			Scopes:            DefaultScopes(),
		},
	}
}

// NewViper creates a viper instance reading configPath with KEYCHORD_ env overrides
func NewViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.debug", false)
	v.SetDefault("logging.dir", "")
	v.SetDefault("keybindings.sequence_timeout_ms", DefaultSequenceTimeoutMs)

	return v
}

// Load reads the configuration at configPath. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	v := NewViper(configPath)
	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	return FromViper(v)
}

// FromViper decodes a configuration from an already prepared viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if !v.IsSet("keybindings.scopes") {
		cfg.Keybindings.Scopes = DefaultScopes()
	}

	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks scope ids and that every configured key parses
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool)

	for i, scope := range c.Keybindings.Scopes {
		if scope.ID == "" {
			errs = append(errs, fmt.Errorf("scope #%d: id cannot be empty", i+1))
			continue
		}
		if seen[scope.ID] {
			errs = append(errs, fmt.Errorf("scope %q: declared more than once", scope.ID))
		}
		seen[scope.ID] = true

		for _, entry := range scope.Bindings {
			if len(entry.Keys) == 0 {
				errs = append(errs, fmt.Errorf("scope %q, action %q: no keys", scope.ID, entry.Action))
			}
			for _, key := range entry.Keys {
				if _, err := combo.NormalizeSequence(key); err != nil {
					errs = append(errs, fmt.Errorf("scope %q, action %q: %w", scope.ID, entry.Action, err))
				}
			}
		}
	}

	return errors.Join(errs...)
}
