package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/remotedata"
)

// DefaultFileNames are searched, in order, when no config path is given.
var DefaultFileNames = []string{".netguard.toml", ".netguard.yaml", ".netguard.yml"}

// Config holds netguard CLI settings
type Config struct {
	RemoteData string `toml:"remote_data" yaml:"remote_data"`
	Verbose    bool   `toml:"verbose" yaml:"verbose"`
	JSON       bool   `toml:"json" yaml:"json"`
	AuditLog   string `toml:"audit_log" yaml:"audit_log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{RemoteData: string(remotedata.ModeNone)}
}

// Mode returns the parsed remote-data mode.
func (c *Config) Mode() (remotedata.Mode, error) {
	return remotedata.ParseMode(c.RemoteData)
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.AuditLog != "" && strings.HasSuffix(c.AuditLog, string(filepath.Separator)) {
		return fmt.Errorf("audit_log must be a file path, got directory %q", c.AuditLog)
	}
	return nil
}

// ResolvePath returns path unchanged when absolute, and otherwise joins it
// to root without letting it escape root.
func ResolvePath(root, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	resolved, err := securejoin.SecureJoin(root, path)
	if err != nil {
		return "", fmt.Errorf("invalid config path %q: %w", path, err)
	}
	return resolved, nil
}

// Find returns the first DefaultFileNames entry present in dir, or "".
func Find(dir string) string {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads a TOML or YAML config file, chosen by extension, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .toml, .yaml, or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
