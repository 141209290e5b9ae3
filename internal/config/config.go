package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It locates the content repository, the configuration document, and the
// locale and watch settings used when resolving it.
type Config struct {
	Repository struct {
		Root     string `yaml:"root"`     // Filesystem root of the content repository
		Document string `yaml:"document"` // Repository path of the configuration document
		Registry string `yaml:"registry"` // Path of the resource-type registry file (optional)
	} `yaml:"repository"`
	Locales struct {
		Requested string `yaml:"requested"` // Locale requested by the authoring session
		Default   string `yaml:"default"`   // Fallback locale
	} `yaml:"locales"`
	Naming struct {
		TempPrefix string `yaml:"temp_prefix"` // Prefix of in-progress file names
	} `yaml:"naming"`
	WatchMode struct {
		Enabled  bool `yaml:"enabled"`  // Enable document watch mode
		Debounce int  `yaml:"debounce"` // Debounce interval in milliseconds
	} `yaml:"watch_mode"`
	Debug bool `yaml:"debug"` // Enable debug logging
}

// LoadConfig loads configuration from the default location
// (~/.config/newelem/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "newelem", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Repository.Root != "" {
		cfg.Repository.Root = tempCfg.Repository.Root
	}
	if tempCfg.Repository.Document != "" {
		cfg.Repository.Document = tempCfg.Repository.Document
	}
	if tempCfg.Repository.Registry != "" {
		cfg.Repository.Registry = tempCfg.Repository.Registry
	}
	if tempCfg.Locales.Requested != "" {
		cfg.Locales.Requested = tempCfg.Locales.Requested
	}
	if tempCfg.Locales.Default != "" {
		cfg.Locales.Default = tempCfg.Locales.Default
	}
	if tempCfg.Naming.TempPrefix != "" {
		cfg.Naming.TempPrefix = tempCfg.Naming.TempPrefix
	}

	cfg.WatchMode.Enabled = tempCfg.WatchMode.Enabled
	if tempCfg.WatchMode.Debounce > 0 {
		cfg.WatchMode.Debounce = tempCfg.WatchMode.Debounce
	}
	cfg.Debug = tempCfg.Debug

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Repository.Root = "."
	cfg.Repository.Document = "/.config/new-elements.xml"

	cfg.Locales.Requested = "en"
	cfg.Locales.Default = "en"

	cfg.Naming.TempPrefix = "~"

	cfg.WatchMode.Enabled = false
	cfg.WatchMode.Debounce = 250

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Repository.Root == "" {
		return fmt.Errorf("repository root is required")
	}
	if c.Repository.Document == "" {
		return fmt.Errorf("configuration document path is required")
	}
	if c.Locales.Default == "" {
		return fmt.Errorf("default locale is required")
	}
	if c.Naming.TempPrefix == "" {
		return fmt.Errorf("temp prefix must not be empty")
	}
	if c.WatchMode.Debounce < 0 {
		return fmt.Errorf("watch debounce must be >= 0 milliseconds")
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Repository.Root = os.TempDir()
	cfg.Repository.Document = "/new-elements.xml"
	cfg.Locales.Requested = "en"
	cfg.Locales.Default = "en"
	return cfg
}
