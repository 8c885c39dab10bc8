package utils

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"imu-load/models"
)

// DefaultStepMs resamples at roughly video frame rate (~30 Hz).
const DefaultStepMs = 33

// ─── Section configs ────────────────────────────────────────────────────

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type AlignmentConfig struct {
	StepMs          int      `yaml:"step_ms"`
	Fields          []string `yaml:"fields"`
	ClipToRecording bool     `yaml:"clip_to_recording"`
}

// Config is the top-level structure for imuload.yaml.
type Config struct {
	Logging   LoggingConfig             `yaml:"logging"`
	Alignment AlignmentConfig           `yaml:"alignment"`
	Profiles  []*models.RecorderProfile `yaml:"profiles"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Alignment.StepMs == 0 {
		c.Alignment.StepMs = DefaultStepMs
	}
}

// Validate checks level names, step size and every declared profile.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Alignment.StepMs < 0 {
		return fmt.Errorf("alignment: step_ms must be positive, got %d", c.Alignment.StepMs)
	}
	names := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p == nil {
			return fmt.Errorf("profiles[%d] is empty", i)
		}
		if err := p.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(p.Name)
		if names[key] {
			return fmt.Errorf("profile %s declared twice", p.Name)
		}
		names[key] = true
	}
	return nil
}

// Profile resolves a profile by name: config-declared profiles shadow the
// built-in ones.
func (c *Config) Profile(name string) (*models.RecorderProfile, error) {
	for _, p := range c.Profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	if p, ok := models.LookupProfile(name); ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown recorder profile %q", name)
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadConfig reads, defaults and validates imuload.yaml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}
