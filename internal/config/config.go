package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aberthier/kinerecon/internal/model"
)

// Config holds all runtime configuration for a kinerecon run.
type Config struct {
	PersonalPath  string
	PersonalSheet string // "" means first sheet
	FacilityPath  string
	FacilitySheet string // "" means first sheet
	OutputPath    string
	ArchivePath   string
	Password      string
	ErrorLogDir   string
	LogFormat     string   // "text" or "json"
	LogLevel      string   // zerolog level name
	Codes         []string `yaml:"codes"` // optional code subset; empty compares everything
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Codes []string `yaml:"codes"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Codes = yc.Codes
	return c.validateCodes()
}

// validateCodes checks that every entry in Codes is a known billing code.
// An empty list is valid and means no filtering.
func (c *Config) validateCodes() error {
	for _, name := range c.Codes {
		if _, ok := model.CodeByName(name); !ok {
			return fmt.Errorf("unknown billing code %q in config", name)
		}
	}
	return nil
}

// AllowedCodes returns the configured code subset as a lookup set, or nil
// when no subset is configured. Facility reports can carry codes outside
// the known vocabulary, so nil means keep every extracted record, not
// every known code.
func (c *Config) AllowedCodes() map[string]struct{} {
	if len(c.Codes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.Codes))
	for _, n := range c.Codes {
		set[n] = struct{}{}
	}
	return set
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.PersonalPath == "" {
		return fmt.Errorf("--personal is required")
	}
	if c.FacilityPath == "" {
		return fmt.Errorf("--facility is required")
	}
	if _, err := os.Stat(c.PersonalPath); err != nil {
		return fmt.Errorf("personal log not accessible: %w", err)
	}
	if _, err := os.Stat(c.FacilityPath); err != nil {
		return fmt.Errorf("facility report not accessible: %w", err)
	}
	return c.validateCodes()
}
