package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultPatchRoot    = "patchverk"
	DefaultFieldManager = "patchverk"
)

// Config holds the settings read from .patchverk.yaml. Command line flags take precedence.
type Config struct {
	Kubeconfig   string `yaml:"kubeconfig,omitempty"`
	PatchRoot    string `yaml:"patchRoot"`
	FieldManager string `yaml:"fieldManager"`
	DryRun       bool   `yaml:"dryRun"`
}

func CreateDefaultConfig() Config {
	return Config{
		Kubeconfig:   "~/.kube/config",
		PatchRoot:    DefaultPatchRoot,
		FieldManager: DefaultFieldManager,
	}
}

// ApplyDefaults fills empty fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.PatchRoot == "" {
		c.PatchRoot = DefaultPatchRoot
	}
	if c.FieldManager == "" {
		c.FieldManager = DefaultFieldManager
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.PatchRoot) == "" {
		return fmt.Errorf("patchRoot must not be empty")
	}
	if strings.TrimSpace(c.FieldManager) == "" {
		return fmt.Errorf("fieldManager must not be empty")
	}
	if len(c.FieldManager) > 128 {
		return fmt.Errorf("fieldManager '%s' is longer than 128 characters", c.FieldManager)
	}

	return nil
}
