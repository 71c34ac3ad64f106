package core

import (
	"fmt"

	"patchverk/internal/core/domain"
	"patchverk/internal/ports"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilePath is looked up in the working directory, next to the patch root.
const DefaultConfigFilePath = ".patchverk.yaml"

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	InitConfig() error
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	overrides   domain.ConfigOverrides
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(
	fileService ports.FileSystem,
	overrides domain.ConfigOverrides,
) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
		overrides:   overrides,
	}
}

func (c *FileSystemConfigRepository) configFilePath() string {
	if c.overrides.ConfigPath != "" {
		return c.overrides.ConfigPath
	}
	return DefaultConfigFilePath
}

// LoadConfig reads the config file if present and applies command line overrides.
// A missing file is not an error unless its path was given explicitly.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	var config domain.Config
	fileExists, err := c.ConfigExists()
	if err != nil {
		return nil, err
	}
	if !fileExists && c.overrides.ConfigPath != "" {
		return nil, fmt.Errorf("config file %s does not exist", c.overrides.ConfigPath)
	}
	if fileExists {
		data, err := c.fileService.ReadFile(c.configFilePath())
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	config = c.overrides.Merge(config)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config

	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(c.configFilePath(), data, ports.ReadAllWriteOwner)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(c.configFilePath())
}

// InitConfig writes the default configuration. It refuses to overwrite an existing file.
func (c *FileSystemConfigRepository) InitConfig() error {
	fileExists, err := c.ConfigExists()
	if err != nil {
		return err
	}
	if fileExists {
		return fmt.Errorf("configuration file already exists at %s", c.configFilePath())
	}

	config := domain.CreateDefaultConfig()
	return c.SaveConfig(&config)
}
