package config

import (
	"fmt"

	"github.com/angmorpri/morelib/logger"
	"github.com/angmorpri/morelib/validation"
)

// BaseConfig contains the fields every application using this kit needs.
// Projects extend it by embedding it in their own config structs:
//
//	type AppConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    DataFile string `yaml:"data_file" mapstructure:"data_file"`
//	}
type BaseConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"required,oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetBaseConfig returns the embedded base configuration. When embedded in a
// larger struct the method is promoted, so the embedding struct satisfies
// interfaces expecting it.
func (c *BaseConfig) GetBaseConfig() *BaseConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs override this and call c.BaseConfig.ApplyDefaults() first.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Embedding structs override this and call c.BaseConfig.Validate() first.
func (c *BaseConfig) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
