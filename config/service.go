package config

import (
	"fmt"

	"github.com/skillsenselab/bearerkit/credential"
	"github.com/skillsenselab/bearerkit/logger"
)

// ServiceConfig contains the identity fields every service needs.
type ServiceConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults applies default values to the service identity.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates the service identity fields.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("service.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return fmt.Errorf("service.environment must be one of [development, staging, production] (got: %s)", c.Environment)
}

// TelemetryConfig configures OTLP export for traces and metrics.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate. Zero means unset and defaults
	// to 1.0; use a negative rate to disable sampling entirely.
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// ApplyDefaults applies development defaults to telemetry settings.
func (c *TelemetryConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}

// Config is the root configuration for a service embedding bearer-token
// authentication. Services with more sections define their own struct and
// load it with Load the same way.
type Config struct {
	Service   ServiceConfig       `yaml:"service" mapstructure:"service"`
	Logging   logger.Config       `yaml:"logging" mapstructure:"logging"`
	Auth      credential.Settings `yaml:"auth" mapstructure:"auth"`
	Telemetry TelemetryConfig     `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills unset fields bottom-up and propagates the service name
// into logging.
func (c *Config) ApplyDefaults() {
	c.Service.ApplyDefaults()
	if c.Logging.ServiceName == "" && c.Service.Name != "" {
		c.Logging.ServiceName = c.Service.Name
	}
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks every section and fails on the first violation. Missing
// credential fields and duplicate scheme names surface here; undecodable key
// material surfaces at registry construction. Both happen before serving.
func (c *Config) Validate() error {
	if err := c.Service.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}
