package config

import (
	"fmt"

	"github.com/adilkhan-sa/bluelink-gateway/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server   ServerConfig
		Bluelink BluelinkConfig
		Log      LogConfig
	}

	ServerConfig struct {
		Port string `env:"PORT" default:"8080"`
	}

	// BluelinkConfig configures the telematics vendor client. BaseURL
	// overrides the per-region endpoint; it is mostly useful for tests
	// and local vendor mocks.
	BluelinkConfig struct {
		BaseURL string `env:"BLUELINK_BASE_URL"`
		Region  string `env:"BLUELINK_REGION" default:"US"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"DEBUG"`
	}
)

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
