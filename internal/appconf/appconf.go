// Package appconf holds the server configuration, its TOML file loader,
// and struct-tag validation.
package appconf

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Environment names the operating environment for the server.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// EnvFlagToEnvironment maps an -env flag value onto an Environment,
// defaulting to development for anything unrecognized.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return EnvProduction
	case "staging":
		return EnvStaging
	case "test":
		return EnvTest
	default:
		return EnvDevelopment
	}
}

// Config holds all the configuration settings for the server. Values come
// from command-line flags, optionally overridden by a TOML config file.
type Config struct {
	Port         int         `toml:"port" validate:"gt=0,lte=65535"`
	Env          Environment `toml:"env" validate:"oneof=development staging production test"`
	ApiKeys      []string    `toml:"api_keys" validate:"min=1,dive,required"`
	RateLimit    int         `toml:"rate_limit" validate:"gte=0"`
	TripsPath    string      `toml:"trips_path" validate:"required"`
	StationsPath string      `toml:"stations_path" validate:"required"`
}

// LoadConfigFile reads and validates a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a configuration regardless of where it came from.
func Validate(cfg Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
