// Package config manages environment variables.
//
// It reads variables from the environment (and the `.env` file),
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for every block so a bare `masterhub serve` works.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
)

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "MASTERHUB_"

/*
	Key mapping:
	- Env vars are read using the MASTERHUB_ prefix.
	- Keys are lowercased and the prefix removed.
	- A double underscore separates nesting levels, a single underscore is
	  part of the key name:
	    MASTERHUB_SERVER__READ_TIMEOUT -> server.read_timeout
	    MASTERHUB_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
	- Values containing a comma become lists (CORS origins).
*/

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are used by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Hub           HubConfig            `koanf:"hub" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`

	// BodyLimit caps request bodies, e.g. "100K" or "2M".
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// RateLimitConfig configures the per-client token bucket guarding /api.
type RateLimitConfig struct {
	Enabled bool `koanf:"enabled"`

	// RequestsPerSecond is the sustained refill rate of each bucket.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`

	// Burst is the bucket size.
	Burst int `koanf:"burst" validate:"gte=0"`

	// ExpiresIn is how long (seconds) an idle client's bucket is remembered.
	ExpiresIn int `koanf:"expires_in" validate:"gte=0"`
}

// HubConfig describes the public identity of the API. These values show up in
// the index document, evidence next steps, the trust reference and the
// generated tender letters.
type HubConfig struct {
	Name             string `koanf:"name" validate:"required"`
	Version          string `koanf:"version" validate:"required"`
	Description      string `koanf:"description"`
	PublicHost       string `koanf:"public_host" validate:"required"`
	DocumentationURL string `koanf:"documentation_url"`
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: 20,
				Burst:             40,
				ExpiresIn:         180,
			},
			BodyLimit: "100K",
		},
		Hub: HubConfig{
			Name:             "Lawfully Illegal Master Hub API",
			Version:          "1.0.0",
			Description:      "Unified Legal Accountability Ecosystem",
			PublicHost:       "lawfully-illegal.com",
			DocumentationURL: "https://github.com/lawfullyillegal-droid/lawfully-illegal-master-hub",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it over
// the defaults, validates it and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix MASTERHUB_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into a Config pre-filled with DefaultConfig()
//   - Validates required config blocks/fields
//   - Overrides observability service name + environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")

		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}

		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only touches keys that are present, so defaults survive.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := bytes.Parse(mainConfig.Server.BodyLimit); err != nil {
		return nil, fmt.Errorf("invalid server body_limit %q: %w", mainConfig.Server.BodyLimit, err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are tagged consistently.
	mainConfig.Observability.ServiceName = "masterhub"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// IsProduction reports whether the primary environment is production.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
