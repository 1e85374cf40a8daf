package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ecolife/internal/database"
	"ecolife/internal/recommend"
	"ecolife/internal/scheduler"
)

// DefaultPath is where the service looks for its configuration file
const DefaultPath = "configs/config.yaml"

// Config represents the application configuration
type Config struct {
	// LogLevel only selects the HTTP router mode: "debug" keeps gin's
	// route and request logging, anything else runs gin in release mode.
	LogLevel string `yaml:"log_level"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Recommendation recommend.Settings `yaml:"recommendation"`

	Scheduler struct {
		LookaheadHours int `yaml:"lookahead_hours"`
	} `yaml:"scheduler"`

	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{LogLevel: "info"}
	c.Server.Port = 8080
	c.Metrics.Enabled = true
	c.Metrics.Port = 9090
	c.Metrics.Path = "/metrics"
	c.Database.Driver = database.DriverSQLite
	c.Database.DSN = "ecolife.db"
	c.Recommendation.Provider = recommend.ProviderGemini
	c.Recommendation.Model = recommend.DefaultModel
	c.Recommendation.Temperature = recommend.DefaultTemperature
	c.Scheduler.LookaheadHours = scheduler.DefaultLookahead
	return c
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from system")
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Configuration file %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) applyEnv() {
	override(&c.Database.Driver, "ECOLIFE_DATABASE_DRIVER")
	override(&c.Database.DSN, "ECOLIFE_DATABASE_DSN")
	override(&c.Auth.Secret, "ECOLIFE_AUTH_SECRET")
	override(&c.Recommendation.Provider, "ECOLIFE_RECOMMENDATION_PROVIDER")

	r := &c.Recommendation
	switch r.Provider {
	case recommend.ProviderGemini:
		override(&r.APIKey, "GEMINI_API_KEY")
	case recommend.ProviderOpenAI:
		override(&r.APIKey, "OPENAI_API_KEY")
	case recommend.ProviderGitHubModels:
		override(&r.APIKey, "GITHUB_TOKEN")
	case recommend.ProviderAzureOpenAI:
		override(&r.APIKey, "AZURE_OPENAI_API_KEY")
		override(&r.Endpoint, "AZURE_OPENAI_ENDPOINT")
		override(&r.Deployment, "AZURE_OPENAI_DEPLOYMENT")
	}
}

// Validate rejects settings the service cannot start with.
// Missing recommendation credentials are allowed.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Metrics.Enabled {
		if c.Metrics.Port <= 0 || c.Metrics.Port > 65535 {
			return fmt.Errorf("invalid metrics port %d", c.Metrics.Port)
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics path must start with /: %q", c.Metrics.Path)
		}
	}
	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Scheduler.LookaheadHours <= 0 {
		return fmt.Errorf("scheduler lookahead must be positive, got %d", c.Scheduler.LookaheadHours)
	}
	if t := c.Recommendation.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("recommendation temperature out of range: %v", t)
	}
	return nil
}
