package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names the variable that points at an optional YAML file.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	App      AppConfig      `koanf:"app"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Catalog  CatalogConfig  `koanf:"catalog"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// AppConfig describes the running service; it is reported by the health check.
type AppConfig struct {
	Name        string `koanf:"name" validate:"required"`
	Version     string `koanf:"version" validate:"required"`
	Environment string `koanf:"environment" validate:"required"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins" validate:"min=1"`
	EnableHSTS  bool     `koanf:"enable_hsts"`
}

// CatalogConfig selects where the records come from. An empty DSN means the
// built-in seed.
type CatalogConfig struct {
	DSN         string        `koanf:"dsn"`
	LoadTimeout time.Duration `koanf:"load_timeout" validate:"gt=0"`
}

// Addr is the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		App: AppConfig{
			Name:        "book-api",
			Version:     "1.0.0",
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			LoadTimeout: 5 * time.Second,
		},
	}
}

// LoadEnvFiles loads .env and .env.local. Variables already present in the
// environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing priority.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"PORT":                 "server.port",
	"HOST":                 "server.host",
	"READ_TIMEOUT":         "server.read_timeout",
	"WRITE_TIMEOUT":        "server.write_timeout",
	"IDLE_TIMEOUT":         "server.idle_timeout",
	"SHUTDOWN_TIMEOUT":     "server.shutdown_timeout",
	"APP_VERSION":          "app.version",
	"ENVIRONMENT":          "app.environment",
	"LOG_LEVEL":            "logging.level",
	"LOG_FORMAT":           "logging.format",
	"CORS_ORIGINS":         "security.cors_origins",
	"ENABLE_HSTS":          "security.enable_hsts",
	"CATALOG_DSN":          "catalog.dsn",
	"CATALOG_LOAD_TIMEOUT": "catalog.load_timeout",
}

// envTransformFunc maps known variables to config keys. Unknown and empty
// variables return "" so koanf skips them.
func envTransformFunc(key string) string {
	mapped, ok := envMappings[key]
	if !ok {
		return ""
	}
	if os.Getenv(key) == "" {
		return ""
	}
	return mapped
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma separated strings coming from the
// environment into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
