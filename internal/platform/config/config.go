// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is 1MB. The census API takes no request bodies.
	DefaultMaxRequestSize = 1 << 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	DefaultDatabasePath         = "./data/census.db"
	DefaultDatabaseMaxOpenConns = 4

	DefaultCopyIDPrefix = "WSC"

	// EnvPrefix marks environment overrides. A double underscore separates
	// key levels so keys may contain single underscores:
	// CENSUS_CENSUS__COPY_ID_PREFIX sets census.copy_id_prefix.
	EnvPrefix = "CENSUS_"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Census    CensusConfig    `koanf:"census"    validate:"required"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
	Export    ExportConfig    `koanf:"export"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"omitempty,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,hostname_port"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`

	// Insecure disables TLS to the collector, for a local sidecar.
	Insecure bool `koanf:"insecure"`
}

// AuthConfig names the identity headers forwarded by the gateway.
type AuthConfig struct {
	SubjectHeader string `koanf:"subject_header"`
	RolesHeader   string `koanf:"roles_header"`
}

// CensusConfig describes the census being served.
type CensusConfig struct {
	// Name is shown on informational pages, e.g. "Shakespeare Census".
	Name string `koanf:"name" validate:"required"`

	// CopyIDPrefix labels the census id search field, e.g. "WSC #".
	CopyIDPrefix string `koanf:"copy_id_prefix" validate:"required,max=16"`

	// Email is the public contact address.
	Email string `koanf:"email" validate:"omitempty,email"`

	// EditorRoles may read the admin copy view.
	EditorRoles []string `koanf:"editor_roles" validate:"required,min=1,dive,required"`
}

// DatabaseConfig configures the sqlite census store.
type DatabaseConfig struct {
	// Path is the database file, or ":memory:".
	Path         string `koanf:"path"           validate:"required"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
	MaxOpenConns int    `koanf:"max_open_conns" validate:"min=1,max=64"`
	LogQueries   bool   `koanf:"log_queries"`
}

// ExportConfig configures the CSV report command.
type ExportConfig struct {
	// Dir receives one CSV file per report.
	Dir string `koanf:"dir"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "copy-census",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "30s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/census.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "copy-census",
		"telemetry.sampling_rate": 1.0,
		"telemetry.insecure":      true,

		"auth.subject_header": "X-User-ID",
		"auth.roles_header":   "X-User-Roles",

		"census.name":           "Shakespeare Census",
		"census.copy_id_prefix": DefaultCopyIDPrefix,
		"census.email":          "",
		"census.editor_roles":   []string{"editor", "admin"},

		"database.path":           DefaultDatabasePath,
		"database.auto_migrate":   true,
		"database.max_open_conns": DefaultDatabaseMaxOpenConns,
		"database.log_queries":    false,

		"export.dir": "./exports",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (CENSUS_ prefix, "__" between levels)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with the config directory given explicitly.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, dir+"/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		err := loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envValue maps an environment variable to its koanf key. Comma separated
// values become lists, e.g. CENSUS_CENSUS__EDITOR_ROLES=editor,admin.
func envValue(key, value string) (string, any) {
	if !strings.Contains(value, ",") {
		return envKey(key), value
	}

	items := strings.Split(value, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return envKey(key), items
}

// envKey maps CENSUS_DATABASE__LOG_QUERIES to database.log_queries.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
