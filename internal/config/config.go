// Package config contains utilities for loading configs
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
)

const (
	defaultConfigFilePath = "/data/tripmeal.yaml"
	minSecretBytes        = 16
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	DefaultServerPort   = 5000
	DefaultDatabasePort = 5432
	DefaultDatabaseHost = "localhost"
	DefaultSecretKID    = "1"
)

type SecretValue string

func (s SecretValue) Validate() error {
	if len([]byte(s)) < minSecretBytes {
		return fmt.Errorf("secret should be at least %d bytes", minSecretBytes)
	}
	return nil
}

type LogLevel string

func (l LogLevel) Validate() error {
	_, err := l.Level()
	return err
}

// Level converts the configured name into a slog level. An empty value is
// treated as INFO.
func (l LogLevel) Level() (slog.Level, error) {
	var level slog.Level
	if l == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(string(l)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l)
	}
	return level, nil
}

// Secret signs session cookies. Version is written to the token kid header
// so the secret can be rotated.
type Secret struct {
	Value   SecretValue `yaml:"value" validate:"required,validateFn"`
	Version string      `yaml:"version" validate:"required"`
}

type Database struct {
	Port     uint16 `yaml:"port" validate:"required"`
	Host     string `yaml:"host" validate:"required,hostname_rfc1123|ip"`
	Name     string `yaml:"name" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

// URL builds the pgx connection string.
func (d Database) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s", d.User, d.Password, d.Host, d.Port, d.Name)
}

type Config struct {
	Secret        Secret   `yaml:"secret"`
	Database      Database `yaml:"database"`
	ServerPort    uint16   `yaml:"server_port" validate:"required"`
	Env           string   `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	AdminUsername string   `yaml:"admin_username"`
	LogLevel      LogLevel `yaml:"log_level" validate:"omitempty,validateFn"`
}

// IsProd reports whether cookies should be marked Secure.
func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parsePort(key, value string) (uint16, error) {
	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (%q): %w", key, value, err)
	}
	return uint16(port), nil
}

func validate(conf Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(conf); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		fields := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", e.Namespace(), e.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
	}
	return nil
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:           loadWithDefault("ENV", EnvDev),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		LogLevel:      LogLevel(loadWithDefault("LOG_LEVEL", "INFO")),
		Secret: Secret{
			Value:   SecretValue(os.Getenv("TRIPMEAL_KEY")),
			Version: loadWithDefault("TRIPMEAL_KEY_VERSION", DefaultSecretKID),
		},
		Database: Database{
			Host: loadWithDefault("DATABASE_HOST", DefaultDatabaseHost),
			Name: os.Getenv("DATABASE_NAME"),
			User: os.Getenv("DATABASE_USER"),
			// MYSQL_ROOT_PASSWORD is what older deployments export.
			Password: loadWithDefault("DATABASE_PASSWORD", os.Getenv("MYSQL_ROOT_PASSWORD")),
		},
	}

	var err error
	databasePort := loadWithDefault("DATABASE_PORT", strconv.Itoa(DefaultDatabasePort))
	if conf.Database.Port, err = parsePort("DATABASE_PORT", databasePort); err != nil {
		return conf, err
	}
	serverPort := loadWithDefault("SERVER_PORT", strconv.Itoa(DefaultServerPort))
	if conf.ServerPort, err = parsePort("SERVER_PORT", serverPort); err != nil {
		return conf, err
	}

	if err := validate(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.ServerPort == 0 {
		config.ServerPort = DefaultServerPort
	}
	if config.Database.Host == "" {
		config.Database.Host = DefaultDatabaseHost
	}
	if config.Database.Port == 0 {
		config.Database.Port = DefaultDatabasePort
	}
	if config.Secret.Version == "" {
		config.Secret.Version = DefaultSecretKID
	}

	if err := validate(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML file named by TRIPMEAL_CONFIG when it exists and
// falls back to environment variables otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault("TRIPMEAL_CONFIG", defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
