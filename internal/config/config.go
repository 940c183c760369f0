package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrEmptyFrontendDir = errors.New("frontend directory cannot be empty")
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	FrontendDir     string        `yaml:"frontend_dir"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`

	// Schema and Table locate the CVE table; they are not read from the environment.
	Schema string `yaml:"schema"`
	Table  string `yaml:"table"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            3001,
			FrontendDir:     "../frontend",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            "postgres",
			Port:            5432,
			User:            "postgres",
			Password:        "12class34",
			Name:            "ooredoo_crm_en",
			SSLMode:         "disable",
			Schema:          "public",
			Table:           "cve",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, a .env file in the working directory and the process environment,
// in that order of increasing precedence.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("configuration error: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
		}
	}

	// godotenv never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := applyEnv(&config, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyEnv(config *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	port := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPort, key, v)
		}
		*dst = n
		return nil
	}

	if err := port("PORT", &config.Server.Port); err != nil {
		return err
	}
	if err := port("DB_PORT", &config.Database.Port); err != nil {
		return err
	}
	str("DB_HOST", &config.Database.Host)
	str("DB_USER", &config.Database.User)
	str("DB_PASSWORD", &config.Database.Password)
	str("DB_NAME", &config.Database.Name)
	str("DB_SSLMODE", &config.Database.SSLMode)
	str("FRONTEND_DIR", &config.Server.FrontendDir)
	str("LOG_LEVEL", &config.Log.Level)
	str("LOG_FORMAT", &config.Log.Format)

	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d", ErrInvalidPort, c.Server.Port)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database port %d", ErrInvalidPort, c.Database.Port)
	}
	if c.Server.FrontendDir == "" {
		return ErrEmptyFrontendDir
	}
	return nil
}
