package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	if c.Server.Port != 3001 {
		t.Errorf("expected default port 3001, got %d", c.Server.Port)
	}
	if c.Database.Host != "postgres" || c.Database.Port != 5432 {
		t.Errorf("unexpected default database address %s:%d", c.Database.Host, c.Database.Port)
	}
	if c.Database.Name != "ooredoo_crm_en" {
		t.Errorf("unexpected default database name %q", c.Database.Name)
	}
	if c.Database.Schema != "public" || c.Database.Table != "cve" {
		t.Errorf("unexpected default table %s.%s", c.Database.Schema, c.Database.Table)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	c := Default()
	env := map[string]string{
		"PORT":        "8080",
		"DB_HOST":     "db.internal",
		"DB_PORT":     "6543",
		"DB_USER":     "reader",
		"DB_PASSWORD": "s3cret",
		"DB_NAME":     "vulns",
		"LOG_LEVEL":   "debug",
	}

	if err := applyEnv(&c, lookupFrom(env)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", c.Server.Port)
	}
	if c.Database.Host != "db.internal" || c.Database.Port != 6543 {
		t.Errorf("unexpected database address %s:%d", c.Database.Host, c.Database.Port)
	}
	if c.Database.User != "reader" || c.Database.Password != "s3cret" || c.Database.Name != "vulns" {
		t.Errorf("unexpected credentials %+v", c.Database)
	}
	if c.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", c.Log.Level)
	}
	// untouched values keep their defaults
	if c.Database.SSLMode != "disable" {
		t.Errorf("expected sslmode to stay disable, got %s", c.Database.SSLMode)
	}
}

func TestApplyEnvEmptyValueKeepsDefault(t *testing.T) {
	c := Default()
	if err := applyEnv(&c, lookupFrom(map[string]string{"DB_HOST": "", "PORT": ""})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Database.Host != "postgres" || c.Server.Port != 3001 {
		t.Errorf("empty variables should not override defaults, got %s and %d", c.Database.Host, c.Server.Port)
	}
}

func TestApplyEnvInvalidPort(t *testing.T) {
	c := Default()
	err := applyEnv(&c, lookupFrom(map[string]string{"DB_PORT": "not-a-number"}))
	if !errors.Is(err, ErrInvalidPort) {
		t.Fatalf("expected ErrInvalidPort, got %v", err)
	}
}

func TestValidateRejectsOutOfRangePort(t *testing.T) {
	c := Default()
	c.Server.Port = 70000
	if err := c.Validate(); !errors.Is(err, ErrInvalidPort) {
		t.Errorf("expected ErrInvalidPort, got %v", err)
	}

	c = Default()
	c.Server.FrontendDir = ""
	if err := c.Validate(); !errors.Is(err, ErrEmptyFrontendDir) {
		t.Errorf("expected ErrEmptyFrontendDir, got %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "LOG_LEVEL"} {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v)
			os.Unsetenv(key)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path := filepath.Join(t.TempDir(), "cvefeed.yaml")
	data := []byte(`
server:
  port: 9090
  read_timeout: 5s
database:
  host: yaml-host
  table: vulnerabilities
log:
  level: warn
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout != 5*time.Second {
		t.Errorf("expected read timeout 5s, got %v", c.Server.ReadTimeout)
	}
	if c.Database.Host != "yaml-host" || c.Database.Table != "vulnerabilities" {
		t.Errorf("unexpected database config %+v", c.Database)
	}
	// fields absent from the file keep their defaults
	if c.Database.Port != 5432 || c.Database.Schema != "public" {
		t.Errorf("expected defaults for unset fields, got %+v", c.Database)
	}
	if c.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", c.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing configuration file")
	}
}
