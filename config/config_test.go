package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no stray .env is picked up
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("IRIS_CONFIG", "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "iris.db", cfg.Database.Path)
	assert.Equal(t, ProviderStatic, cfg.Auth.Provider)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, "admin", cfg.Auth.Password)
	assert.Equal(t, "admin@iris.com", cfg.Auth.Email)
	assert.Equal(t, 500*time.Millisecond, cfg.Auth.LoginDelay)
	assert.True(t, cfg.Seed.DemoOnStart)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "9090")
	t.Setenv("IRIS_DB_PATH", "/tmp/other.db")
	t.Setenv("IRIS_LOGIN_DELAY", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Zero(t, cfg.Auth.LoginDelay)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IRIS_AUTH_USERNAME=operator\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("IRIS_AUTH_USERNAME") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "operator", cfg.Auth.Username)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "iris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7070
auth:
  provider: oidc
  oidc_issuer_url: "https://issuer.example.com"
  oidc_client_id: "iris"
log:
  format: json
`), 0o644))
	t.Setenv("IRIS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, ProviderOIDC, cfg.Auth.Provider)
	assert.Equal(t, "iris", cfg.Auth.OIDCClientID)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "iris.db", cfg.Database.Path, "defaults still apply")
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("IRIS_CONFIG", filepath.Join(dir, "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Path: "iris.db"},
			Auth:     AuthConfig{Provider: ProviderStatic, Username: "admin", Password: "admin"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"no database", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"negative delay", func(c *Config) { c.Auth.LoginDelay = -time.Second }, "login_delay"},
		{"unknown provider", func(c *Config) { c.Auth.Provider = "ldap" }, "auth.provider"},
		{"static without password", func(c *Config) { c.Auth.Password = "" }, "static provider"},
		{"oidc without issuer", func(c *Config) { c.Auth.Provider = ProviderOIDC }, "oidc provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := newLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "slot", "iris_resources")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "iris_resources", line["slot"])
}
