package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Seed     SeedConfig     `yaml:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"IRIS_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                  env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"IRIS_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"IRIS_WRITE_TIMEOUT"    env-default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"IRIS_REQUEST_TIMEOUT"  env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"IRIS_SHUTDOWN_TIMEOUT" env-default:"10s"`
	SecureCookies   bool          `yaml:"secure_cookies"   env:"USE_HTTPS"             env-default:"false"`
}

// DatabaseConfig holds the SQLite file location.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"IRIS_DB_PATH" env-default:"iris.db"`
}

// AuthConfig selects the credential provider.
type AuthConfig struct {
	Provider   string        `yaml:"provider"    env:"IRIS_AUTH_PROVIDER" env-default:"static"`
	Username   string        `yaml:"username"    env:"IRIS_AUTH_USERNAME" env-default:"admin"`
	Password   string        `yaml:"password"    env:"IRIS_AUTH_PASSWORD" env-default:"admin"`
	UserID     string        `yaml:"user_id"     env:"IRIS_AUTH_USER_ID"  env-default:"1"`
	Email      string        `yaml:"email"       env:"IRIS_AUTH_EMAIL"    env-default:"admin@iris.com"`
	LoginDelay time.Duration `yaml:"login_delay" env:"IRIS_LOGIN_DELAY"   env-default:"500ms"`

	OIDCIssuerURL    string `yaml:"oidc_issuer_url"    env:"IRIS_OIDC_ISSUER_URL"`
	OIDCClientID     string `yaml:"oidc_client_id"     env:"IRIS_OIDC_CLIENT_ID"`
	OIDCClientSecret string `yaml:"oidc_client_secret" env:"IRIS_OIDC_CLIENT_SECRET"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SeedConfig controls demo data on startup.
type SeedConfig struct {
	DemoOnStart bool `yaml:"demo_on_start" env:"IRIS_SEED_DEMO" env-default:"true"`
}

const (
	ProviderStatic = "static"
	ProviderOIDC   = "oidc"
)
