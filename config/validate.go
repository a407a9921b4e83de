package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Auth.LoginDelay < 0 {
		return fmt.Errorf("auth.login_delay must be >= 0 (got %s)", c.Auth.LoginDelay)
	}

	switch c.Auth.Provider {
	case ProviderStatic:
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return fmt.Errorf("auth.username and auth.password are required for the static provider")
		}
	case ProviderOIDC:
		if c.Auth.OIDCIssuerURL == "" || c.Auth.OIDCClientID == "" {
			return fmt.Errorf("auth.oidc_issuer_url and auth.oidc_client_id are required for the oidc provider")
		}
	default:
		return fmt.Errorf("auth.provider must be %q or %q (got %q)", ProviderStatic, ProviderOIDC, c.Auth.Provider)
	}

	return nil
}
