package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/blogem/iris/authenticator"
	"github.com/blogem/iris/config"
	"github.com/blogem/iris/database"
	"github.com/blogem/iris/repositories"
	"github.com/blogem/iris/services"
)

// app wires storage, the credential provider and services from configuration
type app struct {
	db       *sql.DB
	services *services.Services
	logger   *slog.Logger
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := database.InitializeDatabase(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	provider, err := newProvider(ctx, cfg.Auth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth provider: %w", err)
	}

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, provider, services.Options{
		LoginDelay: cfg.Auth.LoginDelay,
		Logger:     logger,
	})

	return &app{db: db, services: srvs, logger: logger}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// newProvider selects the credential provider named in the config
func newProvider(ctx context.Context, cfg config.AuthConfig) (authenticator.Provider, error) {
	switch cfg.Provider {
	case config.ProviderOIDC:
		return authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			IssuerURL:    cfg.OIDCIssuerURL,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
		})
	case config.ProviderStatic, "":
		return authenticator.NewStaticProvider(authenticator.StaticConfig{
			Username: cfg.Username,
			Password: cfg.Password,
			UserID:   cfg.UserID,
			Email:    cfg.Email,
		}), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
