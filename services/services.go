package services

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/blogem/iris/authenticator"
	"github.com/blogem/iris/repositories"
)

// Services holds all service instances
type Services struct {
	Resources ResourceStore
	Audit     AuditMirror
	Auth      AuthService
	Seed      SeedService
}

// Options tunes service construction
type Options struct {
	LoginDelay time.Duration
	Rand       *rand.Rand
	Logger     *slog.Logger
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, provider authenticator.Provider, opts Options) *Services {
	store := NewResourceStore(repos.Slots, opts.Logger)
	return &Services{
		Resources: store,
		Audit:     store.Audit(),
		Auth:      NewAuthService(provider, repos.Slots, opts.LoginDelay, opts.Logger),
		Seed:      NewSeedService(store, opts.Rand, opts.Logger),
	}
}
