package authenticator

import (
	"context"
	"crypto/subtle"
)

// StaticProvider accepts exactly one fixed username/password pair
type StaticProvider struct {
	username string
	password string
	identity Identity
}

// StaticConfig holds the fixed credential pair and the identity it resolves to
type StaticConfig struct {
	Username string
	Password string
	UserID   string
	Email    string
}

// NewStaticProvider creates a provider for a single fixed credential pair
func NewStaticProvider(cfg StaticConfig) *StaticProvider {
	return &StaticProvider{
		username: cfg.Username,
		password: cfg.Password,
		identity: Identity{
			Subject:  cfg.UserID,
			Username: cfg.Username,
			Email:    cfg.Email,
		},
	}
}

// Authenticate checks the pair for literal equality
func (p *StaticProvider) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(p.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	identity := p.identity
	return &identity, nil
}
