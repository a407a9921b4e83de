package authenticator

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when a username/password pair is rejected
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the user an accepted credential pair resolves to
type Identity struct {
	Subject  string
	Username string
	Email    string
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts credential checking
type Provider interface {
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}
