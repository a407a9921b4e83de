package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider(StaticConfig{
		Username: "admin",
		Password: "admin",
		UserID:   "1",
		Email:    "admin@iris.com",
	})

	identity, err := provider.Authenticate(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, &Identity{Subject: "1", Username: "admin", Email: "admin@iris.com"}, identity)

	for _, pair := range [][2]string{{"admin", "wrong"}, {"root", "admin"}, {"", ""}, {"Admin", "admin"}} {
		_, err := provider.Authenticate(context.Background(), pair[0], pair[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, "pair %v", pair)
	}
}

func TestStaticProvider_CanceledContext(t *testing.T) {
	provider := NewStaticProvider(StaticConfig{Username: "admin", Password: "admin"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Authenticate(ctx, "admin", "admin")
	assert.ErrorIs(t, err, context.Canceled)
}
