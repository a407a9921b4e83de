package authenticator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIssuer serves OIDC discovery and a token endpoint driven by tokenHandler
func newIssuer(t *testing.T, tokenHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":                 srv.URL,
			"authorization_endpoint": srv.URL + "/authorize",
			"token_endpoint":         srv.URL + "/token",
			"jwks_uri":               srv.URL + "/keys",
		})
	})
	mux.HandleFunc("/token", tokenHandler)

	return srv
}

func TestNewOpenIDProvider_RequiresConfig(t *testing.T) {
	_, err := NewOpenIDProvider(context.Background(), OpenIDConfig{ClientID: "iris"})
	assert.EqualError(t, err, "issuer URL is required")

	_, err = NewOpenIDProvider(context.Background(), OpenIDConfig{IssuerURL: "https://issuer.example.com"})
	assert.EqualError(t, err, "client ID is required")
}

func TestOpenIDProvider_RejectedGrant(t *testing.T) {
	srv := newIssuer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	provider, err := NewOpenIDProvider(context.Background(), OpenIDConfig{IssuerURL: srv.URL, ClientID: "iris"})
	require.NoError(t, err)

	_, err = provider.Authenticate(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOpenIDProvider_MissingIDToken(t *testing.T) {
	srv := newIssuer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"opaque","token_type":"Bearer","expires_in":300}`))
	})

	provider, err := NewOpenIDProvider(context.Background(), OpenIDConfig{IssuerURL: srv.URL, ClientID: "iris"})
	require.NoError(t, err)

	_, err = provider.Authenticate(context.Background(), "admin", "admin")
	assert.ErrorContains(t, err, "no id_token")
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
