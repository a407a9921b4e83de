package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blogem/iris/authenticator"
	"github.com/blogem/iris/metrics"
	"github.com/blogem/iris/models"
	"github.com/blogem/iris/repositories"
)

// InvalidCredentialsMessage is shown verbatim when a login is rejected
const InvalidCredentialsMessage = "Credenciais inválidas"

// AuthService interface defines the login gate over the token slot
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
	IsAuthenticated(ctx context.Context) bool
}

// authToken is the payload of the token slot. Presence of Token means logged in.
type authToken struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// authService implements AuthService interface
type authService struct {
	provider authenticator.Provider
	token    *repositories.Cell[authToken]
	delay    time.Duration
	logger   *slog.Logger
}

// NewAuthService creates a new auth service. delay is waited before every credential check.
func NewAuthService(provider authenticator.Provider, slots repositories.SlotRepository, delay time.Duration, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		provider: provider,
		token:    repositories.NewCell(slots, repositories.TokenKey, authToken{}, logger),
		delay:    delay,
		logger:   logger,
	}
}

// Login checks the credential pair and sets the token slot on success.
// Rejected credentials are a failed result, not an error.
func (s *authService) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	identity, err := s.provider.Authenticate(ctx, username, password)
	if errors.Is(err, authenticator.ErrInvalidCredentials) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		s.logger.Info("login rejected", "username", username)
		return &models.LoginResult{Success: false, Error: InvalidCredentialsMessage}, nil
	}
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	user := models.User{
		ID:              identity.Subject,
		Username:        identity.Username,
		Email:           identity.Email,
		IsAuthenticated: true,
	}

	if err := s.token.Write(ctx, authToken{Token: newID(), User: user}); err != nil {
		s.logger.Warn("login token not persisted", "error", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info("login accepted", "username", user.Username)
	return &models.LoginResult{Success: true, User: &user}, nil
}

// Logout clears the token slot
func (s *authService) Logout(ctx context.Context) error {
	if err := s.token.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// CurrentUser returns the logged in user, or nil when logged out
func (s *authService) CurrentUser(ctx context.Context) *models.User {
	token := s.token.Read(ctx)
	if token.Token == "" {
		return nil
	}
	user := token.User
	return &user
}

// IsAuthenticated reports whether the token slot is present
func (s *authService) IsAuthenticated(ctx context.Context) bool {
	return s.token.Read(ctx).Token != ""
}
