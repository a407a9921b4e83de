package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/blogem/iris/models"
	"github.com/blogem/iris/services"
)

// Session keys written on login
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
)

// AuthController handles login, logout and the current user
type AuthController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, logger *slog.Logger) *AuthController {
	return &AuthController{
		services: services,
		logger:   logger,
	}
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.services.Auth.Login(r.Context(), form.Username, form.Password)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		renderError(w, http.StatusServiceUnavailable, "login aborted")
		return
	}
	if err != nil {
		c.logger.Error("login failed", "error", err)
		renderError(w, http.StatusBadGateway, "authentication provider unavailable")
		return
	}

	if !result.Success {
		renderJSON(w, http.StatusUnauthorized, result)
		return
	}

	sess := session.GetSession(r)
	sess.Set(SessionUserID, result.User.ID)
	sess.Set(SessionUsername, result.User.Username)

	renderJSON(w, http.StatusOK, result)
}

// Logout handles POST /api/auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Auth.Logout(r.Context()); err != nil {
		c.logger.Error("logout failed", "error", err)
		renderError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	sess := session.GetSession(r)
	sess.Delete(SessionUserID)
	sess.Delete(SessionUsername)

	renderJSON(w, http.StatusOK, models.LoginResult{Success: true})
}

// Me handles GET /api/auth/me
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := c.services.Auth.CurrentUser(r.Context())
	if user == nil {
		renderJSON(w, http.StatusUnauthorized, models.User{IsAuthenticated: false})
		return
	}
	renderJSON(w, http.StatusOK, user)
}
