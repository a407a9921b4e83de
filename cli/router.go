package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blogem/iris/controllers"
	irismiddleware "github.com/blogem/iris/middleware"
	"github.com/blogem/iris/services"
)

// routerOptions tunes the HTTP surface
type routerOptions struct {
	SecureCookies  bool
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// setupRouter configures all routes
func setupRouter(srvs *services.Services, opts routerOptions) (*chi.Mux, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	ctrl := controllers.NewControllers(srvs, opts.Logger)
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(opts.Logger.Handler(), slog.LevelDebug),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(irismiddleware.Metrics)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "iris_session",
		Secure:         opts.SecureCookies,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "iris"}`)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ctrl.Auth.Login)
		r.Post("/logout", ctrl.Auth.Logout)
		r.Get("/me", ctrl.Auth.Me)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(irismiddleware.RequireAuth(srvs.Auth))
		r.Use(irismiddleware.AuditLogger(opts.Logger))

		r.Route("/api/resources", func(r chi.Router) {
			r.Get("/", ctrl.Resources.List)
			r.Post("/", ctrl.Resources.Create)
			r.Post("/batch", ctrl.Resources.CreateBatch)
			r.Get("/{id}", ctrl.Resources.Get)
			r.Put("/{id}", ctrl.Resources.Update)
			r.Delete("/{id}", ctrl.Resources.Delete)
		})

		r.Get("/api/resource-types", ctrl.Resources.Types)
		r.Post("/api/seed", ctrl.Resources.Seed)
		r.Get("/api/audit-logs", ctrl.Audit.List)
		r.Get("/api/dashboard", ctrl.Dashboard.Index)

		r.Route("/api/analytics", func(r chi.Router) {
			r.Get("/monthly", ctrl.Analytics.Monthly)
			r.Get("/daily", ctrl.Analytics.Daily)
		})
	})

	return r, nil
}
