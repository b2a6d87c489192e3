package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"airqual/internal/handler"
	"airqual/internal/httputil"
	authmw "airqual/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler            *handler.AuthHandler
	AirQualityHandler      *handler.AirQualityHandler
	PreferencesHandler     *handler.PreferencesHandler
	RecommendationsHandler *handler.RecommendationsHandler
	JWTSecret              string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)
		r.Post("/password-reset/request", cfg.AuthHandler.RequestPasswordReset)
		r.Post("/password-reset/confirm", cfg.AuthHandler.ConfirmPasswordReset)
	})

	// Advice lookups are pure table reads and need no account.
	r.Get("/recommendations", cfg.RecommendationsHandler.Get)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)
		r.Get("/me/stats", cfg.AirQualityHandler.Stats)
		r.Get("/me/preferences", cfg.PreferencesHandler.Get)
		r.Put("/me/preferences", cfg.PreferencesHandler.Update)
		r.Get("/me/locations", cfg.PreferencesHandler.GetLocations)
		r.Put("/me/locations", cfg.PreferencesHandler.UpdateLocations)

		r.Post("/auth/logout", cfg.AuthHandler.Logout)
		r.Post("/auth/logout-all", cfg.AuthHandler.LogoutAll)

		r.Route("/air-quality", func(r chi.Router) {
			r.Get("/current", cfg.AirQualityHandler.Current)
			r.Get("/history", cfg.AirQualityHandler.History)
			r.Get("/forecast", cfg.AirQualityHandler.Forecast)
		})
	})

	return r
}
