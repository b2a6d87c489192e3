package http

import (
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"airqual/internal/config"
	"airqual/internal/database"
	"airqual/internal/handler"
	"airqual/internal/provider"
	"airqual/internal/repository"
	"airqual/internal/service"
)

func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	// 3. Wire repositories
	userRepo := repository.NewUserRepository(db)
	prefsRepo := repository.NewPreferencesRepository(db)
	readingRepo := repository.NewReadingRepository(db)
	resetTokenRepo := repository.NewResetTokenRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// 4. Wire services
	var aqiClient provider.Client
	if cfg.AQIAPIBaseURL != "" {
		aqiClient = provider.NewWAQIClientWithBaseURL(cfg.AQIAPIBaseURL, cfg.AQIAPIToken)
	} else {
		aqiClient = provider.NewWAQIClient(cfg.AQIAPIToken)
	}

	authService := service.NewAuthService(refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo, prefsRepo)
	resetService := service.NewPasswordResetService(userRepo, resetTokenRepo, authService,
		time.Duration(cfg.ResetTokenTTLSeconds)*time.Second)
	prefsService := service.NewPreferencesService(prefsRepo)
	aqService := service.NewAirQualityService(aqiClient, readingRepo, prefsRepo)

	// 5. Wire handlers and routes
	router := NewRouter(RouterConfig{
		AuthHandler:            handler.NewAuthHandler(userService, authService, resetService),
		AirQualityHandler:      handler.NewAirQualityHandler(aqService),
		PreferencesHandler:     handler.NewPreferencesHandler(prefsService),
		RecommendationsHandler: handler.NewRecommendationsHandler(),
		JWTSecret:              cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
