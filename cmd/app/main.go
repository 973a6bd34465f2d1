// @title IP Portfolio Valuation API
// @version 1.0
// @description Net present value of licensed, internal and subscription IP assets.
// @BasePath /
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/mauv0809/ip-portfolio/docs"
	"github.com/mauv0809/ip-portfolio/internal/config"
	"github.com/mauv0809/ip-portfolio/internal/db"
	"github.com/mauv0809/ip-portfolio/internal/handlers"
	"github.com/mauv0809/ip-portfolio/internal/settings"
	"github.com/mauv0809/ip-portfolio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(logger.Config{Level: "info", Pretty: true})
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	ctx := context.Background()

	// Settings storage is optional; without it the dashboard runs on the
	// configured defaults only.
	var store settings.Store
	if cfg.DatabaseURL == "" {
		log.Info().Msg("DATABASE_URL not set, settings storage disabled")
	} else {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Warn().Err(err).Msg("Could not run migrations")
		} else {
			log.Info().Msg("Migrations completed")
		}

		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("Could not connect to database, continuing without settings storage")
		} else {
			defer pool.Close()
			store = db.NewRepository(pool)
			log.Info().Msg("Connected to database")
		}
	}

	service := settings.NewService(store, cfg.Defaults, log)

	// Setup Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("Request")
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Static files
	e.Static("/assets", "assets")

	var settingsHandler *handlers.SettingsHandler
	if service.Enabled() {
		settingsHandler = handlers.NewSettingsHandler(service, log)
		log.Info().Msg("Settings endpoints registered")
	}
	handlers.Register(e, handlers.New(service, log), settingsHandler)

	log.Info().Str("addr", cfg.Addr()).Msg("Starting server")
	if err := e.Start(cfg.Addr()); err != nil {
		log.Error().Err(err).Msg("Server stopped")
		os.Exit(1)
	}
}
