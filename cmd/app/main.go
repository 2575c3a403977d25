package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	otelShutdownTimeout = 5 * time.Second
)

// @title Hotel Booking API
// @version 1.0
// @description Room availability, bookings and the admin panel of the hotel.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sid
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.InitJSONLogger(cfg)
	logger.SetLogLevel(cfg)

	// prices are sent to the client as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.Notification.Consume(ctx)

	app.HTTP.Serve()

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer shutdownCancel()

	if err := app.Otel.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
