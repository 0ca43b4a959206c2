// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     Cart aggregation, delivery pricing and store hours for storefront locations.
//
//	Delivery fees follow the fee configuration of each location: flat, per mile, per item or combined, waived at the free delivery threshold.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Admin API key. Required for settings updates if ADMIN_API_KEYS is set.
//
// @tag.name        Cart
// @tag.description Cart subtotal aggregation
//
// @tag.name        Delivery
// @tag.description Delivery fee quotes
//
// @tag.name        Hours
// @tag.description Store hours formatting
//
// @tag.name        Settings
// @tag.description Versioned location settings
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/storefront-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithRequestTimeout(cfg.Server.RequestTimeout),
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)

	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
