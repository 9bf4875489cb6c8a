package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flexprice/vanrental/internal/api"
	v1 "github.com/flexprice/vanrental/internal/api/v1"
	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/repository/memory"
	"github.com/flexprice/vanrental/internal/service"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := fx.New(
		fx.Provide(
			provideConfig,
			logger.NewLogger,
			pricing.NewCalculator,
			func() rental.Repository { return memory.NewRentalStore() },
			service.NewServiceParams,
			service.NewRentalService,
			v1.NewHealthHandler,
			v1.NewVehicleHandler,
			v1.NewQuoteHandler,
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

// provideConfig loads the configuration and forces API mode
func provideConfig() (*config.Configuration, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	cfg.Deployment.Mode = types.ModeAPI
	return cfg, nil
}

func provideHandlers(health *v1.HealthHandler, vehicle *v1.VehicleHandler, quote *v1.QuoteHandler) api.Handlers {
	return api.Handlers{
		Health:  health,
		Vehicle: vehicle,
		Quote:   quote,
	}
}

func startServer(lc fx.Lifecycle, cfg *config.Configuration, router *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalw("API server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down API server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			err := srv.Shutdown(ctx)
			_ = log.Sync()
			return err
		},
	})
}
