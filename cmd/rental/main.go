package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/console"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/report"
	"github.com/flexprice/vanrental/internal/repository/memory"
	"github.com/flexprice/vanrental/internal/service"
	"github.com/flexprice/vanrental/internal/types"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	cfg.Deployment.Mode = types.ModeConsole

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	svc := service.NewRentalService(service.NewServiceParams(
		log,
		cfg,
		memory.NewRentalStore(),
		pricing.NewCalculator(),
	))
	renderer := report.NewRenderer(cfg.Report, time.Now())

	ctx := context.WithValue(context.Background(), types.CtxSessionID, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SESSION))
	log.WithContext(ctx).Debugw("console session started")

	app := console.NewApp(console.NewPrompter(os.Stdin, os.Stdout), svc, renderer, log)
	return app.Run(ctx)
}
