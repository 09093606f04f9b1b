package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/helioward/solar-crm/internal/app"
	"github.com/helioward/solar-crm/internal/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to create the application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "catalog maintenance failed", logger.ErrorF(err))
	}
}
