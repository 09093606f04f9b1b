package app

import (
	"context"

	"github.com/helioward/solar-crm/internal/config"
	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/platform/closer"
	"github.com/helioward/solar-crm/internal/platform/logger"
	"github.com/helioward/solar-crm/internal/repository/catalog"
)

type CatalogService interface {
	ValidateConsistency(ctx context.Context, scope string) ([]model.Violation, error)
	RepairInconsistencies(ctx context.Context, scope string) (int, error)
}

type DimensionService interface {
	EstimateSystem(ctx context.Context, design model.SystemDesign) (*model.DimensioningResult, error)
}

type App struct {
	di *di
}

func New(ctx context.Context) (*App, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	if err := logger.Init(config.C().Logger.Level(), config.C().Logger.AsJSON()); err != nil {
		return nil, err
	}

	return &App{di: newDI()}, nil
}

// Run executes the catalog maintenance pass: seed the built-in public
// equipment on an empty database, then validate cross-collection
// consistency and, when enabled, repair what can be repaired.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := closer.CloseAll(context.Background()); err != nil {
			logger.Error(ctx, "shutdown", logger.ErrorF(err))
		}
		logger.Sync()
	}()

	if config.C().Catalog.BootstrapEnabled() {
		if err := catalog.Bootstrap(ctx, a.di.CatalogRepository(ctx)); err != nil {
			return err
		}
		logger.Info(ctx, "catalog bootstrap completed")
	}

	svc := a.di.CatalogService(ctx)

	violations, err := svc.ValidateConsistency(ctx, "")
	if err != nil {
		return err
	}
	if len(violations) == 0 {
		logger.Info(ctx, "catalog is consistent")
		return nil
	}

	for _, v := range violations {
		logger.Warn(ctx, "consistency violation",
			logger.String("kind", string(v.Kind)),
			logger.String("entity", v.Entity),
			logger.String("id", v.ID),
			logger.String("detail", v.Detail),
		)
	}

	if !config.C().Catalog.RepairEnabled() {
		logger.Info(ctx, "repair disabled, violations reported only",
			logger.Int("violations", len(violations)),
		)
		return nil
	}

	repaired, err := svc.RepairInconsistencies(ctx, "")
	if err != nil {
		return err
	}
	logger.Info(ctx, "repair pass finished",
		logger.Int("violations", len(violations)),
		logger.Int("repaired", repaired),
	)

	return nil
}
