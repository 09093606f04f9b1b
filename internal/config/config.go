package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/helioward/solar-crm/internal/config/env"
)

var cfg *config

type config struct {
	Logger  Logger
	Mongo   Database
	Catalog Catalog
	PVCalc  PVCalc
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return fmt.Errorf("%s Catalog: %w", op, err)
	}

	pvcalcCfg, err := envconfig.NewPVCalcConfig()
	if err != nil {
		return fmt.Errorf("%s PVCalc: %w", op, err)
	}

	cfg = &config{
		Logger:  loggerCfg,
		Mongo:   mongoCfg,
		Catalog: catalogCfg,
		PVCalc:  pvcalcCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
