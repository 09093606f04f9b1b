package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type catalogEnv struct {
	DBReadTimeout  time.Duration `env:"DB_READ_TIMEOUT" envDefault:"5s"`
	DBWriteTimeout time.Duration `env:"DB_WRITE_TIMEOUT" envDefault:"10s"`
	Bootstrap      bool          `env:"CATALOG_BOOTSTRAP" envDefault:"true"`
	Repair         bool          `env:"CATALOG_REPAIR" envDefault:"false"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) DBReadTimeout() time.Duration  { return cfg.raw.DBReadTimeout }
func (cfg *catalog) DBWriteTimeout() time.Duration { return cfg.raw.DBWriteTimeout }
func (cfg *catalog) BootstrapEnabled() bool        { return cfg.raw.Bootstrap }
func (cfg *catalog) RepairEnabled() bool           { return cfg.raw.Repair }
