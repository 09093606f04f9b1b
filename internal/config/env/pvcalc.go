package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type pvcalcEnv struct {
	BaseURL        string        `env:"PVCALC_BASE_URL,required"`
	RequestTimeout time.Duration `env:"PVCALC_REQUEST_TIMEOUT" envDefault:"15s"`
}

type pvcalc struct {
	raw pvcalcEnv
}

func NewPVCalcConfig() (*pvcalc, error) {
	var raw pvcalcEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &pvcalc{raw: raw}, nil
}

func (cfg *pvcalc) BaseURL() string               { return cfg.raw.BaseURL }
func (cfg *pvcalc) RequestTimeout() time.Duration { return cfg.raw.RequestTimeout }
