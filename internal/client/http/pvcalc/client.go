// Package pvcalc holds the consumed contract of the external numeric
// service that performs irradiance/production simulation and financial
// evaluation, plus a thin JSON-over-HTTP client for it. The algorithms
// behind the endpoints are not this repository's concern.
package pvcalc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ModuleParams struct {
	NominalPowerW float64 `json:"nominal_power_w"`
	Voc           float64 `json:"voc"`
	Isc           float64 `json:"isc"`
	Vmp           float64 `json:"vmp"`
	Imp           float64 `json:"imp"`
	TempCoeffPmax float64 `json:"temp_coeff_pmax"`
	CellsInSeries int     `json:"cells_in_series,omitempty"`
}

type InverterParams struct {
	ACPowerW   float64 `json:"ac_power_w"`
	Efficiency float64 `json:"efficiency"`
}

type ProductionRequest struct {
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	TiltDeg          float64        `json:"tilt_deg"`
	AzimuthDeg       float64        `json:"azimuth_deg"`
	ModulesPerString int            `json:"modules_per_string"`
	StringCount      int            `json:"string_count"`
	Module           ModuleParams   `json:"module"`
	Inverter         InverterParams `json:"inverter"`
}

type ProductionResponse struct {
	AnnualEnergyKWh  float64    `json:"annual_energy_kwh"`
	MonthlyEnergyKWh []float64  `json:"monthly_energy_kwh"`
	PerformanceRatio float64    `json:"performance_ratio"`
	ComputedAt       *time.Time `json:"computed_at,omitempty"`
}

type FinancialRequest struct {
	CapexCents         int64   `json:"capex_cents"`
	AnnualSavingsCents int64   `json:"annual_savings_cents"`
	DiscountRate       float64 `json:"discount_rate"`
	HorizonYears       int     `json:"horizon_years"`
}

type FinancialResponse struct {
	NPVCents     int64   `json:"npv_cents"`
	IRR          float64 `json:"irr"`
	PaybackYears float64 `json:"payback_years"`
}

type client struct {
	httpc   *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *client {
	return &client{
		httpc:   &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *client) EstimateProduction(ctx context.Context, req ProductionRequest) (*ProductionResponse, error) {
	var out ProductionResponse
	if err := c.post(ctx, "/v1/production", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) EvaluateFinancials(ctx context.Context, req FinancialRequest) (*FinancialResponse, error) {
	var out FinancialResponse
	if err := c.post(ctx, "/v1/financials", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) post(ctx context.Context, path string, in, out any) error {
	op := "pvcalc" + path

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("%s: unexpected status %d: %s", op, res.StatusCode, msg)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}
