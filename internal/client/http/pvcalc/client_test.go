package pvcalc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateProduction(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/production", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ProductionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 10, req.ModulesPerString)

		_ = json.NewEncoder(w).Encode(ProductionResponse{
			AnnualEnergyKWh:  4200,
			PerformanceRatio: 0.82,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	out, err := c.EstimateProduction(context.Background(), ProductionRequest{
		ModulesPerString: 10,
		StringCount:      1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4200, out.AnnualEnergyKWh, 0.001)
	assert.InDelta(t, 0.82, out.PerformanceRatio, 0.001)
}

func TestEvaluateFinancials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/financials", r.URL.Path)
		_ = json.NewEncoder(w).Encode(FinancialResponse{
			NPVCents:     1_250_000,
			IRR:          0.073,
			PaybackYears: 9.4,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	out, err := c.EvaluateFinancials(context.Background(), FinancialRequest{
		CapexCents:         2_000_000,
		AnnualSavingsCents: 180_000,
		DiscountRate:       0.04,
		HorizonYears:       20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1_250_000, out.NPVCents)
}

func TestPostErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "irradiance dataset unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.EstimateProduction(context.Background(), ProductionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "irradiance dataset unavailable")
}
