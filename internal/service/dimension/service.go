package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/helioward/solar-crm/internal/client/http/pvcalc"
	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/platform/logger"
)

type EquipmentReader interface {
	FindModuleByID(ctx context.Context, id string) (*model.SolarModule, error)
	FindInverterByID(ctx context.Context, id string) (*model.Inverter, error)
}

type Calculator interface {
	EstimateProduction(ctx context.Context, req pvcalc.ProductionRequest) (*pvcalc.ProductionResponse, error)
}

type service struct {
	catalog EquipmentReader
	calc    Calculator
}

func NewDimensionService(catalog EquipmentReader, calc Calculator) *service {
	return &service{catalog: catalog, calc: calc}
}

// EstimateSystem resolves the equipment referenced by a design, checks
// the array against the inverter's electrical window and delegates the
// production simulation to the numeric service. Window violations are
// reported as warnings, not errors: oversizing decisions belong to the
// engineer.
func (s *service) EstimateSystem(ctx context.Context, design model.SystemDesign) (*model.DimensioningResult, error) {
	const op = "dimension.service.EstimateSystem"
	log := logger.With(
		logger.String("module_id", design.ModuleID),
		logger.String("inverter_id", design.InverterID),
	)

	if design.ModuleID == "" || design.InverterID == "" {
		log.Error(ctx, "validation: missing equipment reference")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("module and inverter ids must be non-empty"))
	}
	if design.ModulesPerString < 1 || design.StringCount < 1 {
		log.Error(ctx, "validation: bad array layout")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("array layout must have at least one module"))
	}

	var (
		mod *model.SolarModule
		inv *model.Inverter
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.catalog.FindModuleByID(gctx, design.ModuleID)
		if err != nil {
			return err
		}
		mod = out
		return nil
	})
	g.Go(func() error {
		out, err := s.catalog.FindInverterByID(gctx, design.InverterID)
		if err != nil {
			return err
		}
		inv = out
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error(ctx, "resolve equipment", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &model.DimensioningResult{
		Design:   design,
		DCPowerW: mod.NominalPowerW * float64(design.ModulesPerString) * float64(design.StringCount),
	}
	if inv.ACPowerW > 0 {
		result.DCACRatio = result.DCPowerW / inv.ACPowerW
	}
	result.Warnings = compatibilityWarnings(mod, inv, design, result.DCACRatio)

	prod, err := s.calc.EstimateProduction(ctx, pvcalc.ProductionRequest{
		Latitude:         design.Latitude,
		Longitude:        design.Longitude,
		TiltDeg:          design.TiltDeg,
		AzimuthDeg:       design.AzimuthDeg,
		ModulesPerString: design.ModulesPerString,
		StringCount:      design.StringCount,
		Module: pvcalc.ModuleParams{
			NominalPowerW: mod.NominalPowerW,
			Voc:           mod.Voc,
			Isc:           mod.Isc,
			Vmp:           mod.Vmp,
			Imp:           mod.Imp,
			TempCoeffPmax: mod.TempCoeffPmax,
			CellsInSeries: mod.CellsInSeries,
		},
		Inverter: pvcalc.InverterParams{
			ACPowerW:   inv.ACPowerW,
			Efficiency: inv.Efficiency,
		},
	})
	if err != nil {
		log.Error(ctx, "numeric service production estimate", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result.AnnualEnergyKWh = prod.AnnualEnergyKWh
	result.MonthlyEnergyKWh = prod.MonthlyEnergyKWh
	result.PerformanceRatio = prod.PerformanceRatio

	return result, nil
}

func compatibilityWarnings(mod *model.SolarModule, inv *model.Inverter, design model.SystemDesign, dcacRatio float64) []string {
	var warns []string

	stringVoc := mod.Voc * float64(design.ModulesPerString)
	stringVmp := mod.Vmp * float64(design.ModulesPerString)

	if inv.MaxDCVoltage > 0 && stringVoc > inv.MaxDCVoltage {
		warns = append(warns, fmt.Sprintf(
			"string open-circuit voltage %.1fV exceeds inverter maximum %.1fV", stringVoc, inv.MaxDCVoltage))
	}
	if inv.MPPTLowV > 0 && stringVmp < inv.MPPTLowV {
		warns = append(warns, fmt.Sprintf(
			"string MPP voltage %.1fV below MPPT window (%.1fV)", stringVmp, inv.MPPTLowV))
	}
	if inv.MPPTHighV > 0 && stringVmp > inv.MPPTHighV {
		warns = append(warns, fmt.Sprintf(
			"string MPP voltage %.1fV above MPPT window (%.1fV)", stringVmp, inv.MPPTHighV))
	}
	if dcacRatio > 1.5 {
		warns = append(warns, fmt.Sprintf("DC/AC ratio %.2f above 1.5, expect clipping", dcacRatio))
	}

	return warns
}
