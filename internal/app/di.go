package app

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/helioward/solar-crm/internal/client/http/pvcalc"
	"github.com/helioward/solar-crm/internal/config"
	"github.com/helioward/solar-crm/internal/platform/closer"
	"github.com/helioward/solar-crm/internal/repository/catalog"
	"github.com/helioward/solar-crm/internal/repository/inverter"
	"github.com/helioward/solar-crm/internal/repository/manufacturer"
	"github.com/helioward/solar-crm/internal/repository/solarmodule"
	catalogsvc "github.com/helioward/solar-crm/internal/service/catalog"
	dimensionsvc "github.com/helioward/solar-crm/internal/service/dimension"
)

// di is the composition root: every dependency is constructed once,
// lazily, and handed out by reference. No runtime service lookups
// happen outside this file.
type di struct {
	mongo *mongo.Client

	manufacturersColl *mongo.Collection
	modulesColl       *mongo.Collection
	invertersColl     *mongo.Collection

	manufacturerRepo *manufacturer.Repository
	moduleRepo       *solarmodule.Repository
	inverterRepo     *inverter.Repository
	catalogRepo      *catalog.Repository

	catalogService   CatalogService
	dimensionService DimensionService
	calculator       dimensionsvc.Calculator
}

func newDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		client, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return client.Disconnect(ctx)
			})

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = client
	}

	return d.mongo
}

func (d *di) collection(ctx context.Context, name string) *mongo.Collection {
	return d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)
}

func (d *di) ManufacturersCollection(ctx context.Context) *mongo.Collection {
	if d.manufacturersColl == nil {
		d.manufacturersColl = d.collection(ctx, config.C().Mongo.ManufacturersCollection())

		if err := ensureManufacturerIndexes(ctx, d.manufacturersColl); err != nil {
			panic(fmt.Sprintf("failed to ensure manufacturer indexes: %v\n", err))
		}
	}

	return d.manufacturersColl
}

func (d *di) SolarModulesCollection(ctx context.Context) *mongo.Collection {
	if d.modulesColl == nil {
		d.modulesColl = d.collection(ctx, config.C().Mongo.SolarModulesCollection())

		if err := ensureEquipmentIndexes(ctx, d.modulesColl); err != nil {
			panic(fmt.Sprintf("failed to ensure solar module indexes: %v\n", err))
		}
	}

	return d.modulesColl
}

func (d *di) InvertersCollection(ctx context.Context) *mongo.Collection {
	if d.invertersColl == nil {
		d.invertersColl = d.collection(ctx, config.C().Mongo.InvertersCollection())

		if err := ensureEquipmentIndexes(ctx, d.invertersColl); err != nil {
			panic(fmt.Sprintf("failed to ensure inverter indexes: %v\n", err))
		}
	}

	return d.invertersColl
}

func (d *di) ManufacturerRepository(ctx context.Context) *manufacturer.Repository {
	if d.manufacturerRepo == nil {
		d.manufacturerRepo = manufacturer.NewRepository(d.ManufacturersCollection(ctx))
	}

	return d.manufacturerRepo
}

func (d *di) SolarModuleRepository(ctx context.Context) *solarmodule.Repository {
	if d.moduleRepo == nil {
		d.moduleRepo = solarmodule.NewRepository(d.SolarModulesCollection(ctx))
	}

	return d.moduleRepo
}

func (d *di) InverterRepository(ctx context.Context) *inverter.Repository {
	if d.inverterRepo == nil {
		d.inverterRepo = inverter.NewRepository(d.InvertersCollection(ctx))
	}

	return d.inverterRepo
}

func (d *di) CatalogRepository(ctx context.Context) *catalog.Repository {
	if d.catalogRepo == nil {
		d.catalogRepo = catalog.NewRepository(
			d.ManufacturerRepository(ctx),
			d.SolarModuleRepository(ctx),
			d.InverterRepository(ctx),
		)
	}

	return d.catalogRepo
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogsvc.NewCatalogService(
			d.CatalogRepository(ctx),
			config.C().Catalog.DBReadTimeout(),
			config.C().Catalog.DBWriteTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) Calculator() dimensionsvc.Calculator {
	if d.calculator == nil {
		d.calculator = pvcalc.NewClient(
			config.C().PVCalc.BaseURL(),
			config.C().PVCalc.RequestTimeout(),
		)
	}

	return d.calculator
}

// DimensionService is handed to whichever transport layer gets bolted
// on top of this core; the maintenance binary itself does not call it.
func (d *di) DimensionService(ctx context.Context) DimensionService {
	if d.dimensionService == nil {
		d.dimensionService = dimensionsvc.NewDimensionService(
			d.CatalogRepository(ctx),
			d.Calculator(),
		)
	}

	return d.dimensionService
}

func ensureManufacturerIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// The real uniqueness guarantee; the aggregate's in-memory
			// check is only a fast path.
			Keys: bson.D{{Key: "scope", Value: 1}, {Key: "name_norm", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "is_deleted", Value: bson.D{{Key: "$ne", Value: true}}}}),
		},
		{Keys: bson.D{{Key: "equipment_type", Value: 1}}},
		{Keys: bson.D{{Key: "is_deleted", Value: 1}}},
	})

	return err
}

func ensureEquipmentIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "scope", Value: 1},
				{Key: "manufacturer_id", Value: 1},
				{Key: "model_norm", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "is_deleted", Value: bson.D{{Key: "$ne", Value: true}}}}),
		},
		{Keys: bson.D{{Key: "manufacturer_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_deleted", Value: 1}}},
	})

	return err
}
