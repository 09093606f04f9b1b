package solarmodule

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/generic"
	"github.com/helioward/solar-crm/internal/repository/query"
)

type Repository struct {
	*generic.Repository[model.SolarModule, Entity, model.SolarModuleFilter]
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{generic.New(coll, mapper{}, generic.Options[model.SolarModuleFilter]{
		Name:         "solar_modules",
		SoftDelete:   true,
		Timestamps:   true,
		CustomFilter: BuildFilter,
	})}
}

func BuildFilter(f model.SolarModuleFilter) bson.M {
	q := bson.M{}
	if !f.AllScopes {
		q = query.Access(f.Scope)
	}

	if f.ManufacturerID != "" {
		q = query.Merge(q, bson.M{"manufacturer_id": f.ManufacturerID})
	}
	q = query.Merge(q, query.Range("nominal_power_w", f.MinPowerW, f.MaxPowerW))

	return query.Merge(q, query.Search(f.Search, "model"))
}
