package inverter

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/generic"
	"github.com/helioward/solar-crm/internal/repository/query"
)

type Repository struct {
	*generic.Repository[model.Inverter, Entity, model.InverterFilter]
}

func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{generic.New(coll, mapper{}, generic.Options[model.InverterFilter]{
		Name:         "inverters",
		SoftDelete:   true,
		Timestamps:   true,
		CustomFilter: BuildFilter,
	})}
}

func BuildFilter(f model.InverterFilter) bson.M {
	q := bson.M{}
	if !f.AllScopes {
		q = query.Access(f.Scope)
	}

	if f.ManufacturerID != "" {
		q = query.Merge(q, bson.M{"manufacturer_id": f.ManufacturerID})
	}
	q = query.Merge(q, query.Range("ac_power_w", f.MinACPowerW, f.MaxACPowerW))

	return query.Merge(q, query.Search(f.Search, "model"))
}
